package documents

import "time"

// Response is the document DTO without the binary artifacts.
type Response struct {
	ID             string `json:"id"`
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`

	PersonalInformation string `json:"personalInformation"`
	CareerSummary       string `json:"careerSummary"`
	Skills              string `json:"skills"`
	WorkExperience      string `json:"workExperience"`
	Education           string `json:"education"`
	Projects            string `json:"projects"`
	Awards              string `json:"awards"`
	Publications        string `json:"publications"`

	CoverLetterContent string `json:"coverLetterContent"`
	HasResumePDF       bool   `json:"hasResumePdf"`
	HasCoverLetterPDF  bool   `json:"hasCoverLetterPdf"`
	ArtifactKey        string `json:"artifactKey"`

	ProviderName string  `json:"providerName"`
	ModelName    string  `json:"modelName"`
	Temperature  float64 `json:"temperature"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(doc Document) Response {
	return Response{
		ID:                  doc.ID,
		CompanyName:         doc.CompanyName,
		JobTitle:            doc.JobTitle,
		JobDescription:      doc.JobDescription,
		PersonalInformation: doc.PersonalInformation,
		CareerSummary:       doc.CareerSummary,
		Skills:              doc.Skills,
		WorkExperience:      doc.WorkExperience,
		Education:           doc.Education,
		Projects:            doc.Projects,
		Awards:              doc.Awards,
		Publications:        doc.Publications,
		CoverLetterContent:  doc.CoverLetterContent,
		HasResumePDF:        len(doc.ResumePDF) > 0,
		HasCoverLetterPDF:   len(doc.CoverLetterPDF) > 0,
		ArtifactKey:         doc.ArtifactKey,
		ProviderName:        doc.ProviderName,
		ModelName:           doc.ModelName,
		Temperature:         doc.Temperature,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}
