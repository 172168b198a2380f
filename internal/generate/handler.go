package generate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/profiles"
	"resume-tailor/internal/provider"
	"resume-tailor/internal/sections"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// Handler wires the generation endpoint to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

// generate streams progress events as newline-delimited JSON. The
// connection stays open for the whole run; each event is flushed as
// soon as the pipeline produces it.
func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.UserID = userID
	if req.Type == "" {
		req.Type = TypeResume
	}

	events, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest),
			errors.Is(err, provider.ErrInvalidConfiguration),
			errors.Is(err, sections.ErrUnknownSection):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNoDocumentAvailable):
			respond.Error(c, http.StatusNotFound, "no_document", err.Error(), nil)
		case errors.Is(err, profiles.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "no_profile", "create a profile before generating", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "generation_failed", err.Error(), nil)
		}
		return
	}

	c.Writer.Header().Set("Content-Type", "application/x-ndjson")
	c.Writer.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(c.Writer)
	for event := range events {
		if err := enc.Encode(event); err != nil {
			return
		}
		c.Writer.Flush()
	}
}
