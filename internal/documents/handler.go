package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/shared/storage/object"
)

// Handler serves read access to generated documents.
type Handler struct {
	Repo    Repo
	Objects object.ObjectStore
}

func NewHandler(repo Repo, objects object.ObjectStore) *Handler {
	return &Handler{Repo: repo, Objects: objects}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.list)
	rg.GET("/documents/latest", h.latest)
	rg.GET("/documents/:id", h.get)
	rg.GET("/documents/:id/artifact", h.artifact)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	docs, err := h.Repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "list_failed", err.Error(), nil)
		return
	}
	out := make([]Response, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc))
	}
	respond.OK(c, gin.H{"documents": out})
}

func (h *Handler) latest(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	doc, err := h.Repo.GetLatestByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no documents yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "fetch_failed", err.Error(), nil)
		return
	}
	respond.OK(c, toResponse(doc))
}

func (h *Handler) get(c *gin.Context) {
	doc, ok := h.ownedDocument(c)
	if !ok {
		return
	}
	respond.OK(c, toResponse(doc))
}

// artifact serves the compiled resume PDF, falling back to the object
// store copy when the row carries only a storage key.
func (h *Handler) artifact(c *gin.Context) {
	doc, ok := h.ownedDocument(c)
	if !ok {
		return
	}

	if len(doc.ResumePDF) > 0 {
		c.Data(http.StatusOK, "application/pdf", doc.ResumePDF)
		return
	}
	if doc.ArtifactKey == "" || h.Objects == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "document has no artifact", nil)
		return
	}

	reader, err := h.Objects.Open(c.Request.Context(), doc.ArtifactKey)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "artifact unavailable", nil)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

// ownedDocument loads the :id document and checks ownership. Foreign
// documents read as not found.
func (h *Handler) ownedDocument(c *gin.Context) (Document, bool) {
	userID := middleware.UserIDFromContext(c)
	doc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return Document{}, false
		}
		respond.Error(c, http.StatusInternalServerError, "fetch_failed", err.Error(), nil)
		return Document{}, false
	}
	if doc.UserID != userID {
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		return Document{}, false
	}
	return doc, true
}
