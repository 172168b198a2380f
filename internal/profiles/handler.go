package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-tailor/internal/sections"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/users"
)

// Handler serves profile read and replace.
type Handler struct {
	Repo  Repo
	Users users.Repo
}

func NewHandler(repo Repo, usersRepo users.Repo) *Handler {
	return &Handler{Repo: repo, Users: usersRepo}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.Repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "fetch_failed", err.Error(), nil)
		return
	}
	respond.OK(c, profile)
}

// put replaces the caller's profile wholesale.
func (h *Handler) put(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	for s := range profile.SectionPolicies {
		if !sections.Valid(s) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown section "+string(s), nil)
			return
		}
	}

	// Identity is issued upstream; the owning row is provisioned on
	// first write so the profile's user reference always resolves.
	if err := h.Users.Ensure(c.Request.Context(), userID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "save_failed", err.Error(), nil)
		return
	}

	profile.UserID = userID
	if existing, err := h.Repo.GetByUser(c.Request.Context(), userID); err == nil {
		profile.ID = existing.ID
		if len(profile.Signature) == 0 {
			profile.Signature = existing.Signature
		}
	} else if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	if err := h.Repo.Upsert(c.Request.Context(), profile); err != nil {
		respond.Error(c, http.StatusInternalServerError, "save_failed", err.Error(), nil)
		return
	}
	respond.OK(c, profile)
}
