package profiles

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"toolintel-backend/internal/recommender"
	"toolintel-backend/internal/shared/server/middleware"
	"toolintel-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profiles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches saved-profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.save)
	rg.GET("/profiles", h.list)
	rg.GET("/profiles/:name", h.get)
	rg.DELETE("/profiles/:name", h.remove)
}

type saveRequest struct {
	Name    string              `json:"name"`
	Profile recommender.Profile `json:"profile"`
}

type profileResponse struct {
	Name      string              `json:"name"`
	Profile   recommender.Profile `json:"profile"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func toResponse(saved SavedProfile) profileResponse {
	return profileResponse{
		Name:      saved.Name,
		Profile:   saved.Profile,
		CreatedAt: saved.CreatedAt,
		UpdatedAt: saved.UpdatedAt,
	}
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.Save(c.Request.Context(), SavedProfile{
		UserID:  userID,
		Name:    req.Name,
		Profile: req.Profile,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"name": req.Name})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	saved, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list profiles", nil)
		return
	}

	out := make([]profileResponse, 0, len(saved))
	for _, item := range saved {
		out = append(out, toResponse(item))
	}
	respond.OK(c, gin.H{"profiles": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	saved, err := h.Svc.Get(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "saved profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		}
		return
	}
	respond.OK(c, toResponse(saved))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	err := h.Svc.Delete(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "saved profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete profile", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
