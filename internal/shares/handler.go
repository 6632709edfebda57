package shares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"toolintel-backend/internal/recommender"
	"toolintel-backend/internal/shared/metrics"
	"toolintel-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches share routes. Reads are public so a share
// link works without signing in.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/shares", h.create)
	rg.GET("/shares/:id", h.get)
}

type createRequest struct {
	Profile        recommender.Profile `json:"profile"`
	Recommendation recommender.Result  `json:"recommendation"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	share, err := h.Svc.Create(c.Request.Context(), req.Profile, req.Recommendation)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create share", nil)
		return
	}
	metrics.IncSharesCreated()
	c.Set("shareId", share.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"shareId":   share.ID,
		"expiresAt": share.ExpiresAt,
	})
}

func (h *Handler) get(c *gin.Context) {
	share, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "share not found or expired", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load share", nil)
		return
	}
	respond.OK(c, share)
}
