package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"toolintel-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the catalog service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tools", h.list)
	rg.GET("/tools/:slug", h.get)
}

func (h *Handler) list(c *gin.Context) {
	category := c.Query("category")
	c.Set("toolCategory", category)

	tools, err := h.Svc.List(c.Request.Context(), category)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list tools", nil)
		return
	}

	out := make([]ToolResponse, 0, len(tools))
	for _, tool := range tools {
		out = append(out, toResponse(tool))
	}
	respond.OK(c, gin.H{"tools": out})
}

func (h *Handler) get(c *gin.Context) {
	tool, err := h.Svc.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "tool not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "slug is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load tool", nil)
		}
		return
	}
	respond.OK(c, toResponse(tool))
}
