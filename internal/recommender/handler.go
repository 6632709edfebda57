package recommender

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"toolintel-backend/internal/shared/metrics"
	"toolintel-backend/internal/shared/server/respond"
)

// Handler wires the recommendation endpoint to the engine.
type Handler struct {
	Engine *Engine
}

// NewHandler constructs a Handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.generate)
	rg.GET("/recommendations/config", h.config)
}

func (h *Handler) generate(c *gin.Context) {
	if h.Engine == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "engine unavailable", nil)
		return
	}

	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("toolCategory", profile.Category)

	start := time.Now()
	result, err := h.Engine.Generate(c.Request.Context(), profile)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate recommendation", nil)
		return
	}
	metrics.ObserveScoringDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncRecommendationsGenerated()
	if result.Confidence == ConfidenceLow {
		metrics.IncLowConfidence()
	}

	if result.Message != "" {
		metrics.IncEmptyCatalog()
		respond.JSON(c, http.StatusOK, gin.H{
			"confidence":  result.Confidence,
			"message":     result.Message,
			"tools":       []ScoredTool{},
			"calculation": nil,
		})
		return
	}

	respond.OK(c, result)
}

// config exposes the static presets the intake widget renders: categories,
// team-size bands, budget bands, industries, and per-category use cases.
func (h *Handler) config(c *gin.Context) {
	cfg := h.Engine.Config

	categories := make([]gin.H, 0, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		categories = append(categories, gin.H{"id": cat.ID, "label": cat.Label})
	}
	budgets := make([]gin.H, 0, len(cfg.BudgetPhrases))
	for _, id := range []string{"under10", "10to25", "25to50", "50to100", "over100"} {
		budgets = append(budgets, gin.H{"id": id, "label": cfg.BudgetPhrases[id]})
	}

	respond.OK(c, gin.H{
		"categories": categories,
		"budgets":    budgets,
		"teamSizes":  []string{"solo", "small", "mid", "large", "enterprise"},
		"industries": cfg.Industries,
		"useCases":   cfg.UseCases,
	})
}
