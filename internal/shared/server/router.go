package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "toolintel-backend/internal/auth"
	"toolintel-backend/internal/catalog"
	"toolintel-backend/internal/profiles"
	"toolintel-backend/internal/recommender"
	"toolintel-backend/internal/shared/config"
	"toolintel-backend/internal/shared/metrics"
	"toolintel-backend/internal/shared/server/middleware"
	"toolintel-backend/internal/shared/server/respond"
	"toolintel-backend/internal/shares"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	CatalogHandler     *catalog.Handler
	RecommenderHandler *recommender.Handler
	ProfilesHandler    *profiles.Handler
	SharesHandler      *shares.Handler
	GoogleAuth         *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"recommendations": {Rate: 2, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/recommendations" {
					return "recommendations"
				}
				return ""
			},
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.RecommenderHandler != nil {
		deps.RecommenderHandler.RegisterRoutes(api)
	}
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(api)
	}
	if deps.SharesHandler != nil {
		deps.SharesHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
