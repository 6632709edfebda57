package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"toolintel-backend/internal/analytics"
	googleauth "toolintel-backend/internal/auth"
	"toolintel-backend/internal/catalog"
	"toolintel-backend/internal/profiles"
	"toolintel-backend/internal/recommender"
	"toolintel-backend/internal/shared/config"
	"toolintel-backend/internal/shared/server"
	"toolintel-backend/internal/shared/storage/db"
	"toolintel-backend/internal/shared/storage/kv"
	"toolintel-backend/internal/shares"
)

// App holds shared dependencies for the API server and Lambda handler.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	KV                 *kv.Client
	CatalogRepo        catalog.Repo
	ProfilesRepo       profiles.Repo
	ShareStore         shares.Store
	AnalyticsSink      *analytics.AsyncSink
	CatalogService     *catalog.Service
	ProfilesService    *profiles.Service
	SharesService      *shares.Service
	Engine             *recommender.Engine
	CatalogHandler     *catalog.Handler
	RecommenderHandler *recommender.Handler
	ProfilesHandler    *profiles.Handler
	SharesHandler      *shares.Handler
	GoogleAuth         *googleauth.GoogleService
}

// Build prepares all dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	kvClient, err := buildKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		KV:     kvClient,
	}

	if sqlDB != nil {
		app.CatalogRepo = &catalog.PGRepo{DB: sqlDB}
		app.ProfilesRepo = &profiles.PGRepo{DB: sqlDB}
	} else {
		memCatalog := catalog.NewMemoryRepo()
		if err := catalog.Seed(ctx, memCatalog); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		app.CatalogRepo = memCatalog
		app.ProfilesRepo = profiles.NewMemoryRepo()
	}

	if kvClient != nil {
		app.ShareStore = shares.NewRedisStore(kvClient)
	} else {
		app.ShareStore = shares.NewMemoryStore()
	}

	sink, err := buildAnalytics(ctx, cfg, sqlDB)
	if err != nil {
		return nil, err
	}
	app.AnalyticsSink = sink

	app.CatalogService = catalog.NewService(app.CatalogRepo)
	app.ProfilesService = profiles.NewService(app.ProfilesRepo)
	app.SharesService = shares.NewService(app.ShareStore)
	app.Engine = recommender.NewEngine(
		catalogAdapter{repo: app.CatalogRepo},
		app.AnalyticsSink,
		recommender.DefaultConfig(),
	)

	app.CatalogHandler = catalog.NewHandler(app.CatalogService)
	app.RecommenderHandler = recommender.NewHandler(app.Engine)
	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.SharesHandler = shares.NewHandler(app.SharesService)
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		CatalogHandler:     app.CatalogHandler,
		RecommenderHandler: app.RecommenderHandler,
		ProfilesHandler:    app.ProfilesHandler,
		SharesHandler:      app.SharesHandler,
		GoogleAuth:         app.GoogleAuth,
	})

	return app, nil
}

// Close releases long-lived resources and flushes buffered analytics.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.AnalyticsSink != nil {
		a.AnalyticsSink.Close()
	}
	if a.KV != nil {
		a.KV.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildKV(ctx context.Context, cfg config.Config) (*kv.Client, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, nil
	}
	client, err := kv.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: redis connect failed; using in-memory share store: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}

func buildAnalytics(ctx context.Context, cfg config.Config, sqlDB *sql.DB) (*analytics.AsyncSink, error) {
	if strings.TrimSpace(cfg.AnalyticsQueueURL) != "" {
		store, err := analytics.NewSQSStore(ctx, cfg.AnalyticsQueueURL)
		if err != nil {
			return nil, fmt.Errorf("analytics queue: %w", err)
		}
		return analytics.NewAsyncSink(store), nil
	}
	if sqlDB != nil {
		return analytics.NewAsyncSink(&analytics.PGStore{DB: sqlDB}), nil
	}
	return analytics.NewAsyncSink(analytics.NewMemoryStore()), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// catalogAdapter exposes the catalog repo to the scoring engine without
// coupling the engine to storage types.
type catalogAdapter struct {
	repo catalog.Repo
}

func (a catalogAdapter) ToolsForCategory(ctx context.Context, category string) ([]recommender.Tool, error) {
	tools, err := a.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]recommender.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, recommender.Tool{
			Slug:    t.Slug,
			Name:    t.Name,
			Verdict: t.Verdict,
			Scores:  t.Scores,
			Pricing: recommender.Pricing{PerUser: t.PricePerUser},
		})
	}
	return out, nil
}
