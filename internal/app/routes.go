package app

import (
	"time"

	"github.com/foundrylabs/daybrief/internal/auth"
	"github.com/foundrylabs/daybrief/internal/cache"
	"github.com/foundrylabs/daybrief/internal/config"
	"github.com/foundrylabs/daybrief/internal/handlers"
	"github.com/foundrylabs/daybrief/internal/llm"
	"github.com/foundrylabs/daybrief/internal/note"
	"github.com/foundrylabs/daybrief/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, prompts config.Prompts, db *pgxpool.Pool, rdb *redis.Client, llmClient llm.Client, loc *time.Location) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
	founderRepo := repo.NewPGFounderRepo(db)
	authHandler := handlers.NewAuthHandler(sessionStore, founderRepo)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	noteRepo := repo.NewPGNoteRepo(db)
	contextRepo := repo.NewPGContextRepo(db)
	insightRepo := repo.NewPGInsightRepo(db)
	dashCache := cache.NewDashboardCache(rdb, cfg.Redis.DefaultTTL.Duration())
	generator := note.NewLLMGenerator(llmClient, prompts)
	noteSvc := note.NewService(noteRepo, contextRepo, insightRepo, generator, dashCache, loc)

	protected := api.Group("", auth.RequireSession(sessionStore))

	noteHandler := handlers.NewDailyNoteHandler(noteSvc, founderRepo)
	protected.POST("/daily-note", noteHandler.Create)
	protected.GET("/daily-note", noteHandler.Get)

	dashboardHandler := handlers.NewDashboardHandler(noteSvc, founderRepo)
	protected.GET("/dashboard", dashboardHandler.Get)

	insightHandler := handlers.NewInsightHandler(noteSvc, founderRepo)
	protected.POST("/insights/generate", insightHandler.Generate)
	protected.GET("/insights", insightHandler.List)
	protected.POST("/insights/:id/dismiss", insightHandler.Dismiss)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "daybrief",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
