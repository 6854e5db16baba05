package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/tidespring/breeze/internal/config"
	"github.com/tidespring/breeze/internal/server/http/handlers"
	"github.com/tidespring/breeze/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BreezeFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cityHandler := handlers.NewCityHandler(facade)
	pingHandler := handlers.NewPingHandler(health)

	engine.GET("/ping", pingHandler.Ping)

	auth := engine.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	cities := engine.Group("/cities")
	cities.Use(middleware.AuthRequired(facade))
	cities.POST("", cityHandler.Add)
	cities.GET("", cityHandler.List)
	cities.PUT("/:id/favorite", cityHandler.Favorite)
	cities.DELETE("/:id", cityHandler.Delete)

	return engine
}
