package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/6631501193-blip/tracking-server/internal/server/http/dto"
	"github.com/6631501193-blip/tracking-server/internal/server/http/handlers"
	"github.com/6631501193-blip/tracking-server/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackerFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	expenseHandler := handlers.NewExpenseHandler(facade)
	systemHandler := handlers.NewSystemHandler(facade)

	engine.GET("/init", systemHandler.Init)

	auth := engine.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.GET("/me", middleware.AuthRequired(facade), authHandler.Me)

	expenses := engine.Group("/expenses")
	expenses.GET("", expenseHandler.List)
	expenses.GET("/today", expenseHandler.Today)
	expenses.GET("/search", expenseHandler.Search)
	expenses.POST("", expenseHandler.Add)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "endpoint not found"})
	})

	return engine
}
