package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-service/internal/adapter/gin/handler"
	"employee-service/internal/adapter/gin/middleware"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(gqlHandler *handler.GraphQLHandler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "employee-service",
		})
	})

	// Single GraphQL endpoint; GET serves the GraphiQL page
	router.POST("/graphql", gqlHandler.Serve)
	router.GET("/graphql", gqlHandler.Playground)

	return router
}
