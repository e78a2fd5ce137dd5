package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "employee-service/internal/adapter/gin/handler"
	ginrouter "employee-service/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the HTTP server for the GraphQL API
func SetupGinServer(handler *ginhandler.GraphQLHandler, addr string, l *zap.Logger) *http.Server {
	router := ginrouter.SetupRouter(handler, l)

	l.Info("GraphQL API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
