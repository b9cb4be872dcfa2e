// Package api exposes the board operations over a small HTTP control API.
package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"SpotBoard/internal/model"
)

const (
	ServiceName         = "spotboard"
	ServiceVersion      = "1.0.0"
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// BoardService is the set of operations the API hands off to the pipeline.
type BoardService interface {
	DisplayMetalsPrices() model.Result
	SendMessage(text string) model.Result
	ReadBoard() model.Result
	RunColorTest() model.Result
}

// Handler handles HTTP requests using the Gin framework.
type Handler struct {
	service BoardService
}

// NewHandler creates a new API handler.
func NewHandler(service BoardService) *Handler {
	return &Handler{service: service}
}

// StartServer starts the HTTP server.
func (h *Handler) StartServer(port int) error {
	router := h.SetupRoutes()
	return router.Run(":" + strconv.Itoa(port))
}

// SetupRoutes configures all API routes.
func (h *Handler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestIDMiddleware())
	router.Use(ginLoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", h.HealthCheck)

	v1 := router.Group("/v1")
	{
		v1.POST("/message", h.PostMessage)
		v1.GET("/board", h.GetBoard)
		v1.POST("/metals/refresh", h.RefreshMetals)
		v1.POST("/colortest", h.PostColorTest)
	}

	return router
}
