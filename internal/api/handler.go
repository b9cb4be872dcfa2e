package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"SpotBoard/internal/model"
)

type messageRequest struct {
	Text string `json:"text"`
}

// PostMessage handles POST /v1/message: sanitize and send free text.
func (h *Handler) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Error("invalid request body: "+err.Error()))
		return
	}

	res := h.service.SendMessage(req.Text)
	if !res.OK() {
		if res.Message == "message is empty" {
			c.JSON(http.StatusBadRequest, res)
			return
		}
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBoard handles GET /v1/board: current tile grid, unchanged.
func (h *Handler) GetBoard(c *gin.Context) {
	res := h.service.ReadBoard()
	if !res.OK() {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RefreshMetals handles POST /v1/metals/refresh: one extractor→board pass.
func (h *Handler) RefreshMetals(c *gin.Context) {
	res := h.service.DisplayMetalsPrices()
	if !res.OK() {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PostColorTest handles POST /v1/colortest: hardware color diagnostic.
func (h *Handler) PostColorTest(c *gin.Context) {
	res := h.service.RunColorTest()
	if !res.OK() {
		c.JSON(http.StatusBadGateway, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ServiceVersion,
	})
}
