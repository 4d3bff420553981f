package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthController struct {
	ping func(ctx context.Context) error
}

// NewHealthController reports the store as healthy while ping succeeds.
func NewHealthController(ping func(ctx context.Context) error) Controller {
	return &healthController{ping: ping}
}

func (h *healthController) Register(r *gin.Engine) {
	r.GET("/health", h.Health)
}

func (h *healthController) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
