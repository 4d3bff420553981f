package routes

import (
	"catalog/controllers"
	"catalog/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// New builds the engine with the shared middleware and every controller's routes.
func New(logger zerolog.Logger, ctrl ...controllers.Controller) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery())

	for _, c := range ctrl {
		c.Register(r)
	}
	return r
}
