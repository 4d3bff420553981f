package controllers

import (
	"errors"
	"net/http"

	"catalog/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Anything unrecognised
// is a 500 carrying the error text.
func respondError(c *gin.Context, err error) {
	var (
		verr *service.ValidationError
		derr *service.DuplicateSKUError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, service.ErrInvalidProductID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &derr):
		c.JSON(http.StatusConflict, gin.H{"error": derr.Error(), "sku": derr.SKU})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errors.Join(err, errors.New(msg)).Error()})
}
