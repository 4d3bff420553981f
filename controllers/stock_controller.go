package controllers

import (
	"net/http"

	"catalog/service"

	"github.com/gin-gonic/gin"
)

type stockController struct {
	stock service.StockService
}

func NewStockController(stock service.StockService) Controller {
	return &stockController{
		stock: stock,
	}
}

func (s *stockController) Register(r *gin.Engine) {
	reports := r.Group("/api/reports")
	reports.GET("/stock-value", s.TotalValue)
	reports.GET("/stock-value/manufacturers", s.ValueByManufacturer)
	reports.GET("/low-stock", s.LowStock)
	reports.GET("/critical-stock", s.CriticalStock)

	r.GET("/api/manufacturers", s.Manufacturers)
}

func (s *stockController) TotalValue(c *gin.Context) {
	total, err := s.stock.TotalStockValue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalValue": total})
}

func (s *stockController) ValueByManufacturer(c *gin.Context) {
	values, err := s.stock.StockValueByManufacturer(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stockValues": values})
}

func (s *stockController) LowStock(c *gin.Context) {
	products, err := s.stock.LowStockProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

func (s *stockController) CriticalStock(c *gin.Context) {
	rows, err := s.stock.CriticalStockProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "products": rows})
}

func (s *stockController) Manufacturers(c *gin.Context) {
	manufacturers, err := s.stock.ListManufacturers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manufacturers": manufacturers})
}
