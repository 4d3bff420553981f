package controllers

import (
	"net/http"

	"catalog/models"
	"catalog/service"

	"github.com/gin-gonic/gin"
)

type productController struct {
	products service.ProductService
}

func NewProductController(products service.ProductService) Controller {
	return &productController{
		products: products,
	}
}

func (p *productController) Register(r *gin.Engine) {
	group := r.Group("/api/products")
	group.GET("", p.List)
	group.GET("/count", p.Count)
	group.GET("/:id", p.Get)
	group.POST("", p.Create)
	group.PATCH("/:id", p.Update)
	group.PUT("/:id", p.Update)
	group.DELETE("/:id", p.Delete)
}

type pageQuery struct {
	Limit  *int `form:"limit"`
	Offset *int `form:"offset"`
}

// dropEmptyQuery removes parameters sent without a value, so "?inStock=" is
// treated like an absent inStock instead of binding to false.
func dropEmptyQuery(c *gin.Context) {
	query := c.Request.URL.Query()
	for key, values := range query {
		kept := values[:0]
		for _, v := range values {
			if v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			query.Del(key)
		} else {
			query[key] = kept
		}
	}
	c.Request.URL.RawQuery = query.Encode()
}

func (p *productController) List(c *gin.Context) {
	dropEmptyQuery(c)

	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "invalid filter", err)
		return
	}
	var page pageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		badRequest(c, "invalid pagination", err)
		return
	}

	limit, offset := models.DefaultLimit, 0
	if page.Limit != nil {
		limit = *page.Limit
	}
	if page.Offset != nil {
		offset = *page.Offset
	}

	products, err := p.products.ListProducts(c.Request.Context(), &filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

func (p *productController) Count(c *gin.Context) {
	dropEmptyQuery(c)

	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "invalid filter", err)
		return
	}

	n, err := p.products.CountProducts(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (p *productController) Get(c *gin.Context) {
	product, err := p.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusOK, gin.H{"product": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (p *productController) Create(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "failed to parse body", err)
		return
	}

	product, err := p.products.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

func (p *productController) Update(c *gin.Context) {
	var input models.ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "failed to parse body", err)
		return
	}

	product, err := p.products.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

func (p *productController) Delete(c *gin.Context) {
	deleted, err := p.products.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
