package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProductService struct {
	list   func(filter *models.ProductFilter, limit, offset int) ([]models.Product, error)
	count  func(filter *models.ProductFilter) (int64, error)
	get    func(id string) (*models.Product, error)
	create func(input models.ProductInput) (*models.Product, error)
	update func(id string, input models.ProductUpdateInput) (*models.Product, error)
	del    func(id string) (bool, error)
}

func (s *stubProductService) ListProducts(_ context.Context, filter *models.ProductFilter, limit, offset int) ([]models.Product, error) {
	return s.list(filter, limit, offset)
}

func (s *stubProductService) CountProducts(_ context.Context, filter *models.ProductFilter) (int64, error) {
	return s.count(filter)
}

func (s *stubProductService) GetProduct(_ context.Context, id string) (*models.Product, error) {
	return s.get(id)
}

func (s *stubProductService) CreateProduct(_ context.Context, input models.ProductInput) (*models.Product, error) {
	return s.create(input)
}

func (s *stubProductService) UpdateProduct(_ context.Context, id string, input models.ProductUpdateInput) (*models.Product, error) {
	return s.update(id, input)
}

func (s *stubProductService) DeleteProduct(_ context.Context, id string) (bool, error) {
	return s.del(id)
}

type stubStockService struct {
	err           error
	total         float64
	values        []models.StockValue
	low           []models.Product
	critical      []models.CriticalStockProduct
	manufacturers []models.Manufacturer
}

func (s *stubStockService) TotalStockValue(context.Context) (float64, error) {
	return s.total, s.err
}

func (s *stubStockService) StockValueByManufacturer(context.Context) ([]models.StockValue, error) {
	return s.values, s.err
}

func (s *stubStockService) LowStockProducts(context.Context) ([]models.Product, error) {
	return s.low, s.err
}

func (s *stubStockService) CriticalStockProducts(context.Context) ([]models.CriticalStockProduct, error) {
	return s.critical, s.err
}

func (s *stubStockService) ListManufacturers(context.Context) ([]models.Manufacturer, error) {
	return s.manufacturers, s.err
}

func serve(t *testing.T, ctrl Controller, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	r := gin.New()
	ctrl.Register(r)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}
