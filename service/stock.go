package service

import (
	"context"

	"catalog/models"
	"catalog/repository"

	"github.com/rs/zerolog"
)

type StockService interface {
	TotalStockValue(ctx context.Context) (float64, error)
	StockValueByManufacturer(ctx context.Context) ([]models.StockValue, error)
	LowStockProducts(ctx context.Context) ([]models.Product, error)
	CriticalStockProducts(ctx context.Context) ([]models.CriticalStockProduct, error)
	ListManufacturers(ctx context.Context) ([]models.Manufacturer, error)
}

type stockService struct {
	repo   repository.StockRepository
	logger zerolog.Logger
}

func NewStockService(repo repository.StockRepository, logger zerolog.Logger) StockService {
	return &stockService{
		repo:   repo,
		logger: logger.With().Str("service", "stock").Logger(),
	}
}

func (s *stockService) TotalStockValue(ctx context.Context) (float64, error) {
	total, err := s.repo.TotalStockValue(ctx)
	if err != nil {
		return 0, s.storeError("compute total stock value", err)
	}
	return total, nil
}

func (s *stockService) StockValueByManufacturer(ctx context.Context) ([]models.StockValue, error) {
	values, err := s.repo.StockValueByManufacturer(ctx)
	if err != nil {
		return nil, s.storeError("compute stock value by manufacturer", err)
	}
	return values, nil
}

func (s *stockService) LowStockProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.LowStock(ctx, models.LowStockThreshold)
	if err != nil {
		return nil, s.storeError("list low stock products", err)
	}
	return products, nil
}

func (s *stockService) CriticalStockProducts(ctx context.Context) ([]models.CriticalStockProduct, error) {
	rows, err := s.repo.CriticalStock(ctx, models.CriticalStockThreshold)
	if err != nil {
		return nil, s.storeError("list critical stock products", err)
	}
	return rows, nil
}

func (s *stockService) ListManufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	manufacturers, err := s.repo.Manufacturers(ctx)
	if err != nil {
		return nil, s.storeError("list manufacturers", err)
	}
	return manufacturers, nil
}

func (s *stockService) storeError(op string, err error) error {
	s.logger.Error().Err(err).Str("op", op).Msg("store operation failed")
	return &StoreError{Op: op, Err: err}
}
