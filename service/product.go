package service

import (
	"context"
	"errors"

	"catalog/models"
	"catalog/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter *models.ProductFilter, limit, offset int) ([]models.Product, error)
	CountProducts(ctx context.Context, filter *models.ProductFilter) (int64, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, input models.ProductUpdateInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidProductID
	}
	return oid, nil
}

func (s *productService) ListProducts(ctx context.Context, filter *models.ProductFilter, limit, offset int) ([]models.Product, error) {
	if limit < 0 {
		return nil, invalid("limit", "gte", "0")
	}
	if offset < 0 {
		return nil, invalid("offset", "gte", "0")
	}

	products, err := s.repo.List(ctx, filter, int64(limit), int64(offset))
	if err != nil {
		return nil, s.storeError("list products", err)
	}
	return products, nil
}

func (s *productService) CountProducts(ctx context.Context, filter *models.ProductFilter) (int64, error) {
	n, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, s.storeError("count products", err)
	}
	return n, nil
}

// GetProduct returns nil without an error when no product has the id.
func (s *productService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil
		}
		return nil, s.storeError("get product", err)
	}
	return &product, nil
}

// CreateProduct validates and inserts a product. The SKU lookup before the
// insert only yields an earlier, clearer error; concurrent writers can still
// race past it, and the unique index on sku is what actually rejects them.
func (s *productService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if errs := models.ValidateInput(input); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	_, err := s.repo.GetBySKU(ctx, input.SKU)
	switch {
	case err == nil:
		return nil, &DuplicateSKUError{SKU: input.SKU}
	case !errors.Is(err, repository.ErrProductNotFound):
		return nil, s.storeError("create product", err)
	}

	product := input.Product()
	if err := s.repo.Create(ctx, &product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, &DuplicateSKUError{SKU: input.SKU}
		}
		return nil, s.storeError("create product", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.Hex()).
		Str("sku", product.SKU).
		Msg("product created")
	return &product, nil
}

// UpdateProduct writes only the fields present in input and returns the
// product as stored afterwards.
func (s *productService) UpdateProduct(ctx context.Context, id string, input models.ProductUpdateInput) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if errs := models.ValidateUpdate(input); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if input.SKU.Present() {
		existing, err := s.repo.GetBySKU(ctx, input.SKU.Value)
		switch {
		case err == nil && existing.ID != oid:
			return nil, &DuplicateSKUError{SKU: input.SKU.Value}
		case err != nil && !errors.Is(err, repository.ErrProductNotFound):
			return nil, s.storeError("update product", err)
		}
	}

	product, err := s.repo.Update(ctx, oid, input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, ErrProductNotFound
		case errors.Is(err, repository.ErrDuplicateKey) && input.SKU.Present():
			return nil, &DuplicateSKUError{SKU: input.SKU.Value}
		}
		// A key violation without a new sku names no SKU; keep it a store failure.
		return nil, s.storeError("update product", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.Hex()).
		Str("sku", product.SKU).
		Msg("product updated")
	return &product, nil
}

// DeleteProduct reports whether a product was removed. Deleting an unknown
// id is not an error.
func (s *productService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return false, s.storeError("delete product", err)
	}
	if deleted {
		s.logger.Info().Str("product_id", id).Msg("product deleted")
	}
	return deleted, nil
}

func (s *productService) storeError(op string, err error) error {
	s.logger.Error().Err(err).Str("op", op).Msg("store operation failed")
	return &StoreError{Op: op, Err: err}
}
