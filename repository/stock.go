package repository

import (
	"context"

	"catalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StockRepository computes the read-only inventory views. Every call is
// evaluated against the current collection; nothing is cached.
type StockRepository interface {
	TotalStockValue(ctx context.Context) (float64, error)
	StockValueByManufacturer(ctx context.Context) ([]models.StockValue, error)
	LowStock(ctx context.Context, threshold int) ([]models.Product, error)
	CriticalStock(ctx context.Context, threshold int) ([]models.CriticalStockProduct, error)
	Manufacturers(ctx context.Context) ([]models.Manufacturer, error)
}

type stockRepository struct {
	coll *mongo.Collection
}

func NewStockRepository(coll *mongo.Collection) StockRepository {
	return &stockRepository{coll: coll}
}

func (r *stockRepository) TotalStockValue(ctx context.Context) (float64, error) {
	var rows []struct {
		TotalValue float64 `bson:"totalValue"`
	}
	if err := r.aggregate(ctx, totalStockValuePipeline(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalValue, nil
}

func (r *stockRepository) StockValueByManufacturer(ctx context.Context) ([]models.StockValue, error) {
	values := []models.StockValue{}
	if err := r.aggregate(ctx, stockValueByManufacturerPipeline(), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// LowStock returns full products with amountInStock below threshold, lowest first.
func (r *stockRepository) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	filter := bson.M{"amountInStock": bson.M{"$lt": threshold}}
	opts := options.Find().SetSort(bson.D{{Key: "amountInStock", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *stockRepository) CriticalStock(ctx context.Context, threshold int) ([]models.CriticalStockProduct, error) {
	rows := []models.CriticalStockProduct{}
	if err := r.aggregate(ctx, criticalStockPipeline(threshold), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stockRepository) Manufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	manufacturers := []models.Manufacturer{}
	if err := r.aggregate(ctx, manufacturersPipeline(), &manufacturers); err != nil {
		return nil, err
	}
	return manufacturers, nil
}

func (r *stockRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
