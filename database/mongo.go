package database

import (
	"context"
	"fmt"
	"time"

	"catalog/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const SKUIndexName = "sku_unique"

// ConnectMongo dials the deployment and verifies it with a ping.
func ConnectMongo(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
	return client, nil
}

func ProductCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
}

// ProductIndexes are the indexes the product collection relies on. The sku
// index is what enforces uniqueness under concurrent writers.
func ProductIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(SKUIndexName),
		},
		{
			Keys:    bson.D{{Key: "amountInStock", Value: 1}},
			Options: options.Index().SetName("amount_in_stock"),
		},
		{
			Keys:    bson.D{{Key: "manufacturer.name", Value: 1}},
			Options: options.Index().SetName("manufacturer_name"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at"),
		},
	}
}

func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := coll.Indexes().CreateMany(ctx, ProductIndexes()); err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

// Ping reports whether the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}
