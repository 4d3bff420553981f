package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var stockValueExpr = bson.D{{Key: "$multiply", Value: bson.A{"$price", "$amountInStock"}}}

// totalStockValuePipeline sums price*amountInStock over the whole collection.
// An empty collection yields no output document.
func totalStockValuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "stockValue", Value: stockValueExpr},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: "$stockValue"}}},
		}}},
	}
}

// stockValueByManufacturerPipeline groups by manufacturer name, highest value
// first. Equal totals fall back to name order.
func stockValueByManufacturerPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "manufacturer", Value: "$manufacturer.name"},
			{Key: "stockValue", Value: stockValueExpr},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$manufacturer"},
			{Key: "totalValue", Value: bson.D{{Key: "$sum", Value: "$stockValue"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "manufacturer", Value: "$_id"},
			{Key: "totalValue", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "totalValue", Value: -1},
			{Key: "manufacturer", Value: 1},
		}}},
	}
}

// criticalStockPipeline lists products below threshold with the manufacturer
// contact flattened onto each row.
func criticalStockPipeline(threshold int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "amountInStock", Value: bson.D{{Key: "$lt", Value: threshold}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "amountInStock", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "sku", Value: 1},
			{Key: "amountInStock", Value: 1},
			{Key: "manufacturerName", Value: "$manufacturer.name"},
			{Key: "contactName", Value: "$manufacturer.contact.name"},
			{Key: "contactPhone", Value: "$manufacturer.contact.phone"},
			{Key: "contactEmail", Value: "$manufacturer.contact.email"},
		}}},
	}
}

// manufacturersPipeline returns the distinct manufacturer records. The whole
// record, contact included, is the grouping key, so two records sharing a
// name but differing anywhere else are listed separately.
func manufacturersPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "name", Value: "$manufacturer.name"},
				{Key: "country", Value: "$manufacturer.country"},
				{Key: "website", Value: "$manufacturer.website"},
				{Key: "description", Value: "$manufacturer.description"},
				{Key: "address", Value: "$manufacturer.address"},
				{Key: "contact", Value: "$manufacturer.contact"},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "name", Value: "$_id.name"},
			{Key: "country", Value: "$_id.country"},
			{Key: "website", Value: "$_id.website"},
			{Key: "description", Value: "$_id.description"},
			{Key: "address", Value: "$_id.address"},
			{Key: "contact", Value: "$_id.contact"},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "country", Value: 1},
			{Key: "website", Value: 1},
			{Key: "contact.email", Value: 1},
		}}},
	}
}
