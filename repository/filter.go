package repository

import (
	"regexp"

	"catalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildFilter compiles a product filter into a MongoDB query document.
// Conditions are ANDed. A nil filter matches every product. Listing and
// counting both go through here so they always agree.
func BuildFilter(f *models.ProductFilter) bson.M {
	query := bson.M{}
	if f == nil {
		return query
	}

	if f.Category != nil && *f.Category != "" {
		query["category"] = containsFold(*f.Category)
	}
	if f.ManufacturerName != nil && *f.ManufacturerName != "" {
		query["manufacturer.name"] = containsFold(*f.ManufacturerName)
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	if f.InStock != nil {
		if *f.InStock {
			query["amountInStock"] = bson.M{"$gt": 0}
		} else {
			query["amountInStock"] = bson.M{"$eq": 0}
		}
	}

	return query
}

// containsFold matches s anywhere in the field, ignoring case. s is quoted
// so regex metacharacters in user input match literally.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
