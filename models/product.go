package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultLimit           = 10
	LowStockThreshold      = 10
	CriticalStockThreshold = 5
)

// Product is a catalog entry. Manufacturer and its Contact are owned by value.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	SKU           string             `bson:"sku" json:"sku"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Category      string             `bson:"category" json:"category"`
	Manufacturer  Manufacturer       `bson:"manufacturer" json:"manufacturer"`
	AmountInStock int                `bson:"amountInStock" json:"amountInStock"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Manufacturer struct {
	Name        string  `bson:"name" json:"name" validate:"required"`
	Country     string  `bson:"country" json:"country" validate:"required"`
	Website     string  `bson:"website,omitempty" json:"website,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Address     string  `bson:"address,omitempty" json:"address,omitempty"`
	Contact     Contact `bson:"contact" json:"contact"`
}

type Contact struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Email string `bson:"email" json:"email" validate:"required"`
	Phone string `bson:"phone" json:"phone" validate:"required"`
}

// ProductInput is the create payload. Price is a pointer so that a missing
// price can be told apart from a free product.
type ProductInput struct {
	Name          string        `json:"name" validate:"required"`
	SKU           string        `json:"sku" validate:"required"`
	Description   string        `json:"description"`
	Price         *float64      `json:"price" validate:"required,gte=0"`
	Category      string        `json:"category" validate:"required"`
	Manufacturer  *Manufacturer `json:"manufacturer" validate:"required"`
	AmountInStock *int          `json:"amountInStock" validate:"omitempty,gte=0"`
}

// Product builds the document to insert. Id and timestamps are left for the store.
func (in ProductInput) Product() Product {
	p := Product{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Category:    in.Category,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Manufacturer != nil {
		p.Manufacturer = *in.Manufacturer
	}
	if in.AmountInStock != nil {
		p.AmountInStock = *in.AmountInStock
	}
	return p
}

// ProductUpdateInput is a partial update. Only fields with Set applied are written.
type ProductUpdateInput struct {
	Name          Optional[string]       `json:"name"`
	SKU           Optional[string]       `json:"sku"`
	Description   Optional[string]       `json:"description"`
	Price         Optional[float64]      `json:"price"`
	Category      Optional[string]       `json:"category"`
	Manufacturer  Optional[Manufacturer] `json:"manufacturer"`
	AmountInStock Optional[int]          `json:"amountInStock"`
}

// ProductFilter narrows product listings. Nil fields apply no constraint.
type ProductFilter struct {
	Category         *string  `form:"category" json:"category,omitempty"`
	ManufacturerName *string  `form:"manufacturerName" json:"manufacturerName,omitempty"`
	MinPrice         *float64 `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice         *float64 `form:"maxPrice" json:"maxPrice,omitempty"`
	InStock          *bool    `form:"inStock" json:"inStock,omitempty"`
}

type StockValue struct {
	Manufacturer string  `bson:"manufacturer" json:"manufacturer"`
	TotalValue   float64 `bson:"totalValue" json:"totalValue"`
}

// CriticalStockProduct flattens the manufacturer contact so alerting needs no second lookup.
type CriticalStockProduct struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	Name             string             `bson:"name" json:"name"`
	SKU              string             `bson:"sku" json:"sku"`
	AmountInStock    int                `bson:"amountInStock" json:"amountInStock"`
	ManufacturerName string             `bson:"manufacturerName" json:"manufacturerName"`
	ContactName      string             `bson:"contactName" json:"contactName"`
	ContactPhone     string             `bson:"contactPhone" json:"contactPhone"`
	ContactEmail     string             `bson:"contactEmail" json:"contactEmail"`
}
