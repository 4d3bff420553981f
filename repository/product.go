package repository

import (
	"context"
	"time"

	"catalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	GetBySKU(ctx context.Context, sku string) (models.Product, error)
	List(ctx context.Context, filter *models.ProductFilter, limit, offset int64) ([]models.Product, error)
	Count(ctx context.Context, filter *models.ProductFilter) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ProductUpdateInput) (models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type productRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewProductRepository(coll *mongo.Collection) ProductRepository {
	return &productRepository{coll: coll, now: time.Now}
}

// Create assigns the id and both timestamps, then inserts. A clash on the
// unique sku index comes back as ErrDuplicateKey.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	// BSON dates keep milliseconds only.
	now := r.now().UTC().Truncate(time.Millisecond)
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		product.ID = primitive.NilObjectID
		return translate(err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	return r.findOne(ctx, bson.M{"sku": sku})
}

func (r *productRepository) findOne(ctx context.Context, filter bson.M) (models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, filter).Decode(&product); err != nil {
		return models.Product{}, translate(err)
	}
	return product, nil
}

// List returns matching products, newest first. A limit of 0 means no limit.
func (r *productRepository) List(ctx context.Context, filter *models.ProductFilter, limit, offset int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(offset)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *models.ProductFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, BuildFilter(filter))
}

// Update applies the supplied fields and returns the document as stored
// after the write.
func (r *productRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.ProductUpdateInput) (models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, updateDocument(patch), opts).Decode(&product)
	if err != nil {
		return models.Product{}, translate(err)
	}
	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// updateDocument turns a patch into $set/$unset operators. updatedAt is
// always refreshed by the server clock.
func updateDocument(patch models.ProductUpdateInput) bson.D {
	set := bson.D{}
	unset := bson.D{}

	if patch.Name.Present() {
		set = append(set, bson.E{Key: "name", Value: patch.Name.Value})
	}
	if patch.SKU.Present() {
		set = append(set, bson.E{Key: "sku", Value: patch.SKU.Value})
	}
	if patch.Description.Set {
		if patch.Description.Null || patch.Description.Value == "" {
			unset = append(unset, bson.E{Key: "description", Value: ""})
		} else {
			set = append(set, bson.E{Key: "description", Value: patch.Description.Value})
		}
	}
	if patch.Price.Present() {
		set = append(set, bson.E{Key: "price", Value: patch.Price.Value})
	}
	if patch.Category.Present() {
		set = append(set, bson.E{Key: "category", Value: patch.Category.Value})
	}
	if patch.Manufacturer.Present() {
		set = append(set, bson.E{Key: "manufacturer", Value: patch.Manufacturer.Value})
	}
	if patch.AmountInStock.Present() {
		set = append(set, bson.E{Key: "amountInStock", Value: patch.AmountInStock.Value})
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}
	return append(update, bson.E{Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}})
}
