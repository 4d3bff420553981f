package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"catalog/models"
	"catalog/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeProductRepo keeps products in memory and enforces the sku index the
// way MongoDB would.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
	calls    int
	clock    time.Time

	// hideSKU makes GetBySKU miss, as a concurrent writer racing the
	// pre-check would.
	hideSKU bool
	err     error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[primitive.ObjectID]models.Product{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeProductRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeProductRepo) skuTaken(sku string, except primitive.ObjectID) bool {
	for id, p := range f.products {
		if p.SKU == sku && id != except {
			return true
		}
	}
	return false
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	if f.skuTaken(p.SKU, primitive.NilObjectID) {
		return repository.ErrDuplicateKey
	}
	now := f.tick()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return models.Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return models.Product{}, f.err
	}
	if !f.hideSKU {
		for _, p := range f.products {
			if p.SKU == sku {
				return p, nil
			}
		}
	}
	return models.Product{}, repository.ErrProductNotFound
}

func (f *fakeProductRepo) List(_ context.Context, filter *models.ProductFilter, limit, offset int64) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	matched := f.match(filter)
	if offset >= int64(len(matched)) {
		return []models.Product{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeProductRepo) Count(_ context.Context, filter *models.ProductFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.match(filter))), nil
}

func (f *fakeProductRepo) match(filter *models.ProductFilter) []models.Product {
	out := []models.Product{}
	for _, p := range f.products {
		if filter != nil {
			if filter.Category != nil && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(*filter.Category)) {
				continue
			}
			if filter.ManufacturerName != nil && !strings.Contains(strings.ToLower(p.Manufacturer.Name), strings.ToLower(*filter.ManufacturerName)) {
				continue
			}
			if filter.MinPrice != nil && p.Price < *filter.MinPrice {
				continue
			}
			if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
				continue
			}
			if filter.InStock != nil && (*filter.InStock != (p.AmountInStock > 0)) {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, patch models.ProductUpdateInput) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return models.Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, repository.ErrProductNotFound
	}
	if patch.SKU.Present() && f.skuTaken(patch.SKU.Value, id) {
		return models.Product{}, repository.ErrDuplicateKey
	}

	if patch.Name.Present() {
		p.Name = patch.Name.Value
	}
	if patch.SKU.Present() {
		p.SKU = patch.SKU.Value
	}
	if patch.Description.Set {
		p.Description = patch.Description.Value
	}
	if patch.Price.Present() {
		p.Price = patch.Price.Value
	}
	if patch.Category.Present() {
		p.Category = patch.Category.Value
	}
	if patch.Manufacturer.Present() {
		p.Manufacturer = patch.Manufacturer.Value
	}
	if patch.AmountInStock.Present() {
		p.AmountInStock = patch.AmountInStock.Value
	}
	p.UpdatedAt = f.tick()
	f.products[id] = p
	return p, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

// fakeStockRepo records the thresholds it is asked for and serves rows from
// a fixed product set.
type fakeStockRepo struct {
	products   []models.Product
	thresholds []int
	err        error
}

func (f *fakeStockRepo) TotalStockValue(context.Context) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var total float64
	for _, p := range f.products {
		total += p.Price * float64(p.AmountInStock)
	}
	return total, nil
}

func (f *fakeStockRepo) StockValueByManufacturer(context.Context) ([]models.StockValue, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := map[string]float64{}
	for _, p := range f.products {
		totals[p.Manufacturer.Name] += p.Price * float64(p.AmountInStock)
	}
	out := []models.StockValue{}
	for name, v := range totals {
		out = append(out, models.StockValue{Manufacturer: name, TotalValue: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalValue != out[j].TotalValue {
			return out[i].TotalValue > out[j].TotalValue
		}
		return out[i].Manufacturer < out[j].Manufacturer
	})
	return out, nil
}

func (f *fakeStockRepo) below(threshold int) []models.Product {
	f.thresholds = append(f.thresholds, threshold)
	out := []models.Product{}
	for _, p := range f.products {
		if p.AmountInStock < threshold {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AmountInStock < out[j].AmountInStock })
	return out
}

func (f *fakeStockRepo) LowStock(_ context.Context, threshold int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.below(threshold), nil
}

func (f *fakeStockRepo) CriticalStock(_ context.Context, threshold int) ([]models.CriticalStockProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := []models.CriticalStockProduct{}
	for _, p := range f.below(threshold) {
		rows = append(rows, models.CriticalStockProduct{
			ID:               p.ID,
			Name:             p.Name,
			SKU:              p.SKU,
			AmountInStock:    p.AmountInStock,
			ManufacturerName: p.Manufacturer.Name,
			ContactName:      p.Manufacturer.Contact.Name,
			ContactPhone:     p.Manufacturer.Contact.Phone,
			ContactEmail:     p.Manufacturer.Contact.Email,
		})
	}
	return rows, nil
}

func (f *fakeStockRepo) Manufacturers(context.Context) ([]models.Manufacturer, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[models.Manufacturer]bool{}
	out := []models.Manufacturer{}
	for _, p := range f.products {
		if !seen[p.Manufacturer] {
			seen[p.Manufacturer] = true
			out = append(out, p.Manufacturer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
