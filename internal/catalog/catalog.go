package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	"go.uber.org/zap"
)

// FilterAll selects every product regardless of category.
const FilterAll = "all"

// Product is one purchasable item from the static catalog resource.
// Price is held in cents so line arithmetic stays exact.
type Product struct {
	ID          int
	Name        string
	Category    string
	Price       int64
	Image       string
	Color       string
	Description string
}

// productRecord mirrors the JSON shape of assets/products.json, where
// price is a decimal dollar amount.
type productRecord struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Color       string  `json:"color,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Catalog holds the product collection loaded from the static resource.
// All mutation happens through Load; reads return copies.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
	logger   *zap.Logger
}

func New(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{logger: logger}
}

// Load reads the product list from path and replaces the in-memory
// collection. A read or decode failure is logged and leaves the
// current collection untouched; it is never fatal.
func (c *Catalog) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		c.logger.Error("catalog: read products", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("read products: %w", err)
	}
	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.Error("catalog: decode products", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("decode products: %w", err)
	}
	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    rec.Category,
			Price:       dollarsToCents(rec.Price),
			Image:       rec.Image,
			Color:       rec.Color,
			Description: rec.Description,
		})
	}
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	c.logger.Info("catalog: loaded products", zap.Int("count", len(products)))
	return nil
}

// FindByID returns the product with the given id, if present.
func (c *Catalog) FindByID(id int) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FilterByCategory returns products whose category equals cat exactly,
// in original order. FilterAll (or empty) returns every product. An
// unknown category yields an empty result, not an error.
func (c *Catalog) FilterByCategory(cat string) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cat == "" || cat == FilterAll {
		out := make([]Product, len(c.products))
		copy(out, c.products)
		return out
	}
	var out []Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Len reports the number of loaded products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

func dollarsToCents(d float64) int64 {
	return int64(math.Round(d * 100))
}
