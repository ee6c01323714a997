package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/cart-engine/internal/common"
)

// ErrInvalidProduct is returned when a product cannot be constructed from the provided input.
var ErrInvalidProduct = common.NewAppError("INVALID_PRODUCT", "invalid product", nil)

// Product is a priced catalog entry belonging to exactly one category.
// The category reference is not owned by the product and must outlive it.
type Product struct {
	id       uuid.UUID
	title    string
	price    float64
	category *Category
}

// NewProduct constructs a product with a non-empty title, a positive price and a category.
func NewProduct(title string, price float64, category *Category) (*Product, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("product title is required: %w", ErrInvalidProduct)
	}
	if price <= 0 {
		return nil, fmt.Errorf("product price must be positive: %w", ErrInvalidProduct)
	}
	if category == nil {
		return nil, fmt.Errorf("product category is required: %w", ErrInvalidProduct)
	}
	return &Product{id: uuid.New(), title: title, price: price, category: category}, nil
}

// ID returns the product identity.
func (p *Product) ID() uuid.UUID { return p.id }

// Title returns the display title.
func (p *Product) Title() string { return p.title }

// Price returns the unit price.
func (p *Product) Price() float64 { return p.price }

// Category returns the owning category.
func (p *Product) Category() *Category { return p.category }
