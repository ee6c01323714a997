package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/cart-engine/internal/common"
)

// ErrInvalidCategory is returned when a category cannot be constructed from the provided input.
var ErrInvalidCategory = common.NewAppError("INVALID_CATEGORY", "invalid category", nil)

// Category groups products for campaign targeting and delivery counting.
// Immutable after construction and safe to share across carts.
type Category struct {
	id    uuid.UUID
	title string
}

// NewCategory constructs a category with a non-empty title.
func NewCategory(title string) (*Category, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("category title is required: %w", ErrInvalidCategory)
	}
	return &Category{id: uuid.New(), title: title}, nil
}

// ID returns the category identity.
func (c *Category) ID() uuid.UUID { return c.id }

// Title returns the display title.
func (c *Category) Title() string { return c.title }
