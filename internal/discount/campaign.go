package discount

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/noah-isme/cart-engine/internal/catalog"
	"github.com/noah-isme/cart-engine/internal/common"
)

// ErrInvalidCampaign is returned when a campaign cannot be constructed from the provided input.
var ErrInvalidCampaign = common.NewAppError("INVALID_CAMPAIGN", "invalid campaign", nil)

// Campaign is a category-scoped discount rule. It qualifies for a cart only
// when the cart holds strictly more than MinQuantity units of the target
// category; exactly MinQuantity is not enough.
type Campaign struct {
	id          uuid.UUID
	category    *catalog.Category
	amount      float64
	minQuantity int
	kind        Kind
}

// NewCampaign constructs a campaign targeting the given category.
func NewCampaign(category *catalog.Category, amount float64, minQuantity int, kind Kind) (*Campaign, error) {
	if category == nil {
		return nil, fmt.Errorf("campaign category is required: %w", ErrInvalidCampaign)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("campaign discount must be positive: %w", ErrInvalidCampaign)
	}
	if minQuantity < 1 {
		return nil, fmt.Errorf("campaign minimum quantity must be at least 1: %w", ErrInvalidCampaign)
	}
	return &Campaign{
		id:          uuid.New(),
		category:    category,
		amount:      amount,
		minQuantity: minQuantity,
		kind:        kind,
	}, nil
}

// ID returns the campaign identity.
func (c *Campaign) ID() uuid.UUID { return c.id }

// Category returns the target category.
func (c *Campaign) Category() *catalog.Category { return c.category }

// Amount returns the discount magnitude: a flat value for Amount campaigns,
// a percentage for Rate campaigns.
func (c *Campaign) Amount() float64 { return c.amount }

// MinQuantity returns the category quantity the cart must strictly exceed.
func (c *Campaign) MinQuantity() int { return c.minQuantity }

// Kind returns the discount kind.
func (c *Campaign) Kind() Kind { return c.kind }
