package cart

import (
	"fmt"

	"github.com/noah-isme/cart-engine/internal/catalog"
	"github.com/noah-isme/cart-engine/internal/common"
)

// ErrInvalidItem is returned when a line item cannot be constructed.
var ErrInvalidItem = common.NewAppError("INVALID_ITEM", "invalid cart item", nil)

// Item is one product's quantity and discount state within a cart.
//
// The two discount fields are written by the cart with overwrite semantics:
// applying a discount replaces the previous value, it never accumulates.
// Discounts are not clamped, so TotalPriceAfterDiscounts can go negative
// when a flat discount exceeds the line total.
type Item struct {
	product          *catalog.Product
	quantity         int
	campaignDiscount float64
	couponDiscount   float64
}

// NewItem constructs a line item for the product with a quantity of at least 1.
// Quantity is fixed for the item's lifetime; the cart replaces the whole line
// to change it.
func NewItem(product *catalog.Product, quantity int) (*Item, error) {
	if product == nil {
		return nil, fmt.Errorf("product is required: %w", ErrInvalidItem)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidItem)
	}
	return &Item{product: product, quantity: quantity}, nil
}

// Product returns the product this line holds.
func (i *Item) Product() *catalog.Product { return i.product }

// Quantity returns the fixed line quantity.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the product's unit price.
func (i *Item) UnitPrice() float64 { return i.product.Price() }

// TotalPrice returns the gross line total before any discount.
func (i *Item) TotalPrice() float64 { return i.product.Price() * float64(i.quantity) }

// CampaignDiscount returns the campaign share currently written to this line.
func (i *Item) CampaignDiscount() float64 { return i.campaignDiscount }

// CouponDiscount returns the coupon share currently written to this line.
func (i *Item) CouponDiscount() float64 { return i.couponDiscount }

// TotalDiscount returns the sum of the campaign and coupon shares.
func (i *Item) TotalDiscount() float64 { return i.campaignDiscount + i.couponDiscount }

// TotalPriceAfterDiscounts returns the line total net of both discounts.
func (i *Item) TotalPriceAfterDiscounts() float64 { return i.TotalPrice() - i.TotalDiscount() }

// applyCampaignDiscount overwrites the campaign share. Not additive.
func (i *Item) applyCampaignDiscount(amount float64) { i.campaignDiscount = amount }

// applyCouponDiscount overwrites the coupon share. Not additive.
func (i *Item) applyCouponDiscount(amount float64) { i.couponDiscount = amount }
