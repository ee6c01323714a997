// Package cart implements the pricing aggregate: an ordered collection of
// line items plus the campaign-selection and coupon-allocation logic that
// derives all cart totals. A cart is a single-threaded mutable aggregate;
// callers sharing one across goroutines must serialize access themselves.
package cart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/noah-isme/cart-engine/internal/catalog"
	"github.com/noah-isme/cart-engine/internal/discount"
)

// DeliveryPricer prices shipping for the cart's current shape. It is treated
// as an opaque strategy reading NumberOfDeliveries and NumberOfProducts.
type DeliveryPricer interface {
	CalculateFor(c *Cart) float64
}

// applyState tracks a discount application that may happen at most once per
// cart lifetime. The only transition is notApplied -> applied; nothing resets it.
type applyState uint8

const (
	notApplied applyState = iota
	applied
)

func (s applyState) done() bool { return s == applied }

// Cart owns the line items and enforces that at most one campaign and at
// most one coupon are ever applied to it. Line items are kept in insertion
// order and keyed by product identity; adding a product already present
// replaces its line, discarding any discounts written to the old one. No
// total is cached, so every getter reflects the latest mutations.
type Cart struct {
	id            uuid.UUID
	items         []*Item
	delivery      DeliveryPricer
	campaignState applyState
	couponState   applyState
}

// New creates an empty cart priced by the given delivery policy.
func New(delivery DeliveryPricer) *Cart {
	return &Cart{id: uuid.New(), delivery: delivery}
}

// ID returns the cart identity.
func (c *Cart) ID() uuid.UUID { return c.id }

// Items returns the line items in insertion order. The slice is a copy; the
// items themselves are the live aggregates.
func (c *Cart) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// CampaignApplied reports whether a campaign has been applied.
func (c *Cart) CampaignApplied() bool { return c.campaignState.done() }

// CouponApplied reports whether a coupon has been applied.
func (c *Cart) CouponApplied() bool { return c.couponState.done() }

// AddItem adds quantity units of the product as a new line item. An existing
// line for the same product is removed first, so the new line lands at the
// end with zeroed discounts. Adding items after a campaign or coupon was
// applied does not retroactively adjust already-written discounts.
func (c *Cart) AddItem(product *catalog.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("product is required: %w", ErrItemNotAdded)
	}
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1: %w", ErrItemNotAdded)
	}
	if at := c.indexOf(product.ID()); at >= 0 {
		c.items = append(c.items[:at], c.items[at+1:]...)
	}
	item, err := NewItem(product, quantity)
	if err != nil {
		return fmt.Errorf("create line item: %w", err)
	}
	c.items = append(c.items, item)
	return nil
}

// RemoveItem removes the product's line item.
func (c *Cart) RemoveItem(product *catalog.Product) error {
	if product == nil {
		return fmt.Errorf("product is required: %w", ErrItemNotFound)
	}
	at := c.indexOf(product.ID())
	if at < 0 {
		return fmt.Errorf("product %q is not in the cart: %w", product.Title(), ErrItemNotFound)
	}
	c.items = append(c.items[:at], c.items[at+1:]...)
	return nil
}

// Clear removes every line item. The one-shot campaign and coupon states are
// left untouched; only discarding the cart resets those.
func (c *Cart) Clear() {
	c.items = nil
}

// ApplyCampaigns selects at most one winner from the candidate set and
// applies it. Campaigns are mutually exclusive across the whole cart, never
// combined. When no candidate qualifies the call succeeds without marking
// the cart, so a later call with a better candidate set can still win.
func (c *Cart) ApplyCampaigns(campaigns ...*discount.Campaign) error {
	if len(campaigns) == 0 {
		return fmt.Errorf("at least one campaign is required: %w", ErrNoCampaign)
	}
	if c.campaignState.done() {
		return ErrCampaignApplied
	}
	winner, shares := selectCampaign(c.items, campaigns)
	if winner == nil {
		CampaignOutcomeTotal.WithLabelValues("none", "skipped").Inc()
		return nil
	}
	for item, share := range shares {
		item.applyCampaignDiscount(share)
	}
	if len(shares) > 0 {
		c.campaignState = applied
		CampaignOutcomeTotal.WithLabelValues(string(winner.Kind()), "applied").Inc()
	}
	return nil
}

// ApplyCoupon allocates the coupon's discount across all line items. An
// Amount coupon splits its magnitude evenly over the line count; a Rate
// coupon takes its percentage of each line's total net of any campaign
// discount already applied.
func (c *Cart) ApplyCoupon(coupon *discount.Coupon) error {
	if coupon == nil {
		return fmt.Errorf("a coupon is required: %w", ErrNoCoupon)
	}
	if c.couponState.done() {
		return ErrCouponApplied
	}
	if c.TotalAmountAfterDiscounts() < coupon.MinCartAmount() {
		CouponOutcomeTotal.WithLabelValues(string(coupon.Kind()), "rejected").Inc()
		return fmt.Errorf("cart total must be at least %v: %w", coupon.MinCartAmount(), ErrMinCartAmountNotMet)
	}
	switch coupon.Kind() {
	case discount.Amount:
		if len(c.items) > 0 {
			each := coupon.Amount() / float64(len(c.items))
			for _, item := range c.items {
				item.applyCouponDiscount(each)
			}
		}
	case discount.Rate:
		for _, item := range c.items {
			item.applyCouponDiscount(item.TotalPriceAfterDiscounts() * coupon.Amount() / 100)
		}
	default:
		return fmt.Errorf("unsupported discount kind %q: %w", coupon.Kind(), discount.ErrInvalidCoupon)
	}
	c.couponState = applied
	CouponOutcomeTotal.WithLabelValues(string(coupon.Kind()), "applied").Inc()
	return nil
}

// TotalAmount returns the gross cart total before any discount.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c.items {
		total += item.TotalPrice()
	}
	return total
}

// CampaignDiscount returns the summed campaign shares across all lines.
func (c *Cart) CampaignDiscount() float64 {
	var total float64
	for _, item := range c.items {
		total += item.CampaignDiscount()
	}
	return total
}

// CouponDiscount returns the summed coupon shares across all lines.
func (c *Cart) CouponDiscount() float64 {
	var total float64
	for _, item := range c.items {
		total += item.CouponDiscount()
	}
	return total
}

// TotalDiscount returns campaign plus coupon discounts.
func (c *Cart) TotalDiscount() float64 {
	return c.CampaignDiscount() + c.CouponDiscount()
}

// TotalAmountAfterDiscounts returns the cart total net of all discounts.
func (c *Cart) TotalAmountAfterDiscounts() float64 {
	return c.TotalAmount() - c.TotalDiscount()
}

// DeliveryCost prices shipping via the configured policy. A cart built
// without a policy ships for free.
func (c *Cart) DeliveryCost() float64 {
	if c.delivery == nil {
		return 0
	}
	return c.delivery.CalculateFor(c)
}

// FinalAmount returns the amount to charge: discounted total plus delivery.
func (c *Cart) FinalAmount() float64 {
	return c.TotalAmountAfterDiscounts() + c.DeliveryCost()
}

// NumberOfDeliveries counts the distinct categories present, the unit the
// shipping formula charges per delivery.
func (c *Cart) NumberOfDeliveries() int {
	seen := make(map[uuid.UUID]struct{}, len(c.items))
	for _, item := range c.items {
		seen[item.Product().Category().ID()] = struct{}{}
	}
	return len(seen)
}

// NumberOfProducts counts the distinct line items.
func (c *Cart) NumberOfProducts() int {
	return len(c.items)
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i, item := range c.items {
		if item.Product().ID() == productID {
			return i
		}
	}
	return -1
}
