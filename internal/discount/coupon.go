package discount

import (
	"fmt"

	"github.com/noah-isme/cart-engine/internal/common"
)

// ErrInvalidCoupon is returned when a coupon cannot be constructed, and by
// the cart when an applied coupon carries an unsupported discount kind.
var ErrInvalidCoupon = common.NewAppError("INVALID_COUPON", "invalid coupon", nil)

// Coupon is a cart-scoped, single-use discount rule gated on a minimum cart
// amount. The kind is not validated at construction; an unsupported kind
// surfaces when the coupon is applied.
type Coupon struct {
	minCartAmount float64
	amount        float64
	kind          Kind
}

// NewCoupon constructs a coupon requiring the given minimum cart amount.
func NewCoupon(minCartAmount, amount float64, kind Kind) (*Coupon, error) {
	if minCartAmount < 0 {
		return nil, fmt.Errorf("coupon minimum cart amount must not be negative: %w", ErrInvalidCoupon)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("coupon discount must be positive: %w", ErrInvalidCoupon)
	}
	return &Coupon{minCartAmount: minCartAmount, amount: amount, kind: kind}, nil
}

// MinCartAmount returns the cart total (after campaign discounts) required before use.
func (c *Coupon) MinCartAmount() float64 { return c.minCartAmount }

// Amount returns the discount magnitude: a flat value for Amount coupons,
// a percentage for Rate coupons.
func (c *Coupon) Amount() float64 { return c.amount }

// Kind returns the discount kind.
func (c *Coupon) Kind() Kind { return c.kind }
