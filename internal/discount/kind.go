// Package discount holds the campaign and coupon rule entities consumed by
// the cart pricing engine. Rules are immutable after construction; whether a
// rule actually applies to a given cart is decided by the engine, not here.
package discount

// Kind selects how a discount magnitude is interpreted.
type Kind string

const (
	// Amount is a flat monetary discount.
	Amount Kind = "amount"
	// Rate is a percentage discount (magnitude is percent, not basis points).
	Rate Kind = "rate"
)
