// Package shipping prices cart delivery. The engine only sees the
// cart.DeliveryPricer contract; the formula here is one interchangeable
// policy, not part of the pricing core.
package shipping

import "github.com/noah-isme/cart-engine/internal/cart"

// DefaultFixedCost is the flat handling cost charged on every delivery.
const DefaultFixedCost = 2.99

// Calculator prices delivery as a pure function of the cart's distinct
// categories (deliveries) and distinct line items (products), plus a fixed cost.
type Calculator struct {
	costPerDelivery float64
	costPerProduct  float64
	fixedCost       float64
}

// NewCalculator builds the reference delivery policy.
//
// TODO: fixedCost is accepted but never charged; every calculator bills
// DefaultFixedCost instead. Confirm the intended billing with product before
// honoring the argument, since shipped totals depend on the current behavior.
func NewCalculator(costPerDelivery, costPerProduct, fixedCost float64) *Calculator {
	_ = fixedCost
	return &Calculator{
		costPerDelivery: costPerDelivery,
		costPerProduct:  costPerProduct,
		fixedCost:       DefaultFixedCost,
	}
}

// CalculateFor implements cart.DeliveryPricer.
func (c *Calculator) CalculateFor(crt *cart.Cart) float64 {
	deliveries := float64(crt.NumberOfDeliveries())
	products := float64(crt.NumberOfProducts())
	return c.costPerDelivery*deliveries + c.costPerProduct*products + c.fixedCost
}
