package cart

import "github.com/noah-isme/cart-engine/internal/common"

// All cart failures are deterministic validation errors; nothing is retried
// and no failure leaves partial state behind.
var (
	// ErrItemNotAdded is returned when AddItem receives no product or a quantity below 1.
	ErrItemNotAdded = common.NewAppError("ITEM_NOT_ADDED", "item not added to cart", nil)
	// ErrItemNotFound is returned when RemoveItem targets a product not present in the cart.
	ErrItemNotFound = common.NewAppError("ITEM_NOT_FOUND", "item not found in cart", nil)
	// ErrNoCampaign is returned when ApplyCampaigns receives an empty candidate set.
	ErrNoCampaign = common.NewAppError("NO_CAMPAIGN_SPECIFIED", "no campaign specified", nil)
	// ErrCampaignApplied is returned when a campaign has already been applied to this cart.
	ErrCampaignApplied = common.NewAppError("CAMPAIGN_ALREADY_APPLIED", "a campaign can be applied to a cart only once", nil)
	// ErrNoCoupon is returned when ApplyCoupon receives no coupon.
	ErrNoCoupon = common.NewAppError("NO_COUPON_SPECIFIED", "no coupon specified", nil)
	// ErrCouponApplied is returned when a coupon has already been applied to this cart.
	ErrCouponApplied = common.NewAppError("COUPON_ALREADY_APPLIED", "a coupon can be applied to a cart only once", nil)
	// ErrMinCartAmountNotMet is returned when the cart total after campaign
	// discounts is below the coupon's minimum cart amount.
	ErrMinCartAmountNotMet = common.NewAppError("MIN_CART_AMOUNT_NOT_MET", "cart total below coupon minimum", nil)
)
