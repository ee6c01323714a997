package cart_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cart-engine/internal/cart"
	"github.com/noah-isme/cart-engine/internal/catalog"
	"github.com/noah-isme/cart-engine/internal/common"
	"github.com/noah-isme/cart-engine/internal/discount"
)

// stubPricer charges a fixed delivery cost regardless of cart shape.
type stubPricer struct {
	cost float64
}

func (s stubPricer) CalculateFor(*cart.Cart) float64 { return s.cost }

func newCategory(t *testing.T, title string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(title)
	require.NoError(t, err)
	return category
}

func newProduct(t *testing.T, category *catalog.Category, title string, price float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(title, price, category)
	require.NoError(t, err)
	return product
}

func newCampaign(t *testing.T, category *catalog.Category, amount float64, minQuantity int, kind discount.Kind) *discount.Campaign {
	t.Helper()
	campaign, err := discount.NewCampaign(category, amount, minQuantity, kind)
	require.NoError(t, err)
	return campaign
}

func newCoupon(t *testing.T, minCartAmount, amount float64, kind discount.Kind) *discount.Coupon {
	t.Helper()
	coupon, err := discount.NewCoupon(minCartAmount, amount, kind)
	require.NoError(t, err)
	return coupon
}

func TestAddItem(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	apple := newProduct(t, food, "Apple", 25.0)

	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(apple, 3))

	items := basket.Items()
	require.Len(t, items, 1)
	require.Same(t, apple, items[0].Product())
	require.Equal(t, 3, items[0].Quantity())
}

func TestAddItemValidation(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	apple := newProduct(t, food, "Apple", 25.0)
	basket := cart.New(nil)

	err := basket.AddItem(nil, 3)
	require.ErrorIs(t, err, cart.ErrItemNotAdded)
	require.Equal(t, "ITEM_NOT_ADDED", common.ErrorCode(err))

	require.ErrorIs(t, basket.AddItem(apple, 0), cart.ErrItemNotAdded)
	require.ErrorIs(t, basket.AddItem(apple, -3), cart.ErrItemNotAdded)
	require.Empty(t, basket.Items())
}

func TestAddDuplicateReplacesLineAndResetsDiscounts(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	apple := newProduct(t, food, "Apple", 25.0)

	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(apple, 5))
	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 0, 10, discount.Rate)))
	require.Positive(t, basket.CouponDiscount())

	require.NoError(t, basket.AddItem(apple, 15))

	items := basket.Items()
	require.Len(t, items, 1)
	require.Equal(t, 15, items[0].Quantity())
	require.Zero(t, items[0].CouponDiscount())
	require.Zero(t, basket.TotalDiscount())
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	apple := newProduct(t, food, "Apple", 25.0)
	almonds := newProduct(t, food, "Almonds", 150.0)

	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(apple, 5))

	require.NoError(t, basket.RemoveItem(apple))
	require.Empty(t, basket.Items())

	err := basket.RemoveItem(almonds)
	require.ErrorIs(t, err, cart.ErrItemNotFound)
	require.ErrorIs(t, basket.RemoveItem(nil), cart.ErrItemNotFound)
}

func TestClearKeepsAppliedState(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	apple := newProduct(t, food, "Apple", 25.0)

	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(apple, 5))
	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 0, 10, discount.Rate)))

	basket.Clear()
	require.Empty(t, basket.Items())
	require.Zero(t, basket.TotalAmount())

	// Clearing items does not reset the one-shot coupon state.
	require.True(t, basket.CouponApplied())
	require.ErrorIs(t, basket.ApplyCoupon(newCoupon(t, 0, 10, discount.Rate)), cart.ErrCouponApplied)
}

func TestTotalsIdentities(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	tech := newCategory(t, "Telephone")
	basket := cart.New(stubPricer{cost: 12.5})
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))
	require.NoError(t, basket.AddItem(newProduct(t, tech, "Note 9", 1000.0), 1))

	require.NoError(t, basket.ApplyCampaigns(newCampaign(t, food, 20, 1, discount.Rate)))
	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 0, 5, discount.Rate)))

	require.Equal(t, basket.CampaignDiscount()+basket.CouponDiscount(), basket.TotalDiscount())
	require.Equal(t, basket.TotalAmount()-basket.TotalDiscount(), basket.TotalAmountAfterDiscounts())
	require.Equal(t, basket.TotalAmountAfterDiscounts()+basket.DeliveryCost(), basket.FinalAmount())
	require.Equal(t, 12.5, basket.DeliveryCost())
}

func TestApplyCampaignsValidation(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	err := basket.ApplyCampaigns()
	require.ErrorIs(t, err, cart.ErrNoCampaign)
	require.Equal(t, "NO_CAMPAIGN_SPECIFIED", common.ErrorCode(err))

	require.NoError(t, basket.ApplyCampaigns(newCampaign(t, food, 75, 3, discount.Amount)))
	require.True(t, basket.CampaignApplied())

	err = basket.ApplyCampaigns(newCampaign(t, food, 75, 3, discount.Amount))
	require.ErrorIs(t, err, cart.ErrCampaignApplied)
}

func TestApplyCampaignsNoWinnerIsSilentNoOp(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	// Minimum quantity of 5 is met but not exceeded.
	require.NoError(t, basket.ApplyCampaigns(newCampaign(t, food, 10, 5, discount.Rate)))
	require.False(t, basket.CampaignApplied())
	require.Zero(t, basket.CampaignDiscount())

	// The cart stays open for a later, qualifying candidate set.
	require.NoError(t, basket.ApplyCampaigns(newCampaign(t, food, 10, 4, discount.Rate)))
	require.True(t, basket.CampaignApplied())
	require.Equal(t, 12.5, basket.CampaignDiscount())
}

func TestApplyCampaignsAmountScenario(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	rate := newCampaign(t, food, 10, 6, discount.Rate)
	amount := newCampaign(t, food, 75, 3, discount.Amount)
	require.NoError(t, basket.ApplyCampaigns(rate, amount))

	require.Equal(t, 125.0, basket.TotalAmount())
	require.Equal(t, 75.0, basket.CampaignDiscount())
	require.Equal(t, 75.0, basket.TotalDiscount())
	require.Equal(t, 50.0, basket.FinalAmount())
}

func TestApplyCouponRateScenario(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 50, 5, discount.Rate)))
	require.Equal(t, 6.25, basket.CouponDiscount())
	require.Equal(t, 118.75, basket.TotalAmountAfterDiscounts())
}

func TestApplyCouponAmountSplitsAcrossAllLines(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	tech := newCategory(t, "Telephone")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 2))
	require.NoError(t, basket.AddItem(newProduct(t, tech, "Note 9", 1000.0), 1))

	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 0, 20, discount.Amount)))

	for _, item := range basket.Items() {
		require.Equal(t, 10.0, item.CouponDiscount())
	}
	require.Equal(t, 20.0, basket.CouponDiscount())
}

func TestApplyCouponRateUsesNetOfCampaign(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	require.NoError(t, basket.ApplyCampaigns(newCampaign(t, food, 75, 3, discount.Amount)))
	require.Equal(t, 50.0, basket.TotalAmountAfterDiscounts())

	// 10% of the 50.0 net, not of the 125.0 gross.
	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 0, 10, discount.Rate)))
	require.Equal(t, 5.0, basket.CouponDiscount())
	require.Equal(t, 45.0, basket.TotalAmountAfterDiscounts())
}

func TestApplyCouponMinCartAmountNotMet(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	err := basket.ApplyCoupon(newCoupon(t, 2500, 5, discount.Rate))
	require.ErrorIs(t, err, cart.ErrMinCartAmountNotMet)
	require.False(t, basket.CouponApplied())
	require.Zero(t, basket.CouponDiscount())
}

func TestApplyCouponValidation(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 5))

	require.ErrorIs(t, basket.ApplyCoupon(nil), cart.ErrNoCoupon)

	mystery := newCoupon(t, 0, 10, discount.Kind("mystery"))
	require.ErrorIs(t, basket.ApplyCoupon(mystery), discount.ErrInvalidCoupon)
	require.False(t, basket.CouponApplied())

	require.NoError(t, basket.ApplyCoupon(newCoupon(t, 0, 10, discount.Rate)))
	require.ErrorIs(t, basket.ApplyCoupon(newCoupon(t, 0, 10, discount.Rate)), cart.ErrCouponApplied)
}

func TestDeliveryCounts(t *testing.T) {
	t.Parallel()

	food := newCategory(t, "Food")
	tech := newCategory(t, "Telephone")
	basket := cart.New(nil)
	require.NoError(t, basket.AddItem(newProduct(t, food, "Apple", 25.0), 3))
	require.NoError(t, basket.AddItem(newProduct(t, food, "Almonds", 150.0), 1))
	require.NoError(t, basket.AddItem(newProduct(t, tech, "Note 9", 1000.0), 1))

	require.Equal(t, 2, basket.NumberOfDeliveries())
	require.Equal(t, 3, basket.NumberOfProducts())
}
