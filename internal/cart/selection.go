package cart

import (
	"github.com/google/uuid"

	"github.com/noah-isme/cart-engine/internal/discount"
)

// selection.go implements campaign selection as a pure function over the
// current line items and a candidate set. It never mutates cart state; the
// caller applies the returned per-item shares.

type candidateGroup struct {
	categoryID uuid.UUID
	campaigns  []*discount.Campaign
}

// groupByCategory groups candidates by target category preserving first-seen
// order, so cross-category ties resolve deterministically by candidate order.
func groupByCategory(candidates []*discount.Campaign) []candidateGroup {
	var groups []candidateGroup
	index := make(map[uuid.UUID]int)
	for _, c := range candidates {
		if c == nil || c.Category() == nil {
			continue
		}
		id := c.Category().ID()
		at, ok := index[id]
		if !ok {
			index[id] = len(groups)
			groups = append(groups, candidateGroup{categoryID: id})
			at = len(groups) - 1
		}
		groups[at].campaigns = append(groups[at].campaigns, c)
	}
	return groups
}

// categoryQuantity sums line quantities for a category.
func categoryQuantity(items []*Item, categoryID uuid.UUID) int {
	var total int
	for _, it := range items {
		if it.Product().Category().ID() == categoryID {
			total += it.Quantity()
		}
	}
	return total
}

// categoryTotal sums gross line totals for a category.
func categoryTotal(items []*Item, categoryID uuid.UUID) float64 {
	var total float64
	for _, it := range items {
		if it.Product().Category().ID() == categoryID {
			total += it.TotalPrice()
		}
	}
	return total
}

// bestOfKind picks the highest-magnitude campaign of the given kind whose
// minimum quantity is strictly exceeded by the cart's category quantity.
// Ties keep the first-seen candidate. Returns nil when none qualifies.
func bestOfKind(items []*Item, group candidateGroup, kind discount.Kind) *discount.Campaign {
	var best *discount.Campaign
	for _, c := range group.campaigns {
		if c.Kind() != kind {
			continue
		}
		if categoryQuantity(items, c.Category().ID()) <= c.MinQuantity() {
			continue
		}
		if best == nil || c.Amount() > best.Amount() {
			best = c
		}
	}
	return best
}

// discountValue computes the money a campaign would take off the category's
// items: the magnitude itself for Amount, a percentage of the category gross
// for Rate. Unknown kinds are worth nothing.
func discountValue(items []*Item, c *discount.Campaign) float64 {
	if c == nil {
		return 0
	}
	switch c.Kind() {
	case discount.Amount:
		return c.Amount()
	case discount.Rate:
		return categoryTotal(items, c.Category().ID()) * c.Amount() / 100
	default:
		return 0
	}
}

// selectCampaign picks the single campaign to apply and the per-item discount
// shares it produces. Per category the best Amount and best Rate candidates
// compete on computed money, with Rate winning an exact tie; across
// categories the largest computed money wins outright. A nil campaign means
// nothing qualified, which the caller treats as a silent no-op.
func selectCampaign(items []*Item, candidates []*discount.Campaign) (*discount.Campaign, map[*Item]float64) {
	var (
		winner *discount.Campaign
		best   float64
	)
	for _, group := range groupByCategory(candidates) {
		amountPick := bestOfKind(items, group, discount.Amount)
		ratePick := bestOfKind(items, group, discount.Rate)

		amountValue := discountValue(items, amountPick)
		rateValue := discountValue(items, ratePick)
		if amountValue == 0 && rateValue == 0 {
			continue
		}

		pick, value := ratePick, rateValue
		if amountValue > rateValue {
			pick, value = amountPick, amountValue
		}
		if winner == nil || value > best {
			winner, best = pick, value
		}
	}
	if winner == nil {
		return nil, nil
	}
	return winner, campaignShares(items, winner)
}

// campaignShares allocates the winner across its category's lines: an Amount
// campaign splits its magnitude evenly over the line count, a Rate campaign
// takes its percentage of each line's own gross total.
func campaignShares(items []*Item, c *discount.Campaign) map[*Item]float64 {
	var lines []*Item
	for _, it := range items {
		if it.Product().Category().ID() == c.Category().ID() {
			lines = append(lines, it)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	shares := make(map[*Item]float64, len(lines))
	switch c.Kind() {
	case discount.Amount:
		each := c.Amount() / float64(len(lines))
		for _, it := range lines {
			shares[it] = each
		}
	case discount.Rate:
		for _, it := range lines {
			shares[it] = it.TotalPrice() * c.Amount() / 100
		}
	}
	return shares
}
