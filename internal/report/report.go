// Package report renders a cart as a human-readable statement. Pure
// formatting over the cart's getters; nothing here changes pricing.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/noah-isme/cart-engine/internal/cart"
)

// Render returns a column-aligned statement: one row per line item grouped
// by category in insertion order, followed by the cart totals.
func Render(c *cart.Cart) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "CATEGORY\tPRODUCT\tQTY\tUNIT PRICE\tGROSS\tDISCOUNT\tNET")
	fmt.Fprintln(w, "--------\t-------\t---\t----------\t-----\t--------\t---")
	for _, item := range groupedItems(c) {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			item.Product().Category().Title(),
			item.Product().Title(),
			item.Quantity(),
			money(item.UnitPrice()),
			money(item.TotalPrice()),
			money(item.TotalDiscount()),
			money(item.TotalPriceAfterDiscounts()),
		)
	}
	w.Flush()

	fmt.Fprintf(&b, "\nGross amount   : %s\n", money(c.TotalAmount()))
	fmt.Fprintf(&b, "Total discount : -%s\n", money(c.TotalDiscount()))
	fmt.Fprintf(&b, "Delivery cost  : %s\n", money(c.DeliveryCost()))
	fmt.Fprintf(&b, "Final amount   : %s\n", money(c.FinalAmount()))
	return b.String()
}

// groupedItems orders lines so each category's items sit together, with
// categories in first-seen order.
func groupedItems(c *cart.Cart) []*cart.Item {
	items := c.Items()
	byCategory := make(map[uuid.UUID][]*cart.Item)
	var order []uuid.UUID
	for _, item := range items {
		id := item.Product().Category().ID()
		if _, ok := byCategory[id]; !ok {
			order = append(order, id)
		}
		byCategory[id] = append(byCategory[id], item)
	}
	out := make([]*cart.Item, 0, len(items))
	for _, id := range order {
		out = append(out, byCategory[id]...)
	}
	return out
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
