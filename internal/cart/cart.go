// Package cart builds the in-progress line-item bundle of one sale. Amount
// and description are always derived from the lines — recomputed after every
// add/remove — until the user overrides them on the final transaction.
package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
)

// Cart is the working draft of a sale's items with their derived totals.
type Cart struct {
	Items       []model.TransactionItem
	Amount      decimal.Decimal
	Description string
}

func New() *Cart {
	return &Cart{Amount: decimal.Zero}
}

// Add puts one unit of the given catalog entry in the cart. A line with the
// same id gains quantity instead of duplicating.
func (c *Cart) Add(id, name string, price decimal.Decimal, kind model.ItemKind) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity++
			c.recompute()
			return
		}
	}
	c.Items = append(c.Items, model.TransactionItem{
		ID: id, Name: name, Price: price, Quantity: 1, Kind: kind,
	})
	c.recompute()
}

// Remove drops the whole line with the given id.
func (c *Cart) Remove(id string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.recompute()
}

// recompute derives amount = Σ(price×quantity) and the "2x Name, 1x Other"
// description from the current lines.
func (c *Cart) recompute() {
	total := decimal.Zero
	parts := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	c.Amount = total
	c.Description = strings.Join(parts, ", ")
}
