package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a retail/consumable catalog entry. Every Product has exactly one
// InventoryItem, created together with it and keyed by the product id.
type Product struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"` // unique display key, e.g. P001
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Cost      decimal.Decimal `json:"cost"`
	Price     decimal.Decimal `json:"price"`
	Provider  string          `json:"provider"` // free-text supplier name
	Unit      string          `json:"unit"`     // display string, e.g. "500ml"
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
