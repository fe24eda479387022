package model

import "time"

// InventoryItem tracks the live stock level of one Product (1:1 by id).
// It is mutated exclusively by the stock ledger. Deleting a Product does NOT
// delete its InventoryItem.
type InventoryItem struct {
	ProductID    string `json:"productId"`
	CurrentStock int    `json:"currentStock"` // never negative
	MinStock     int    `json:"minStock"`     // low-stock alert threshold
	Location     string `json:"location"`
}

// LowStock reports whether the item is at or below its alert threshold.
func (i InventoryItem) LowStock() bool { return i.CurrentStock <= i.MinStock }

// MovementType distinguishes stock entries from stock exits.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// InventoryMovement is an immutable, append-only ledger entry recording one
// stock change. Deleting a movement does not reverse its effect on stock —
// the ledger is only ever forward-mutated.
type InventoryMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"` // always positive; direction is Type
	Reason    string       `json:"reason"`
	Date      time.Time    `json:"date"`
	Notes     string       `json:"notes"`
	User      string       `json:"user"` // role label at recording time
}
