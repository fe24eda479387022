// Package ledger is the single source of truth for currentStock. Every stock
// change — manual movement, sale decrement, adjustment on product edit — goes
// through ApplyMovement, which enforces non-negativity and appends one
// immutable movement record per accepted change.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
)

const (
	DefaultMinStock = 5
	DefaultLocation = "General"

	ReasonSale       = "Venta"
	ReasonAdjustment = "Ajuste de stock"
)

// InsufficientStockError rejects a movement that would drive stock negative.
// It is a user-facing validation failure: the caller's state is untouched.
type InsufficientStockError struct {
	ProductID string
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("No hay suficiente stock para esta operación (producto %s: stock %d, solicitado %d)",
		e.ProductID, e.Current, e.Requested)
}

var ErrInvalidQuantity = errors.New("la cantidad debe ser un entero positivo")

// MovementInput describes one requested stock change. Quantity is always
// positive; direction comes from Type.
type MovementInput struct {
	ProductID string
	Type      model.MovementType
	Quantity  int
	Reason    string
	Notes     string
}

// ApplyMovement applies one stock change to st. On success exactly one
// InventoryItem field changes and exactly one movement record is prepended
// (movements are kept newest-first). On failure st is not modified.
func ApplyMovement(st *model.AppState, in MovementInput) (*model.InventoryItem, *model.InventoryMovement, error) {
	if in.Quantity <= 0 {
		return nil, nil, ErrInvalidQuantity
	}
	if in.Type != model.MovementIn && in.Type != model.MovementOut {
		return nil, nil, fmt.Errorf("tipo de movimiento desconocido: %q", in.Type)
	}

	item := st.Inventory[in.ProductID] // zero value tracks an untracked product at stock 0
	item.ProductID = in.ProductID

	delta := in.Quantity
	if in.Type == model.MovementOut {
		delta = -delta
	}
	if item.CurrentStock+delta < 0 {
		return nil, nil, &InsufficientStockError{
			ProductID: in.ProductID,
			Current:   item.CurrentStock,
			Requested: in.Quantity,
		}
	}

	item.CurrentStock += delta
	st.Inventory[in.ProductID] = item

	mov := model.InventoryMovement{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Date:      time.Now(),
		Notes:     in.Notes,
		User:      string(st.UserRole),
	}
	st.Movements = append([]model.InventoryMovement{mov}, st.Movements...)

	return &item, &mov, nil
}

// EnsureTracked creates the InventoryItem for productID when none exists yet.
// Idempotent: an existing record is left untouched.
func EnsureTracked(st *model.AppState, productID string, initialStock, minStock int, location string) model.InventoryItem {
	if item, ok := st.Inventory[productID]; ok {
		return item
	}
	if minStock <= 0 {
		minStock = DefaultMinStock
	}
	if location == "" {
		location = DefaultLocation
	}
	item := model.InventoryItem{
		ProductID:    productID,
		CurrentStock: initialStock,
		MinStock:     minStock,
		Location:     location,
	}
	st.Inventory[productID] = item
	return item
}

// Rebaseline sets a product's stock to newStock during a product edit. Rather
// than overwriting the counter behind the ledger's back, the delta is applied
// as a synthetic adjustment movement, so the ledger stays complete and the
// non-negativity guard stays in force. A no-op when the stock already matches.
func Rebaseline(st *model.AppState, productID string, newStock int) error {
	if newStock < 0 {
		return &InsufficientStockError{ProductID: productID, Current: st.Inventory[productID].CurrentStock, Requested: newStock}
	}
	current := st.Inventory[productID].CurrentStock
	delta := newStock - current
	if delta == 0 {
		return nil
	}

	typ := model.MovementIn
	if delta < 0 {
		typ = model.MovementOut
		delta = -delta
	}
	_, _, err := ApplyMovement(st, MovementInput{
		ProductID: productID,
		Type:      typ,
		Quantity:  delta,
		Reason:    ReasonAdjustment,
		Notes:     fmt.Sprintf("Rebase de stock %d → %d", current, newStock),
	})
	return err
}

// LowStock returns every tracked item at or below its alert threshold, in
// product catalog order.
func LowStock(st *model.AppState) []model.InventoryItem {
	var out []model.InventoryItem
	for _, p := range st.Products {
		if item, ok := st.Inventory[p.ID]; ok && item.LowStock() {
			out = append(out, item)
		}
	}
	return out
}
