package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/worker"
)

// newID synthesizes an opaque unique id for a new entity.
func newID() string { return uuid.NewString() }

// stamp returns (createdAt, updatedAt) for an insert-or-update: creation time
// is preserved across edits, updatedAt always refreshes.
func stamp(existing *time.Time) (time.Time, time.Time) {
	now := time.Now()
	if existing != nil && !existing.IsZero() {
		return *existing, now
	}
	return now, now
}

// notifyLowStock enqueues an alert for every given product whose stock sits at
// or below its threshold after a mutation. Best-effort: failures are the
// dispatcher's problem, never the mutation's.
func notifyLowStock(ctx context.Context, d *worker.Dispatcher, st *model.AppState, productIDs ...string) {
	for _, id := range productIDs {
		item, ok := st.Inventory[id]
		if !ok || !item.LowStock() {
			continue
		}
		p := st.FindProduct(id)
		if p == nil {
			continue
		}
		_ = d.EnqueueLowStockAlert(ctx, worker.LowStockAlert{
			ProductID:    id,
			SKU:          p.SKU,
			Name:         p.Name,
			CurrentStock: item.CurrentStock,
			MinStock:     item.MinStock,
		})
	}
}
