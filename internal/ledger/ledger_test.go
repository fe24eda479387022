package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/seed"
)

func TestApplyMovementInAndOut(t *testing.T) {
	st := seed.State()

	item, mov, err := ApplyMovement(st, MovementInput{
		ProductID: "p1", Type: model.MovementIn, Quantity: 5, Reason: "Compra",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, item.CurrentStock)
	assert.Equal(t, model.MovementIn, mov.Type)
	assert.Equal(t, 5, mov.Quantity)
	assert.Equal(t, "ADMIN", mov.User)

	item, _, err = ApplyMovement(st, MovementInput{
		ProductID: "p1", Type: model.MovementOut, Quantity: 7, Reason: "Uso interno",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, item.CurrentStock)
	assert.Equal(t, 8, st.Inventory["p1"].CurrentStock)
}

func TestApplyMovementRejectsOverdraw(t *testing.T) {
	st := seed.State() // p2 seeded at stock 3

	_, _, err := ApplyMovement(st, MovementInput{
		ProductID: "p2", Type: model.MovementOut, Quantity: 5, Reason: "Venta",
	})
	var ins *InsufficientStockError
	require.ErrorAs(t, err, &ins)
	assert.Equal(t, 3, ins.Current)
	assert.Equal(t, 5, ins.Requested)
	assert.Contains(t, err.Error(), "No hay suficiente stock")

	// rejection leaves state untouched: no counter change, no ledger entry
	assert.Equal(t, 3, st.Inventory["p2"].CurrentStock)
	assert.Empty(t, st.Movements)
}

func TestApplyMovementRejectsNonPositiveQuantity(t *testing.T) {
	st := seed.State()

	for _, q := range []int{0, -4} {
		_, _, err := ApplyMovement(st, MovementInput{
			ProductID: "p1", Type: model.MovementIn, Quantity: q, Reason: "Compra",
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Empty(t, st.Movements)
}

func TestMovementsArePrependedNewestFirst(t *testing.T) {
	st := seed.State()

	_, first, err := ApplyMovement(st, MovementInput{ProductID: "p1", Type: model.MovementIn, Quantity: 1, Reason: "a"})
	require.NoError(t, err)
	_, second, err := ApplyMovement(st, MovementInput{ProductID: "p1", Type: model.MovementIn, Quantity: 1, Reason: "b"})
	require.NoError(t, err)

	require.Len(t, st.Movements, 2)
	assert.Equal(t, second.ID, st.Movements[0].ID)
	assert.Equal(t, first.ID, st.Movements[1].ID)
}

func TestEnsureTrackedIsIdempotent(t *testing.T) {
	st := seed.State()

	item := EnsureTracked(st, "p9", 4, 0, "")
	assert.Equal(t, 4, item.CurrentStock)
	assert.Equal(t, DefaultMinStock, item.MinStock)
	assert.Equal(t, DefaultLocation, item.Location)

	// second call must not reset the existing record
	again := EnsureTracked(st, "p9", 99, 50, "Otro")
	assert.Equal(t, item, again)

	// seeded items stay as they are
	existing := EnsureTracked(st, "p1", 0, 0, "")
	assert.Equal(t, 10, existing.CurrentStock)
}

func TestRebaselineRecordsAdjustment(t *testing.T) {
	st := seed.State()

	require.NoError(t, Rebaseline(st, "p1", 4))
	assert.Equal(t, 4, st.Inventory["p1"].CurrentStock)
	require.Len(t, st.Movements, 1)
	assert.Equal(t, model.MovementOut, st.Movements[0].Type)
	assert.Equal(t, 6, st.Movements[0].Quantity)
	assert.Equal(t, ReasonAdjustment, st.Movements[0].Reason)

	require.NoError(t, Rebaseline(st, "p1", 12))
	assert.Equal(t, 12, st.Inventory["p1"].CurrentStock)
	assert.Equal(t, model.MovementIn, st.Movements[0].Type)

	// matching target is a no-op, no synthetic entry
	require.NoError(t, Rebaseline(st, "p1", 12))
	assert.Len(t, st.Movements, 2)
}

func TestLowStock(t *testing.T) {
	st := seed.State()

	// p1: 10/5 is fine, p2: 3/10 is low
	low := LowStock(st)
	require.Len(t, low, 1)
	assert.Equal(t, "p2", low[0].ProductID)

	// boundary: stock equal to minStock counts as low
	require.NoError(t, Rebaseline(st, "p1", 5))
	low = LowStock(st)
	assert.Len(t, low, 2)
}
