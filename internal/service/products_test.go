package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/ledger"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestProductCreateOpensInventoryRecord(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewProductService(st, nil)

	p, err := svc.Create(ctx, dto.SaveProductRequest{
		SKU: "P100", Name: "Acondicionador", Price: decimal.NewFromInt(19),
		Stock: intp(7), MinStock: intp(3), Location: strp("Estante C"),
	})
	require.NoError(t, err)

	item, ok := st.Current().Inventory[p.ID]
	require.True(t, ok)
	assert.Equal(t, 7, item.CurrentStock)
	assert.Equal(t, 3, item.MinStock)
	assert.Equal(t, "Estante C", item.Location)
}

func TestProductCreateWithoutStockUsesDefaults(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewProductService(st, nil)

	p, err := svc.Create(ctx, dto.SaveProductRequest{SKU: "P101", Name: "Esmalte"})
	require.NoError(t, err)

	item := st.Current().Inventory[p.ID]
	assert.Equal(t, 0, item.CurrentStock)
	assert.Equal(t, ledger.DefaultMinStock, item.MinStock)
	assert.Equal(t, ledger.DefaultLocation, item.Location)
}

func TestProductUpdateRebaselinesStock(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewProductService(st, nil)

	// p1 seeded at 10; edit declares 6
	_, err := svc.Update(ctx, "p1", dto.SaveProductRequest{
		SKU: "P001", Name: "Shampoo Reparador 500ml", Stock: intp(6),
	})
	require.NoError(t, err)

	cur := st.Current()
	assert.Equal(t, 6, cur.Inventory["p1"].CurrentStock)
	require.NotEmpty(t, cur.Movements)
	assert.Equal(t, ledger.ReasonAdjustment, cur.Movements[0].Reason)
	assert.Equal(t, model.MovementOut, cur.Movements[0].Type)
	assert.Equal(t, 4, cur.Movements[0].Quantity)
}

func TestProductUpdateWithoutStockLeavesLedgerAlone(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewProductService(st, nil)

	_, err := svc.Update(ctx, "p1", dto.SaveProductRequest{
		SKU: "P001", Name: "Shampoo Premium", MinStock: intp(2),
	})
	require.NoError(t, err)

	cur := st.Current()
	assert.Equal(t, 10, cur.Inventory["p1"].CurrentStock)
	assert.Equal(t, 2, cur.Inventory["p1"].MinStock)
	assert.Empty(t, cur.Movements)
	assert.Equal(t, "Shampoo Premium", cur.Products[0].Name)
}

func TestProductDeleteKeepsInventoryAndHistory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewProductService(st, nil)
	inv := NewInventoryService(st, nil)

	_, err := inv.RegisterMovement(ctx, dto.MovementRequest{
		ProductID: "p1", Type: "OUT", Quantity: 2, Reason: "Uso interno",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "p1"))

	cur := st.Current()
	assert.Nil(t, cur.FindProduct("p1"))
	_, tracked := cur.Inventory["p1"]
	assert.True(t, tracked)
	assert.Len(t, cur.Movements, 1)

	assert.ErrorIs(t, svc.Delete(ctx, "p1"), ErrProductNotFound)
}

func TestRegisterMovementUnknownProduct(t *testing.T) {
	ctx := context.Background()
	inv := NewInventoryService(newTestStore(t), nil)

	_, err := inv.RegisterMovement(ctx, dto.MovementRequest{
		ProductID: "nope", Type: "IN", Quantity: 1, Reason: "Compra",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRegisterMovementOverdrawRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	inv := NewInventoryService(st, nil)

	_, err := inv.RegisterMovement(ctx, dto.MovementRequest{
		ProductID: "p2", Type: "OUT", Quantity: 5, Reason: "Venta",
	})
	require.Error(t, err)
	assert.True(t, IsStockError(err))
	assert.Equal(t, 3, st.Current().Inventory["p2"].CurrentStock)
}
