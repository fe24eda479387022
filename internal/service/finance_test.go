package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/ledger"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snap.json")
	s := store.New(infra.NewFileSnapshotStore(path))
	require.NoError(t, s.Load(context.Background()))
	return s
}

func productLine(id, name string, price float64, qty int) dto.TransactionItemInput {
	return dto.TransactionItemInput{
		ID: id, Name: name, Price: decimal.NewFromFloat(price), Quantity: qty, Kind: "product",
	}
}

func TestCommitSaleDecrementsStockBySKU(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFinanceService(st, nil)

	// sell 2x P001 (resolved by sku): 10 → 8, not yet low
	tx, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		ClientName: "Ana",
		Items:      []dto.TransactionItemInput{productLine("P001", "Shampoo Reparador 500ml", 22, 2)},
	})
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(44)))

	cur := st.Current()
	assert.Equal(t, 8, cur.Inventory["p1"].CurrentStock)
	assert.False(t, cur.Inventory["p1"].LowStock())

	require.NotEmpty(t, cur.Movements)
	mov := cur.Movements[0]
	assert.Equal(t, model.MovementOut, mov.Type)
	assert.Equal(t, 2, mov.Quantity)
	assert.Equal(t, ledger.ReasonSale, mov.Reason)
	assert.Equal(t, "Venta a Ana", mov.Notes)

	// sell 4 more: 8 → 4, now at or below minStock 5
	_, err = svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		Items: []dto.TransactionItemInput{productLine("P001", "Shampoo Reparador 500ml", 22, 4)},
	})
	require.NoError(t, err)

	cur = st.Current()
	assert.Equal(t, 4, cur.Inventory["p1"].CurrentStock)
	assert.True(t, cur.Inventory["p1"].LowStock())
	assert.Equal(t, "Venta a Cliente", cur.Movements[0].Notes)
}

func TestCommitSaleInsufficientStockFailsWhole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFinanceService(st, nil)

	before := len(st.Current().Transactions)

	// p2 has stock 3; the first line would succeed but the batch must not
	_, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		Items: []dto.TransactionItemInput{
			productLine("p1", "Shampoo Reparador 500ml", 22, 1),
			productLine("p2", "Tinte 7.1 Rubio Ceniza", 15, 5),
		},
	})
	require.Error(t, err)
	assert.True(t, IsStockError(err))

	cur := st.Current()
	assert.Len(t, cur.Transactions, before)
	assert.Equal(t, 10, cur.Inventory["p1"].CurrentStock)
	assert.Equal(t, 3, cur.Inventory["p2"].CurrentStock)
	assert.Empty(t, cur.Movements)
}

func TestCommitSkipsUnresolvableAndServiceLines(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFinanceService(st, nil)

	tx, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Servicio", PaymentMethod: "Card",
		Items: []dto.TransactionItemInput{
			{ID: "s-0", Name: "Lavado y secado Normal Corto", Price: decimal.NewFromInt(650), Quantity: 1, Kind: "service"},
			productLine("deleted-product", "Producto fantasma", 30, 2),
		},
	})
	require.NoError(t, err)
	// both lines stay on the receipt
	assert.Len(t, tx.Items, 2)
	// but neither touched stock
	assert.Empty(t, st.Current().Movements)
}

func TestCommitDerivesAmountFromItemsWhenZero(t *testing.T) {
	ctx := context.Background()
	svc := NewFinanceService(newTestStore(t), nil)

	tx, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		Items: []dto.TransactionItemInput{productLine("p1", "Shampoo", 22, 3)},
	})
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(66)))

	// an explicit amount wins over the item sum
	tx, err = svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		Amount: decimal.NewFromInt(50),
		Items:  []dto.TransactionItemInput{productLine("p1", "Shampoo", 22, 3)},
	})
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(50)))
}

func TestCommitDenormalizesClientName(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clients := NewClientService(st)
	svc := NewFinanceService(st, nil)

	c, err := clients.Create(ctx, dto.SaveClientRequest{Name: "María", Phone: "555-0101"})
	require.NoError(t, err)

	tx, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Servicio", PaymentMethod: "Cash",
		Amount: decimal.NewFromInt(100), ClientID: c.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "María", tx.ClientName)

	history, err := clients.History(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, tx.ID, history[0].ID)
}

func TestUpdatePreservesIdentityAndSkipsStock(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFinanceService(st, nil)

	tx, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		Items: []dto.TransactionItemInput{productLine("p1", "Shampoo", 22, 2)},
	})
	require.NoError(t, err)
	movesAfterCommit := len(st.Current().Movements)

	updated, err := svc.Update(ctx, tx.ID, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Card",
		Amount: decimal.NewFromInt(40),
		Items:  []dto.TransactionItemInput{productLine("p1", "Shampoo", 22, 5)},
	})
	require.NoError(t, err)
	assert.Equal(t, tx.ID, updated.ID)
	assert.Equal(t, tx.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, model.PaymentCard, updated.PaymentMethod)

	// editing the receipt never replays the ledger
	cur := st.Current()
	assert.Len(t, cur.Movements, movesAfterCommit)
	assert.Equal(t, 8, cur.Inventory["p1"].CurrentStock)
}

func TestDeleteKeepsStockAsIs(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFinanceService(st, nil)

	tx, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "INCOME", Category: "Venta de Producto", PaymentMethod: "Cash",
		Items: []dto.TransactionItemInput{productLine("p1", "Shampoo", 22, 2)},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tx.ID))
	cur := st.Current()
	assert.Equal(t, 8, cur.Inventory["p1"].CurrentStock)
	assert.NotEmpty(t, cur.Movements)

	assert.ErrorIs(t, svc.Delete(ctx, tx.ID), ErrTransactionNotFound)
}

func TestCartPreview(t *testing.T) {
	svc := NewFinanceService(newTestStore(t), nil)

	resp := svc.CartPreview(context.Background(), dto.CartPreviewRequest{
		Items: []dto.TransactionItemInput{
			productLine("p1", "Shampoo", 22, 2),
			{ID: "s-0", Name: "Corte", Price: decimal.NewFromInt(500), Quantity: 1, Kind: "service"},
		},
	})
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(544)))
	assert.Equal(t, "2x Shampoo, 1x Corte", resp.Description)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewFinanceService(st, nil)

	_, err := svc.Commit(ctx, dto.SaveTransactionRequest{
		Type: "EXPENSE", Category: "Alquiler", PaymentMethod: "Transfer",
		Amount: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	sum := svc.Summary(ctx)
	assert.True(t, sum.IncomeTotal.Equal(decimal.NewFromInt(650))) // seeded t1
	assert.True(t, sum.ExpenseTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, sum.Balance.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, 1, sum.LowStockCount) // seeded p2 at 3/10
}
