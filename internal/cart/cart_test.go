package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
)

func TestAddDerivesAmountAndDescription(t *testing.T) {
	c := New()
	c.Add("s-1", "Lavado y secado Normal Corto", decimal.NewFromInt(650), model.KindService)

	assert.True(t, c.Amount.Equal(decimal.NewFromInt(650)))
	assert.Equal(t, "1x Lavado y secado Normal Corto", c.Description)

	// same id again folds into the existing line
	c.Add("s-1", "Lavado y secado Normal Corto", decimal.NewFromInt(650), model.KindService)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(1300)))
	assert.Equal(t, "2x Lavado y secado Normal Corto", c.Description)
}

func TestMixedLines(t *testing.T) {
	c := New()
	c.Add("s-1", "Corte", decimal.NewFromInt(500), model.KindService)
	c.Add("p1", "Shampoo Reparador 500ml", decimal.NewFromInt(22), model.KindProduct)
	c.Add("p1", "Shampoo Reparador 500ml", decimal.NewFromInt(22), model.KindProduct)

	assert.True(t, c.Amount.Equal(decimal.NewFromInt(544)))
	assert.Equal(t, "1x Corte, 2x Shampoo Reparador 500ml", c.Description)
}

func TestRemoveDropsWholeLine(t *testing.T) {
	c := New()
	c.Add("s-1", "Corte", decimal.NewFromInt(500), model.KindService)
	c.Add("p1", "Shampoo", decimal.NewFromInt(22), model.KindProduct)
	c.Add("p1", "Shampoo", decimal.NewFromInt(22), model.KindProduct)

	c.Remove("p1")
	assert.Len(t, c.Items, 1)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "1x Corte", c.Description)

	c.Remove("s-1")
	assert.Empty(t, c.Items)
	assert.True(t, c.Amount.IsZero())
	assert.Equal(t, "", c.Description)
}
