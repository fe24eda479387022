package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentCard     PaymentMethod = "Card"
	PaymentTransfer PaymentMethod = "Transfer"
)

// ItemKind tags a sale line as a service or a product. Only product lines
// affect stock.
type ItemKind string

const (
	KindService ItemKind = "service"
	KindProduct ItemKind = "product"
)

// TransactionItem is a value type embedded in a Transaction: a catalog
// reference with name and unit price denormalized at time of sale.
type TransactionItem struct {
	ID       string          `json:"id"` // catalog id (or sku, for products)
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Kind     ItemKind        `json:"type"`
}

// Subtotal is price × quantity for this line.
func (i TransactionItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Transaction is one financial record, income or expense. Amount is the
// authoritative total: when Items is non-empty it defaults to the item sum
// but a manual override is allowed and not re-enforced afterwards.
type Transaction struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Type          TransactionType   `json:"type"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	ClientID      string            `json:"clientId,omitempty"`
	ClientName    string            `json:"clientName,omitempty"`
	Provider      string            `json:"provider,omitempty"` // supplier name, for expenses
	Items         []TransactionItem `json:"items,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
