package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Catalog requests ────────────────────────────────────────────────────────

type SaveServiceRequest struct {
	Code     string          `json:"code"     validate:"required,min=1"`
	Name     string          `json:"name"     validate:"required,min=1"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Duration int             `json:"duration" validate:"gt=0"`
	Status   string          `json:"status"   validate:"omitempty,oneof=Active Inactive"`
	Notes    string          `json:"notes"`
}

type SaveProductRequest struct {
	SKU      string          `json:"sku"      validate:"required,min=1"`
	Name     string          `json:"name"     validate:"required,min=1"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"     validate:"min=0"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Provider string          `json:"provider"`
	Unit     string          `json:"unit"`
	Status   string          `json:"status"   validate:"omitempty,oneof=Active Inactive"`

	// Inventory seed on create; on update a non-nil Stock rebaselines the
	// counter through a synthetic adjustment movement.
	Stock    *int    `json:"stock"    validate:"omitempty,min=0"`
	MinStock *int    `json:"minStock" validate:"omitempty,min=0"`
	Location *string `json:"location"`
}

type SaveClientRequest struct {
	Name  string `json:"name"  validate:"required,min=1"`
	Phone string `json:"phone" validate:"required,min=1"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes"`
}

type SaveProviderRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

// ─── Inventory requests ──────────────────────────────────────────────────────

type MovementRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Type      string `json:"type"      validate:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity"  validate:"gt=0"`
	Reason    string `json:"reason"    validate:"required"`
	Notes     string `json:"notes"`
}

// ─── Finance requests ────────────────────────────────────────────────────────

type TransactionItemInput struct {
	ID       string          `json:"id"       validate:"required"`
	Name     string          `json:"name"     validate:"required"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Kind     string          `json:"type"     validate:"required,oneof=service product"`
}

type SaveTransactionRequest struct {
	Date          *time.Time             `json:"date"`
	Type          string                 `json:"type"          validate:"required,oneof=INCOME EXPENSE"`
	Category      string                 `json:"category"      validate:"required"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"        validate:"min=0"`
	PaymentMethod string                 `json:"paymentMethod" validate:"required,oneof=Cash Card Transfer"`
	ClientID      string                 `json:"clientId"`
	ClientName    string                 `json:"clientName"`
	Provider      string                 `json:"provider"`
	Items         []TransactionItemInput `json:"items" validate:"dive"`
}

// CartPreviewRequest recomputes the derived total and description for a set
// of lines, the way the sale form does after every add/remove.
type CartPreviewRequest struct {
	Items []TransactionItemInput `json:"items" validate:"dive"`
}

type CartPreviewResponse struct {
	Items       []TransactionItemInput `json:"items"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
}

// ─── Role ────────────────────────────────────────────────────────────────────

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN CASHIER INVENTORY"`
}
