package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status marks a catalog entry as sellable or retired.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Service is a salon service catalog entry (haircut, manicure, …).
type Service struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"` // unique display key, e.g. S001
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Duration  int             `json:"duration"` // minutes
	Status    Status          `json:"status"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
