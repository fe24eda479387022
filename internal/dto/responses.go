package dto

import "github.com/shopspring/decimal"

// ImportReport summarizes one spreadsheet import batch for user feedback.
type ImportReport struct {
	Target    string           `json:"target"`
	Rows      int              `json:"rows"`      // data rows found in the sheet
	Processed int              `json:"processed"` // created + updated
	Created   int              `json:"created"`
	Updated   int              `json:"updated"`
	Skipped   int              `json:"skipped"` // failed required-field validation
	Errors    []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError identifies one skipped row (1-based, excluding the header).
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// DashboardSummary is the numbers block behind the dashboard tab.
type DashboardSummary struct {
	IncomeTotal   decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
	Balance       decimal.Decimal `json:"balance"`
	Clients       int             `json:"clients"`
	Services      int             `json:"services"`
	Products      int             `json:"products"`
	LowStockCount int             `json:"lowStockCount"`
}

// RoleResponse reports the current session role.
type RoleResponse struct {
	Role string `json:"role"`
}
