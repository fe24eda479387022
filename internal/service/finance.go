package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/cart"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/ledger"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/worker"
)

var ErrTransactionNotFound = errors.New("transacción no encontrada")

// FinanceService records income and expenses. Committing an income with
// product lines is the one place a sale touches stock: every resolvable
// product line becomes an OUT movement, and the whole commit is rejected if
// any line would drive stock negative.
type FinanceService interface {
	List(ctx context.Context) []model.Transaction
	Commit(ctx context.Context, req dto.SaveTransactionRequest) (*model.Transaction, error)
	Update(ctx context.Context, id string, req dto.SaveTransactionRequest) (*model.Transaction, error)
	// Delete removes the record only. Stock already moved by the sale is
	// not restored; corrections go through manual movements.
	Delete(ctx context.Context, id string) error
	CartPreview(ctx context.Context, req dto.CartPreviewRequest) dto.CartPreviewResponse
	Summary(ctx context.Context) dto.DashboardSummary
}

type financeService struct {
	store      *store.Store
	dispatcher *worker.Dispatcher
}

func NewFinanceService(st *store.Store, d *worker.Dispatcher) FinanceService {
	return &financeService{store: st, dispatcher: d}
}

func (s *financeService) List(ctx context.Context) []model.Transaction {
	return s.store.Current().Transactions
}

func (s *financeService) Commit(ctx context.Context, req dto.SaveTransactionRequest) (*model.Transaction, error) {
	var created model.Transaction
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		createdAt, updatedAt := stamp(nil)
		created = buildTransaction(st, newID(), req, createdAt, updatedAt)

		if created.Type == model.TransactionIncome {
			if err := s.decrementSoldStock(ctx, st, created); err != nil {
				return err
			}
		}

		st.Transactions = append([]model.Transaction{created}, st.Transactions...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// decrementSoldStock applies one OUT movement per resolvable product line.
// Lines whose id resolves neither as product id nor sku are skipped: they
// stay on the receipt but never touch stock. Any insufficient-stock rejection
// aborts the whole sale.
func (s *financeService) decrementSoldStock(ctx context.Context, st *model.AppState, tx model.Transaction) error {
	buyer := tx.ClientName
	if buyer == "" {
		buyer = "Cliente"
	}
	touched := make([]string, 0, len(tx.Items))
	for _, it := range tx.Items {
		if it.Kind != model.KindProduct {
			continue
		}
		p := st.FindProduct(it.ID)
		if p == nil {
			continue
		}
		_, _, err := ledger.ApplyMovement(st, ledger.MovementInput{
			ProductID: p.ID,
			Type:      model.MovementOut,
			Quantity:  it.Quantity,
			Reason:    ledger.ReasonSale,
			Notes:     "Venta a " + buyer,
		})
		if err != nil {
			return err
		}
		touched = append(touched, p.ID)
	}
	notifyLowStock(ctx, s.dispatcher, st, touched...)
	return nil
}

// Update replaces every field of the record except id and createdAt. It does
// not replay stock: items on an edited transaction are receipt data only.
func (s *financeService) Update(ctx context.Context, id string, req dto.SaveTransactionRequest) (*model.Transaction, error) {
	var updated model.Transaction
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Transactions {
			if st.Transactions[i].ID != id {
				continue
			}
			createdAt, updatedAt := stamp(&st.Transactions[i].CreatedAt)
			updated = buildTransaction(st, id, req, createdAt, updatedAt)
			st.Transactions[i] = updated
			return nil
		}
		return ErrTransactionNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *financeService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Transactions {
			if st.Transactions[i].ID == id {
				st.Transactions = append(st.Transactions[:i], st.Transactions[i+1:]...)
				return nil
			}
		}
		return ErrTransactionNotFound
	})
}

func (s *financeService) CartPreview(ctx context.Context, req dto.CartPreviewRequest) dto.CartPreviewResponse {
	c := cart.New()
	for _, in := range req.Items {
		for n := 0; n < in.Quantity; n++ {
			c.Add(in.ID, in.Name, in.Price, model.ItemKind(in.Kind))
		}
	}
	out := make([]dto.TransactionItemInput, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, dto.TransactionItemInput{
			ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity, Kind: string(it.Kind),
		})
	}
	return dto.CartPreviewResponse{Items: out, Amount: c.Amount, Description: c.Description}
}

func (s *financeService) Summary(ctx context.Context) dto.DashboardSummary {
	st := s.store.Current()
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range st.Transactions {
		switch t.Type {
		case model.TransactionIncome:
			income = income.Add(t.Amount)
		case model.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return dto.DashboardSummary{
		IncomeTotal:   income,
		ExpenseTotal:  expense,
		Balance:       income.Sub(expense),
		Clients:       len(st.Clients),
		Services:      len(st.Services),
		Products:      len(st.Products),
		LowStockCount: len(ledger.LowStock(st)),
	}
}

// buildTransaction assembles the record from the request. Amount stays as
// given except when zero with items present, where the item sum fills it in.
// A known clientId denormalizes the client's current name onto the record.
func buildTransaction(st *model.AppState, id string, req dto.SaveTransactionRequest, createdAt, updatedAt time.Time) model.Transaction {
	items := make([]model.TransactionItem, 0, len(req.Items))
	itemSum := decimal.Zero
	for _, in := range req.Items {
		it := model.TransactionItem{
			ID:       in.ID,
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
			Kind:     model.ItemKind(in.Kind),
		}
		items = append(items, it)
		itemSum = itemSum.Add(it.Subtotal())
	}

	amount := req.Amount
	if amount.IsZero() && len(items) > 0 {
		amount = itemSum
	}

	clientName := req.ClientName
	if req.ClientID != "" {
		if c := st.FindClient(req.ClientID); c != nil {
			clientName = c.Name
		}
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	return model.Transaction{
		ID:            id,
		Date:          date,
		Type:          model.TransactionType(req.Type),
		Category:      req.Category,
		Description:   req.Description,
		Amount:        amount,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		ClientID:      req.ClientID,
		ClientName:    clientName,
		Provider:      req.Provider,
		Items:         items,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
