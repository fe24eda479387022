package service

import (
	"context"
	"errors"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/ledger"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/worker"
)

// InventoryService exposes the stock ledger: manual movements, current
// levels and the alert list.
type InventoryService interface {
	Items(ctx context.Context) []model.InventoryItem
	Movements(ctx context.Context) []model.InventoryMovement
	LowStock(ctx context.Context) []model.InventoryItem
	RegisterMovement(ctx context.Context, req dto.MovementRequest) (*model.InventoryMovement, error)
}

type inventoryService struct {
	store      *store.Store
	dispatcher *worker.Dispatcher
}

func NewInventoryService(st *store.Store, d *worker.Dispatcher) InventoryService {
	return &inventoryService{store: st, dispatcher: d}
}

// Items lists inventory records in product catalog order.
func (s *inventoryService) Items(ctx context.Context) []model.InventoryItem {
	st := s.store.Current()
	out := make([]model.InventoryItem, 0, len(st.Inventory))
	for _, p := range st.Products {
		if item, ok := st.Inventory[p.ID]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (s *inventoryService) Movements(ctx context.Context) []model.InventoryMovement {
	return s.store.Current().Movements
}

func (s *inventoryService) LowStock(ctx context.Context) []model.InventoryItem {
	return ledger.LowStock(s.store.Current())
}

func (s *inventoryService) RegisterMovement(ctx context.Context, req dto.MovementRequest) (*model.InventoryMovement, error) {
	var mov *model.InventoryMovement
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		if st.FindProduct(req.ProductID) == nil {
			return ErrProductNotFound
		}
		var err error
		_, mov, err = ledger.ApplyMovement(st, ledger.MovementInput{
			ProductID: req.ProductID,
			Type:      model.MovementType(req.Type),
			Quantity:  req.Quantity,
			Reason:    req.Reason,
			Notes:     req.Notes,
		})
		if err != nil {
			return err
		}
		notifyLowStock(ctx, s.dispatcher, st, req.ProductID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// IsStockError reports whether err is a user-correctable stock rejection
// rather than an internal failure.
func IsStockError(err error) bool {
	var ins *ledger.InsufficientStockError
	return errors.As(err, &ins) || errors.Is(err, ledger.ErrInvalidQuantity)
}
