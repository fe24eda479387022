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

var ErrProductNotFound = errors.New("producto no encontrado")

// ProductService manages the product catalog. Creating a product also opens
// its inventory record; deleting one does not close it — stock history
// outlives the catalog entry.
type ProductService interface {
	List(ctx context.Context) []model.Product
	Create(ctx context.Context, req dto.SaveProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req dto.SaveProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	store      *store.Store
	dispatcher *worker.Dispatcher
}

func NewProductService(st *store.Store, d *worker.Dispatcher) ProductService {
	return &productService{store: st, dispatcher: d}
}

func (s *productService) List(ctx context.Context) []model.Product {
	return s.store.Current().Products
}

func (s *productService) Create(ctx context.Context, req dto.SaveProductRequest) (*model.Product, error) {
	var created model.Product
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		createdAt, updatedAt := stamp(nil)
		created = model.Product{
			ID:        newID(),
			SKU:       req.SKU,
			Name:      req.Name,
			Brand:     req.Brand,
			Category:  req.Category,
			Cost:      req.Cost,
			Price:     req.Price,
			Provider:  req.Provider,
			Unit:      req.Unit,
			Status:    statusOrActive(req.Status),
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
		st.Products = append([]model.Product{created}, st.Products...)

		stock, minStock, location := 0, 0, ""
		if req.Stock != nil {
			stock = *req.Stock
		}
		if req.MinStock != nil {
			minStock = *req.MinStock
		}
		if req.Location != nil {
			location = *req.Location
		}
		ledger.EnsureTracked(st, created.ID, stock, minStock, location)

		notifyLowStock(ctx, s.dispatcher, st, created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *productService) Update(ctx context.Context, id string, req dto.SaveProductRequest) (*model.Product, error) {
	var updated model.Product
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Products {
			if st.Products[i].ID != id {
				continue
			}
			createdAt, updatedAt := stamp(&st.Products[i].CreatedAt)
			updated = model.Product{
				ID:        id,
				SKU:       req.SKU,
				Name:      req.Name,
				Brand:     req.Brand,
				Category:  req.Category,
				Cost:      req.Cost,
				Price:     req.Price,
				Provider:  req.Provider,
				Unit:      req.Unit,
				Status:    statusOrActive(req.Status),
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}
			st.Products[i] = updated

			item := st.Inventory[id]
			item.ProductID = id
			if req.MinStock != nil {
				item.MinStock = *req.MinStock
			}
			if req.Location != nil {
				item.Location = *req.Location
			}
			st.Inventory[id] = item

			// an explicit stock on edit rebaselines the counter through
			// a registered adjustment, never by overwriting it
			if req.Stock != nil {
				if err := ledger.Rebaseline(st, id, *req.Stock); err != nil {
					return err
				}
			}

			notifyLowStock(ctx, s.dispatcher, st, id)
			return nil
		}
		return ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Products {
			if st.Products[i].ID == id {
				// inventory record and movement history stay behind
				st.Products = append(st.Products[:i], st.Products[i+1:]...)
				return nil
			}
		}
		return ErrProductNotFound
	})
}
