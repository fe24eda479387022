package service

import (
	"context"
	"errors"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

var ErrProviderNotFound = errors.New("proveedor no encontrado")

// ProviderService manages the supplier registry.
type ProviderService interface {
	List(ctx context.Context) []model.Provider
	Create(ctx context.Context, req dto.SaveProviderRequest) (*model.Provider, error)
	Update(ctx context.Context, id string, req dto.SaveProviderRequest) (*model.Provider, error)
	Delete(ctx context.Context, id string) error
}

type providerService struct {
	store *store.Store
}

func NewProviderService(st *store.Store) ProviderService {
	return &providerService{store: st}
}

func (s *providerService) List(ctx context.Context) []model.Provider {
	return s.store.Current().Providers
}

func (s *providerService) Create(ctx context.Context, req dto.SaveProviderRequest) (*model.Provider, error) {
	var created model.Provider
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		createdAt, updatedAt := stamp(nil)
		created = model.Provider{
			ID:        newID(),
			Name:      req.Name,
			Contact:   req.Contact,
			Phone:     req.Phone,
			Category:  req.Category,
			Notes:     req.Notes,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
		st.Providers = append([]model.Provider{created}, st.Providers...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *providerService) Update(ctx context.Context, id string, req dto.SaveProviderRequest) (*model.Provider, error) {
	var updated model.Provider
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Providers {
			if st.Providers[i].ID != id {
				continue
			}
			createdAt, updatedAt := stamp(&st.Providers[i].CreatedAt)
			updated = model.Provider{
				ID:        id,
				Name:      req.Name,
				Contact:   req.Contact,
				Phone:     req.Phone,
				Category:  req.Category,
				Notes:     req.Notes,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}
			st.Providers[i] = updated
			return nil
		}
		return ErrProviderNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *providerService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Providers {
			if st.Providers[i].ID == id {
				st.Providers = append(st.Providers[:i], st.Providers[i+1:]...)
				return nil
			}
		}
		return ErrProviderNotFound
	})
}
