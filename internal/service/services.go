package service

import (
	"context"
	"errors"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

var ErrServiceNotFound = errors.New("servicio no encontrado")

// ServiceCatalogService manages the salon service catalog.
type ServiceCatalogService interface {
	List(ctx context.Context) []model.Service
	Create(ctx context.Context, req dto.SaveServiceRequest) (*model.Service, error)
	Update(ctx context.Context, id string, req dto.SaveServiceRequest) (*model.Service, error)
	// Delete removes the catalog entry. Transactions referencing it keep
	// their denormalized copies; nothing cascades.
	Delete(ctx context.Context, id string) error
}

type serviceCatalogService struct {
	store *store.Store
}

func NewServiceCatalogService(st *store.Store) ServiceCatalogService {
	return &serviceCatalogService{store: st}
}

func (s *serviceCatalogService) List(ctx context.Context) []model.Service {
	return s.store.Current().Services
}

func (s *serviceCatalogService) Create(ctx context.Context, req dto.SaveServiceRequest) (*model.Service, error) {
	var created model.Service
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		createdAt, updatedAt := stamp(nil)
		created = model.Service{
			ID:        newID(),
			Code:      req.Code,
			Name:      req.Name,
			Category:  req.Category,
			Price:     req.Price,
			Duration:  req.Duration,
			Status:    statusOrActive(req.Status),
			Notes:     req.Notes,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
		// new entries go first, as the catalog view shows them
		st.Services = append([]model.Service{created}, st.Services...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *serviceCatalogService) Update(ctx context.Context, id string, req dto.SaveServiceRequest) (*model.Service, error) {
	var updated model.Service
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Services {
			if st.Services[i].ID != id {
				continue
			}
			createdAt, updatedAt := stamp(&st.Services[i].CreatedAt)
			updated = model.Service{
				ID:        id,
				Code:      req.Code,
				Name:      req.Name,
				Category:  req.Category,
				Price:     req.Price,
				Duration:  req.Duration,
				Status:    statusOrActive(req.Status),
				Notes:     req.Notes,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}
			st.Services[i] = updated
			return nil
		}
		return ErrServiceNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *serviceCatalogService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Services {
			if st.Services[i].ID == id {
				st.Services = append(st.Services[:i], st.Services[i+1:]...)
				return nil
			}
		}
		return ErrServiceNotFound
	})
}

func statusOrActive(s string) model.Status {
	if s == string(model.StatusInactive) {
		return model.StatusInactive
	}
	return model.StatusActive
}
