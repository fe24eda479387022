package service

import (
	"context"
	"errors"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

var ErrClientNotFound = errors.New("cliente no encontrado")

// ClientService manages the customer registry.
type ClientService interface {
	List(ctx context.Context) []model.Client
	Create(ctx context.Context, req dto.SaveClientRequest) (*model.Client, error)
	Update(ctx context.Context, id string, req dto.SaveClientRequest) (*model.Client, error)
	Delete(ctx context.Context, id string) error
	// History returns the client's income transactions, newest first.
	History(ctx context.Context, id string) ([]model.Transaction, error)
}

type clientService struct {
	store *store.Store
}

func NewClientService(st *store.Store) ClientService {
	return &clientService{store: st}
}

func (s *clientService) List(ctx context.Context) []model.Client {
	return s.store.Current().Clients
}

func (s *clientService) Create(ctx context.Context, req dto.SaveClientRequest) (*model.Client, error) {
	var created model.Client
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		createdAt, updatedAt := stamp(nil)
		created = model.Client{
			ID:        newID(),
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			Notes:     req.Notes,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		}
		st.Clients = append([]model.Client{created}, st.Clients...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *clientService) Update(ctx context.Context, id string, req dto.SaveClientRequest) (*model.Client, error) {
	var updated model.Client
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Clients {
			if st.Clients[i].ID != id {
				continue
			}
			createdAt, updatedAt := stamp(&st.Clients[i].CreatedAt)
			updated = model.Client{
				ID:        id,
				Name:      req.Name,
				Phone:     req.Phone,
				Email:     req.Email,
				Notes:     req.Notes,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}
			st.Clients[i] = updated
			return nil
		}
		return ErrClientNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(st *model.AppState) error {
		for i := range st.Clients {
			if st.Clients[i].ID == id {
				st.Clients = append(st.Clients[:i], st.Clients[i+1:]...)
				return nil
			}
		}
		return ErrClientNotFound
	})
}

func (s *clientService) History(ctx context.Context, id string) ([]model.Transaction, error) {
	st := s.store.Current()
	client := st.FindClient(id)
	if client == nil {
		return nil, ErrClientNotFound
	}
	out := make([]model.Transaction, 0)
	for _, t := range st.Transactions {
		if t.Type != model.TransactionIncome {
			continue
		}
		// records written before the client was registered carry the name only
		if t.ClientID == id || (t.ClientID == "" && t.ClientName == client.Name) {
			out = append(out, t)
		}
	}
	return out, nil
}
