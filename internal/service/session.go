package service

import (
	"context"
	"errors"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

var ErrInvalidRole = errors.New("rol desconocido")

// SessionService handles the single session role and the factory reset.
type SessionService interface {
	Role(ctx context.Context) model.Role
	SetRole(ctx context.Context, role string) (model.Role, error)
	// Reset discards all data and reloads the factory seed.
	Reset(ctx context.Context)
}

type sessionService struct {
	store *store.Store
}

func NewSessionService(st *store.Store) SessionService {
	return &sessionService{store: st}
}

func (s *sessionService) Role(ctx context.Context) model.Role {
	return s.store.Current().UserRole
}

func (s *sessionService) SetRole(ctx context.Context, role string) (model.Role, error) {
	r := model.Role(role)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	err := s.store.Mutate(ctx, func(st *model.AppState) error {
		st.UserRole = r
		return nil
	})
	if err != nil {
		return "", err
	}
	return r, nil
}

func (s *sessionService) Reset(ctx context.Context) {
	s.store.Reset(ctx)
}
