// Package store owns the Entity Store: the single in-memory AppState snapshot
// and its persistence. One logical writer at a time; every mutation clones the
// current snapshot, applies the change, and atomically publishes the clone.
// Readers always observe a complete snapshot — there is no partial-update
// window.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/seed"
)

type Store struct {
	mu    sync.Mutex // serializes writers; readers use the published pointer
	state *model.AppState
	snap  infra.SnapshotStore
}

func New(snap infra.SnapshotStore) *Store {
	return &Store{state: seed.State(), snap: snap}
}

// Current returns the latest published snapshot. The returned state must be
// treated as read-only; mutations go through Mutate.
func (s *Store) Current() *model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mutate runs fn against a clone of the current snapshot. If fn returns nil
// the clone replaces the current state and is persisted fire-and-forget; if
// fn fails nothing changes — the caller sees all-or-nothing semantics.
func (s *Store) Mutate(ctx context.Context, fn func(st *model.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	s.persistAsync(next)
	return nil
}

// Reset discards everything and restores the built-in seed state.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = seed.State()
	s.persistAsync(s.state)
}

// snapshotFile mirrors the persisted JSON layout: each collection is decoded
// independently so one malformed sub-collection does not discard the rest.
type snapshotFile map[string]json.RawMessage

// Load reads the persisted snapshot. Absent or malformed sub-collections fall
// back to their seed defaults individually; an unparseable blob resets the
// whole state to seed. Either way the corruption is logged rather than
// silently swallowed.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.snap.Load(ctx)
	if err == infra.ErrNoSnapshot {
		log.Info().Msg("no persisted snapshot, starting from seed state")
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: load snapshot: %w", err)
	}

	var raw snapshotFile
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Error().Err(err).Msg("persisted snapshot unparseable, resetting to seed state")
		s.mu.Lock()
		s.state = seed.State()
		s.mu.Unlock()
		return nil
	}

	st := seed.State()
	decodeCollection(raw, "services", &st.Services)
	decodeCollection(raw, "products", &st.Products)
	decodeCollection(raw, "clients", &st.Clients)
	decodeCollection(raw, "providers", &st.Providers)
	decodeCollection(raw, "inventory", &st.Inventory)
	decodeCollection(raw, "movements", &st.Movements)
	decodeCollection(raw, "transactions", &st.Transactions)

	var role model.Role
	if msg, ok := raw["userRole"]; ok && json.Unmarshal(msg, &role) == nil && role.Valid() {
		st.UserRole = role
	}
	if st.Inventory == nil {
		// a persisted JSON null decodes into a nil map
		st.Inventory = map[string]model.InventoryItem{}
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// decodeCollection overwrites dst with the persisted value when present and
// well-formed; otherwise dst keeps its seed default.
func decodeCollection[T any](raw snapshotFile, key string, dst *T) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		log.Warn().Str("collection", key).Err(err).Msg("malformed collection in snapshot, keeping seed default")
		return
	}
	*dst = v
}

// Persist writes the current snapshot synchronously. Used at shutdown so the
// last mutation is not lost to the fire-and-forget window.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	return s.snap.Save(ctx, data)
}

// persistAsync serializes st and hands it to the backend without blocking the
// mutation. A write failure loses at most the latest snapshot (last-write-wins,
// no WAL) and is logged.
func (s *Store) persistAsync(st *model.AppState) {
	data, err := json.Marshal(st)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal snapshot")
		return
	}
	go func() {
		if err := s.snap.Save(context.Background(), data); err != nil {
			log.Error().Err(err).Msg("failed to persist snapshot")
		}
	}()
}
