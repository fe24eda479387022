package infra

import (
	"context"
	"errors"
)

// StorageKey is the fixed key the whole Entity Store snapshot lives under,
// regardless of backend (file name stem, Redis key, SQLite row key).
const StorageKey = "evolution_salon_data"

// ErrNoSnapshot is returned by Load on a first run, before anything has been
// persisted. Callers fall back to the seed state.
var ErrNoSnapshot = errors.New("no persisted snapshot")

// SnapshotStore persists the serialized Entity Store as a single opaque blob,
// written wholesale after every mutation (last-write-wins, no WAL).
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
