package infra

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// snapshotRow is the single-row table backing the SQLite snapshot store.
type snapshotRow struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// SQLiteSnapshotStore keeps the snapshot blob in an embedded SQLite database.
// Still a key-value blob write — the database buys atomic durability, not a
// relational schema.
type SQLiteSnapshotStore struct {
	db *gorm.DB
}

func NewSQLiteSnapshotStore(path string) (*SQLiteSnapshotStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &SQLiteSnapshotStore{db: db}, nil
}

func (s *SQLiteSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", StorageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return row.Data, nil
}

func (s *SQLiteSnapshotStore) Save(ctx context.Context, data []byte) error {
	row := snapshotRow{Key: StorageKey, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Save(&row).Error
}

var _ SnapshotStore = (*SQLiteSnapshotStore)(nil)
