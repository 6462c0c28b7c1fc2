package snapshots

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"token-bridge/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSnapshotNotFound is returned when no snapshot matches the lookup.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Repository persists snapshots with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the snapshot table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate snapshots: %w", err)
	}
	return nil
}

// Save stores snapshot under name. When the latest stored snapshot for name
// has the same content it is returned instead and created is false.
func (r *Repository) Save(ctx context.Context, name string, snapshot *reconcile.Snapshot) (record Record, created bool, err error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	sum := sha256.Sum256(payload)
	checksum := hex.EncodeToString(sum[:])

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest Record
		res := tx.Where("name = ?", name).Order("id DESC").Limit(1).Find(&latest)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 && latest.Checksum == checksum {
			record = latest
			return nil
		}

		record = Record{
			Ref:           uuid.NewString(),
			Name:          name,
			Checksum:      checksum,
			VariableCount: len(snapshot.Variables),
			Payload:       string(payload),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	return record, created, nil
}

// Latest returns the newest snapshot stored under name.
func (r *Repository) Latest(ctx context.Context, name string) (Record, error) {
	var record Record
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("id DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}
	return record, nil
}

// Get returns the snapshot with the given ref.
func (r *Repository) Get(ctx context.Context, ref string) (Record, error) {
	var record Record
	err := r.db.WithContext(ctx).Where("ref = ?", ref).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, ref)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load snapshot %s: %w", ref, err)
	}
	return record, nil
}

// History lists the snapshots stored under name, newest first, without
// their payloads. limit <= 0 means no limit.
func (r *Repository) History(ctx context.Context, name string, limit int) ([]Record, error) {
	records := make([]Record, 0)
	q := r.db.WithContext(ctx).
		Select("id", "ref", "name", "checksum", "variable_count", "created_at").
		Where("name = ?", name).
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots %s: %w", name, err)
	}
	return records, nil
}
