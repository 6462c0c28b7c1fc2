package snapshots

import (
	"context"
	"errors"
	"fmt"

	"token-bridge/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDatabaseUnavailable is returned when the feature runs without a database.
var ErrDatabaseUnavailable = errors.New("snapshot database is not available")

// Service stores and retrieves snapshots.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new snapshot service. db may be nil.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	s := &Service{logger: logger}
	if db != nil {
		s.repo = NewRepository(db)
	}
	return s
}

// Available reports whether a database is configured.
func (s *Service) Available() bool {
	return s.repo != nil
}

// Migrate prepares the snapshot table.
func (s *Service) Migrate() error {
	if s.repo == nil {
		return ErrDatabaseUnavailable
	}
	return s.repo.Migrate()
}

// Store saves snapshot under name.
func (s *Service) Store(ctx context.Context, name string, snapshot *reconcile.Snapshot) (Record, bool, error) {
	if s.repo == nil {
		return Record{}, false, ErrDatabaseUnavailable
	}
	if snapshot == nil {
		snapshot = &reconcile.Snapshot{}
	}

	record, created, err := s.repo.Save(ctx, name, snapshot)
	if err != nil {
		return Record{}, false, err
	}
	if created {
		s.logger.Info("Snapshot stored",
			zap.String("name", name),
			zap.String("ref", record.Ref),
			zap.Int("variables", record.VariableCount))
	} else {
		s.logger.Debug("Snapshot unchanged", zap.String("name", name), zap.String("ref", record.Ref))
	}
	return record, created, nil
}

// Latest returns the newest record stored under name.
func (s *Service) Latest(ctx context.Context, name string) (Record, error) {
	if s.repo == nil {
		return Record{}, ErrDatabaseUnavailable
	}
	return s.repo.Latest(ctx, name)
}

// LatestSnapshot returns the decoded newest snapshot stored under name.
func (s *Service) LatestSnapshot(ctx context.Context, name string) (*reconcile.Snapshot, error) {
	record, err := s.Latest(ctx, name)
	if err != nil {
		return nil, err
	}
	return record.Snapshot()
}

// Get returns the record with the given ref. A ref stored under another
// name is reported as not found.
func (s *Service) Get(ctx context.Context, name, ref string) (Record, error) {
	if s.repo == nil {
		return Record{}, ErrDatabaseUnavailable
	}
	record, err := s.repo.Get(ctx, ref)
	if err != nil {
		return Record{}, err
	}
	if record.Name != name {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrSnapshotNotFound, name, ref)
	}
	return record, nil
}

// History lists the records stored under name, newest first.
func (s *Service) History(ctx context.Context, name string, limit int) ([]Record, error) {
	if s.repo == nil {
		return nil, ErrDatabaseUnavailable
	}
	return s.repo.History(ctx, name, limit)
}
