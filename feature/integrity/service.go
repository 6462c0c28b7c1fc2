package integrity

import (
	"context"
	"errors"

	"token-bridge/core/storage"
	"token-bridge/feature/integrity/checks"
	"token-bridge/feature/snapshots"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by the schema check when no database is connected.
var ErrNoDatabase = errors.New("no database connected")

// Service handles integrity checks.
type Service struct {
	client         storage.Client
	bucket         string
	documentPrefix string
	db             *gorm.DB
	logger         *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket, documentPrefix string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:         client,
		bucket:         bucket,
		documentPrefix: documentPrefix,
		db:             db,
		logger:         logger,
	}
}

// Folders returns the folders the bucket must contain.
func (s *Service) Folders() []string {
	return []string{s.documentPrefix}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.Folders())
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckDocuments parses every stored token document.
func (s *Service) CheckDocuments(ctx context.Context) (*checks.DocumentsReport, error) {
	return checks.CheckDocuments(ctx, s.client, s.bucket, s.documentPrefix)
}

// CheckSchema compares the snapshot table with its model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db, snapshots.Record{})
}
