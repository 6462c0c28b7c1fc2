package tokens

import (
	"context"
	"errors"
	"fmt"

	"token-bridge/core/gitrepo"
	"token-bridge/core/storage"
	"token-bridge/core/tokens"

	"go.uber.org/zap"
)

// ErrRepoDisabled is returned when no git repository is configured.
var ErrRepoDisabled = errors.New("token repository is not configured")

// documentExtensions are tried in order when loading a stored document.
var documentExtensions = []string{".json", ".yaml", ".yml"}

// Flattened is a flattened document with its summary.
type Flattened struct {
	Source   string                    `json:"source,omitempty"`
	Revision *gitrepo.CommitInfo       `json:"revision,omitempty"`
	Tokens   []tokens.Token            `json:"tokens"`
	Groups   map[string][]tokens.Token `json:"groups,omitempty"`
	Summary  tokens.Summary            `json:"summary"`
}

// Service loads and flattens token documents.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	repo    *gitrepo.Repository
	repoCfg gitrepo.Config
	logger  *zap.Logger
}

// NewService creates a new tokens service. repo may be nil.
func NewService(client storage.Client, bucket, prefix string, repo *gitrepo.Repository, repoCfg gitrepo.Config, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		repo:    repo,
		repoCfg: repoCfg,
		logger:  logger,
	}
}

// Flatten flattens doc and summarizes the result.
func (s *Service) Flatten(doc tokens.Document) Flattened {
	toks := tokens.Flatten(doc)
	return Flattened{Tokens: toks, Summary: tokens.Summarize(toks)}
}

// Load reads the stored document name.
func (s *Service) Load(ctx context.Context, name string) (tokens.Document, string, error) {
	var lastErr error
	for _, ext := range documentExtensions {
		objectName := s.prefix + name + ext
		data, err := storage.ReadObject(ctx, s.client, s.bucket, objectName)
		if errors.Is(err, storage.ErrObjectNotFound) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, "", err
		}

		doc, err := tokens.Parse(data)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", objectName, err)
		}
		return doc, objectName, nil
	}
	return nil, "", lastErr
}

// LoadTokens reads and flattens the stored document name.
func (s *Service) LoadTokens(ctx context.Context, name string) ([]tokens.Token, error) {
	doc, _, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return tokens.Flatten(doc), nil
}

// LoadFlattened reads and flattens the stored document name.
func (s *Service) LoadFlattened(ctx context.Context, name string) (Flattened, error) {
	doc, source, err := s.Load(ctx, name)
	if err != nil {
		return Flattened{}, err
	}
	out := s.Flatten(doc)
	out.Source = source
	return out, nil
}

// LoadFromRepo reads and flattens a document from git. Empty ref and path
// fall back to the configured defaults.
func (s *Service) LoadFromRepo(ref, path string) (Flattened, error) {
	if s.repo == nil {
		return Flattened{}, ErrRepoDisabled
	}
	if ref == "" {
		ref = s.repoCfg.Ref
	}
	if path == "" {
		path = s.repoCfg.TokensPath
	}

	doc, info, err := s.repo.ReadDocument(ref, path)
	if err != nil {
		return Flattened{}, err
	}

	out := s.Flatten(doc)
	out.Source = path
	out.Revision = &info
	s.logger.Debug("Read token document from git",
		zap.String("path", path),
		zap.String("ref", ref),
		zap.String("commit", info.Hash))
	return out, nil
}

// List returns the names of the stored documents.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return storage.ListNames(ctx, s.client, s.bucket, s.prefix)
}

// Filter keeps the tokens of kind and recomputes the summary. An empty kind
// keeps everything.
func Filter(f Flattened, kind tokens.Kind) Flattened {
	if kind == "" {
		return f
	}
	kept := make([]tokens.Token, 0, len(f.Tokens))
	for _, t := range f.Tokens {
		if t.Kind == kind {
			kept = append(kept, t)
		}
	}
	f.Tokens = kept
	f.Summary = tokens.Summarize(kept)
	return f
}
