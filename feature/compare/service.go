package compare

import (
	"context"
	"errors"
	"fmt"

	"token-bridge/core/cache"
	"token-bridge/core/reconcile"
	"token-bridge/core/tokens"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrSourcesUnavailable is returned when stored comparisons are requested
// without snapshot or document sources.
var ErrSourcesUnavailable = errors.New("stored comparison sources are not configured")

// SnapshotSource provides stored variable snapshots.
type SnapshotSource interface {
	LatestSnapshot(ctx context.Context, name string) (*reconcile.Snapshot, error)
}

// DocumentSource provides stored token documents.
type DocumentSource interface {
	LoadTokens(ctx context.Context, name string) ([]tokens.Token, error)
}

// Request is the body of a direct comparison. Document takes precedence
// over Tokens when both are set.
type Request struct {
	Snapshot *reconcile.Snapshot `json:"snapshot"`
	Document tokens.Document     `json:"document,omitempty"`
	Tokens   []tokens.Token      `json:"tokens,omitempty"`
	Mode     string              `json:"mode,omitempty"`
}

// TokenList returns the flattened tokens of the request.
func (r Request) TokenList() []tokens.Token {
	if r.Document != nil {
		return tokens.Flatten(r.Document)
	}
	if r.Tokens == nil {
		return []tokens.Token{}
	}
	return r.Tokens
}

// Options configures a Service.
type Options struct {
	// DefaultMode is compared when a request names no mode.
	DefaultMode string
	// Strict rejects inputs with duplicate match keys.
	Strict bool
}

// Service runs cached comparisons.
type Service struct {
	snapshots SnapshotSource
	documents DocumentSource
	cache     *cache.Loader
	opts      Options
	logger    *zap.Logger
}

// NewService creates a new compare service. snapshots and documents may be
// nil when only direct comparisons are served.
func NewService(snapshots SnapshotSource, documents DocumentSource, loader *cache.Loader, opts Options, logger *zap.Logger) *Service {
	return &Service{
		snapshots: snapshots,
		documents: documents,
		cache:     loader,
		opts:      opts,
		logger:    logger,
	}
}

// Compare classifies snapshot against toks. hit reports whether the result
// came from the cache.
func (s *Service) Compare(ctx context.Context, snapshot *reconcile.Snapshot, toks []tokens.Token, mode string) (result reconcile.Result, hit bool, err error) {
	if mode == "" {
		mode = s.opts.DefaultMode
	}

	key, err := reconcile.CacheKey(snapshot, toks, mode)
	if err != nil {
		return reconcile.Result{}, false, err
	}

	result, hit, err = cache.GetOrLoad(ctx, s.cache, key, func(context.Context) (reconcile.Result, error) {
		if s.opts.Strict {
			return reconcile.CompareStrict(snapshot, toks, mode)
		}
		return reconcile.Compare(snapshot, toks, mode), nil
	})
	if err != nil {
		return reconcile.Result{}, false, err
	}

	if len(result.Duplicates) > 0 {
		s.logger.Warn("Duplicate match keys in comparison input", zap.Strings("keys", result.Duplicates))
	}
	s.logger.Debug("Comparison complete",
		zap.String("mode", result.Mode),
		zap.Int("items", result.Summary.Total),
		zap.Int("needs_sync", result.Summary.NeedsSync),
		zap.Bool("cached", hit))
	return result, hit, nil
}

// CompareStored compares the latest snapshot stored under snapshotName with
// the token document documentName.
func (s *Service) CompareStored(ctx context.Context, snapshotName, documentName, mode string) (reconcile.Result, bool, error) {
	if s.snapshots == nil || s.documents == nil {
		return reconcile.Result{}, false, ErrSourcesUnavailable
	}

	var (
		snapshot *reconcile.Snapshot
		toks     []tokens.Token
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.snapshots.LatestSnapshot(gctx, snapshotName)
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", snapshotName, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		toks, err = s.documents.LoadTokens(gctx, documentName)
		if err != nil {
			return fmt.Errorf("document %s: %w", documentName, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return reconcile.Result{}, false, err
	}

	return s.Compare(ctx, snapshot, toks, mode)
}

// FilterStatus keeps the items with status. Summary, collections and modes
// still describe the full result. An empty status keeps everything.
func FilterStatus(result reconcile.Result, status reconcile.Status) reconcile.Result {
	if status == "" {
		return result
	}
	kept := make([]reconcile.Item, 0, result.Summary.Count(status))
	for _, item := range result.Items {
		if item.Status == status {
			kept = append(kept, item)
		}
	}
	result.Items = kept
	return result
}

// ParseStatus validates a status name. Empty is accepted.
func ParseStatus(s string) (reconcile.Status, error) {
	if s == "" {
		return "", nil
	}
	for _, st := range reconcile.Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}
