package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Loader reads through a Store, computing missing values once per key.
type Loader struct {
	store Store
	ttl   time.Duration
	sf    singleflight.Group
}

// flightResult carries a computed value out of a singleflight call.
type flightResult[T any] struct {
	value T
	hit   bool
}

// NewLoader creates a loader over store. A nil store or zero ttl disables
// caching; values are then computed on every call.
func NewLoader(store Store, ttl time.Duration) *Loader {
	return &Loader{store: store, ttl: ttl}
}

// Enabled reports whether results are stored.
func (l *Loader) Enabled() bool {
	return l != nil && l.store != nil && l.ttl > 0
}

// Invalidate removes key from the store.
func (l *Loader) Invalidate(ctx context.Context, key string) error {
	if !l.Enabled() {
		return nil
	}
	return l.store.Delete(ctx, key)
}

// GetOrLoad returns the cached value for key or computes it with load.
// Concurrent callers with the same key share one computation. hit reports
// whether the value came from the store. Store failures are not fatal: the
// value is computed and returned.
func GetOrLoad[T any](ctx context.Context, l *Loader, key string, load func(context.Context) (T, error)) (value T, hit bool, err error) {
	if !l.Enabled() {
		value, err = load(ctx)
		return value, false, err
	}

	// Fast path
	if cached, ok := lookup[T](ctx, l, key); ok {
		return cached, true, nil
	}

	res, err, _ := l.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		if cached, ok := lookup[T](ctx, l, key); ok {
			return flightResult[T]{value: cached, hit: true}, nil
		}

		computed, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if payload, err := json.Marshal(computed); err == nil {
			_ = l.store.Set(ctx, key, payload, l.ttl)
		}
		return flightResult[T]{value: computed}, nil
	})
	if err != nil {
		return value, false, err
	}

	out, ok := res.(flightResult[T])
	if !ok {
		return value, false, fmt.Errorf("cache: unexpected flight result %T", res)
	}
	return out.value, out.hit, nil
}

func lookup[T any](ctx context.Context, l *Loader, key string) (T, bool) {
	var value T
	payload, ok, err := l.store.Get(ctx, key)
	if err != nil || !ok {
		return value, false
	}
	if err := json.Unmarshal(payload, &value); err != nil {
		return value, false
	}
	return value, true
}
