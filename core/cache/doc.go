// Package cache stores computed engine results keyed by the full input.
//
// Two stores are provided: an in-process MemoryStore and a RedisStore for
// sharing results across instances. Loader sits on top of a Store and
// collapses concurrent computations of the same key with singleflight, so a
// burst of identical compare requests computes once.
//
// # Usage
//
//	store, err := cache.New(cfg.Cache)
//	loader := cache.NewLoader(store, cfg.Cache.TTL())
//	result, hit, err := cache.GetOrLoad(ctx, loader, key, func(ctx context.Context) (reconcile.Result, error) {
//		return reconcile.Compare(snapshot, toks, mode), nil
//	})
package cache
