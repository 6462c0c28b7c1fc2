// Package loader mounts optional features onto the Fiber app.
//
// A feature reports its name and whether it is enabled, and registers its
// routes in Load. Manager keeps features in registration order and loads
// the enabled ones:
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(palette.NewFeature(...))
//	mgr.Register(compare.NewFeature(...))
//	if err := mgr.LoadAll(app); err != nil {
//	    logg.Fatal("Failed to load features", zap.Error(err))
//	}
//
// A feature whose dependencies are missing (snapshots without a database)
// reports IsEnabled false and is skipped.
package loader
