package palette

import (
	"token-bridge/core/cache"
	"token-bridge/core/palette"
	"token-bridge/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Palette feature.
func NewFeature(client storage.Client, bucket, documentPrefix string, defaultHarmony palette.Harmony, loader *cache.Loader, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, documentPrefix, defaultHarmony, loader, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "palette"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
