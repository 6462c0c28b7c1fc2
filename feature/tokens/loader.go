package tokens

import (
	"token-bridge/core/gitrepo"
	"token-bridge/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Tokens feature. repo may be nil when no git
// repository is configured.
func NewFeature(client storage.Client, bucket, prefix string, repo *gitrepo.Repository, repoCfg gitrepo.Config, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, prefix, repo, repoCfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tokens"
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
