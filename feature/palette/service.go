package palette

import (
	"context"
	"fmt"
	"strings"

	"token-bridge/core/cache"
	"token-bridge/core/palette"
	"token-bridge/core/storage"

	"go.uber.org/zap"
)

// Service generates, caches and stores palettes.
type Service struct {
	client         storage.Client
	bucket         string
	documentPrefix string
	defaultHarmony palette.Harmony
	cache          *cache.Loader
	logger         *zap.Logger
}

// NewService creates a new palette service.
func NewService(client storage.Client, bucket, documentPrefix string, defaultHarmony palette.Harmony, loader *cache.Loader, logger *zap.Logger) *Service {
	if defaultHarmony == "" {
		defaultHarmony = palette.HarmonyComplementary
	}
	return &Service{
		client:         client,
		bucket:         bucket,
		documentPrefix: documentPrefix,
		defaultHarmony: defaultHarmony,
		cache:          loader,
		logger:         logger,
	}
}

// Generate returns the palette for seed and harmony. An empty harmony uses the
// configured default. Results are cached per normalized seed and harmony.
func (s *Service) Generate(ctx context.Context, seed, harmony string) (palette.Palette, error) {
	h := s.defaultHarmony
	if harmony != "" {
		parsed, err := palette.ParseHarmony(harmony)
		if err != nil {
			return palette.Palette{}, err
		}
		h = parsed
	}

	// Validate before touching the cache so bad seeds never claim a key.
	if _, err := palette.ParseHex(seed); err != nil {
		return palette.Palette{}, err
	}

	key := fmt.Sprintf("palette:%s|%s", strings.ToLower(seed), h)
	p, hit, err := cache.GetOrLoad(ctx, s.cache, key, func(context.Context) (palette.Palette, error) {
		return palette.GenerateFullPalette(seed, h)
	})
	if err != nil {
		return palette.Palette{}, err
	}

	s.logger.Debug("Palette generated",
		zap.String("seed", p.Seed),
		zap.String("harmony", string(h)),
		zap.Bool("cached", hit))
	return p, nil
}

// Save stores p as the token document name under the document prefix.
func (s *Service) Save(ctx context.Context, name string, p palette.Palette) (string, error) {
	objectName := s.documentPrefix + name + ".json"
	if err := storage.WriteJSON(ctx, s.client, s.bucket, objectName, ToDocument(p)); err != nil {
		return "", err
	}
	s.logger.Info("Palette stored", zap.String("object", objectName), zap.String("seed", p.Seed))
	return objectName, nil
}
