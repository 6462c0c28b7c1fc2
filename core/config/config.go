package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"token-bridge/core/cache"
	"token-bridge/core/database"
	"token-bridge/core/gitrepo"
	"token-bridge/core/logger"
	"token-bridge/core/server"
	"token-bridge/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the token bridge configuration. Each section belongs to the
// package that consumes it.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Cache configures the engine result cache.
	Cache cache.Config `mapstructure:"cache"`
	// Repo points at a git checkout holding versioned token documents.
	Repo   gitrepo.Config `mapstructure:"repo"`
	Engine EngineConfig   `mapstructure:"engine"`
}

// LoadConfig reads dir/.env (if present) and the environment on top of the
// defaults declared in struct tags. Keys map to variables by section, so
// storage.bucket is STORAGE_BUCKET.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues registers a default for every tagged leaf field of t. Viper only
// consults AutomaticEnv for keys it already knows, so empty defaults are
// registered too.
func bindValues(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
