// Package config provides configuration management for Token Bridge.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and the bucket holding token documents
//   - Log: Logging level and format
//   - Database: snapshot history database (mysql or sqlite)
//   - Cache: result cache driver, redis URL and TTL
//   - Repo: git repository holding versioned token documents
//   - Engine: default harmony and comparison mode
//
// Every key can be overridden by its upper-cased environment variable with dots
// replaced by underscores (cache.redis_url -> CACHE_REDIS_URL).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
