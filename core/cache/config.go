package cache

import "time"

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// Config holds configuration for the result cache.
type Config struct {
	// Driver is the cache backend (memory, redis, none).
	Driver string `mapstructure:"driver" default:"memory"`
	// RedisURL is the connection URL used by the redis driver.
	RedisURL string `mapstructure:"redis_url" default:"redis://localhost:6379/0"`
	// TTLSeconds is how long results are kept. Zero disables caching.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
	// Prefix is prepended to every key written to redis.
	Prefix string `mapstructure:"prefix" default:"token-bridge:"`
}

// TTL returns the configured time-to-live.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
