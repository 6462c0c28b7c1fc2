package storage

import "time"

// Config holds configuration for the object store holding token documents.
type Config struct {
	// Endpoint is the host of the S3-compatible service. A scheme is ignored.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds token documents and saved palettes.
	Bucket string `mapstructure:"bucket" default:"design-tokens"`
	Region string `mapstructure:"region" default:""`
	// CreateBucket creates Bucket on startup when it is missing.
	CreateBucket bool `mapstructure:"create_bucket" default:"false"`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the connection timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
