package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the environment surface read by WithEnv
type envConfig struct {
	Domain         string        `env:"ASSETS_DOMAIN"`
	Prefix         string        `env:"ASSETS_PREFIX"`
	Secure         string        `env:"ASSETS_SECURE"`
	Fallback       string        `env:"ASSETS_FALLBACK"`
	Environment    string        `env:"ASSETS_ENVIRONMENT"`
	ShorthandReady string        `env:"ASSETS_SHORTHAND_READY"`
	Manifest       string        `env:"ASSETS_MANIFEST"`
	SourceURL      string        `env:"ASSETS_SOURCE_URL"`
	VersionsCache  string        `env:"ASSETS_VERSIONS_CACHE"`
	VersionsTTL    time.Duration `env:"ASSETS_VERSIONS_TTL" env-default:"1h"`
	VersionsPrefix string        `env:"ASSETS_VERSIONS_KEY_PREFIX"`
	S3             s3EnvConfig
}

type s3EnvConfig struct {
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint        string `env:"AWS_S3_ENDPOINT"`
	UsePathStyle    string `env:"AWS_S3_USE_PATH_STYLE"`
}

// WithEnv applies environment variable overrides.
//
// Environment variable mapping:
//
// Registry:
//   ASSETS_DOMAIN - Domain prepended to relative asset paths
//   ASSETS_PREFIX - String prepended to every rendered tag line
//   ASSETS_SECURE - Prefer https in generated URLs ("true"/"false")
//   ASSETS_FALLBACK - Classification fallback: "css", "less", "js" or "none"
//   ASSETS_ENVIRONMENT - Pinned environment label ("production", "local", ...)
//   ASSETS_SHORTHAND_READY - Short DOM-ready wrapper for inline scripts
//   ASSETS_MANIFEST - Source path of the cache-buster manifest
//
// Versions cache:
//   ASSETS_VERSIONS_CACHE - Enable wildcard version caching ("true"/"false")
//   ASSETS_VERSIONS_TTL - Cache entry TTL as a duration string (default: "1h")
//   ASSETS_VERSIONS_KEY_PREFIX - Cache key prefix (default: "assets:")
//
// Source:
//   ASSETS_SOURCE_URL - Asset source connection string (one of):
//                       - "memory://" - In-memory source
//                       - "file:///path/to/static" - Filesystem source
//                       - "s3://bucket?region=us-east-1&prefix=assets" - S3 source
//                       S3 credentials and endpoint come from AWS_ACCESS_KEY_ID,
//                       AWS_SECRET_ACCESS_KEY, AWS_S3_REGION, AWS_S3_ENDPOINT
//                       and AWS_S3_USE_PATH_STYLE.
func WithEnv() Option {
	return func(c *Config) error {
		var ec envConfig
		if err := cleanenv.ReadEnv(&ec); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		if ec.Domain != "" {
			c.Domain = ec.Domain
		}
		if ec.Prefix != "" {
			c.Prefix = ec.Prefix
		}
		if ec.Fallback != "" {
			c.Fallback = ec.Fallback
		}
		if ec.Environment != "" {
			c.Environment = ec.Environment
		}
		if ec.Manifest != "" {
			c.Manifest = ec.Manifest
		}

		secure, set, err := parseBoolEnv("ASSETS_SECURE", ec.Secure)
		if err != nil {
			return err
		}
		if set {
			c.Secure = secure
		}

		shorthand, set, err := parseBoolEnv("ASSETS_SHORTHAND_READY", ec.ShorthandReady)
		if err != nil {
			return err
		}
		if set {
			c.ShorthandReady = shorthand
		}

		caching, set, err := parseBoolEnv("ASSETS_VERSIONS_CACHE", ec.VersionsCache)
		if err != nil {
			return err
		}
		if set {
			c.VersionsCache = caching
			c.VersionsTTL = ec.VersionsTTL
			if ec.VersionsPrefix != "" {
				c.VersionsKeyPrefix = ec.VersionsPrefix
			}
		}

		return applySourceURL(ec, c)
	}
}

// applySourceURL configures the asset source from ASSETS_SOURCE_URL
func applySourceURL(ec envConfig, c *Config) error {
	raw := ec.SourceURL
	if raw == "" {
		return nil
	}
	if raw == "memory" || raw == "memory://" {
		c.Source = SourceConfig{
			Type:   "memory",
			Config: map[string]interface{}{},
		}
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid ASSETS_SOURCE_URL: %w", err)
	}

	switch u.Scheme {
	case "file":
		if u.Path == "" {
			return fmt.Errorf("filesystem path cannot be empty in ASSETS_SOURCE_URL")
		}
		c.Source = SourceConfig{
			Type: "fs",
			Config: map[string]interface{}{
				"base_dir": u.Path,
			},
		}
		return nil

	case "s3":
		if u.Host == "" {
			return fmt.Errorf("S3 bucket name cannot be empty in ASSETS_SOURCE_URL")
		}

		cfg := map[string]interface{}{
			"bucket": u.Host,
			"region": ec.S3.Region,
		}

		q := u.Query()
		if v := q.Get("region"); v != "" {
			cfg["region"] = v
		}
		if v := q.Get("prefix"); v != "" {
			cfg["key_prefix"] = v
		}

		if ec.S3.Endpoint != "" {
			cfg["endpoint"] = ec.S3.Endpoint
		}
		if ec.S3.AccessKeyID != "" {
			cfg["access_key_id"] = ec.S3.AccessKeyID
		}
		if ec.S3.SecretAccessKey != "" {
			cfg["secret_access_key"] = ec.S3.SecretAccessKey
		}

		pathStyle, set, err := parseBoolEnv("AWS_S3_USE_PATH_STYLE", ec.S3.UsePathStyle)
		if err != nil {
			return err
		}
		if set {
			cfg["use_path_style"] = pathStyle
		}

		c.Source = SourceConfig{Type: "s3", Config: cfg}
		return nil

	default:
		return fmt.Errorf("unsupported ASSETS_SOURCE_URL format: %s (use 'memory://', 'file://...' or 's3://...')", raw)
	}
}

// parseBoolEnv parses a tri-state boolean env value (unset, true, false)
func parseBoolEnv(name, raw string) (bool, bool, error) {
	if raw == "" {
		return false, false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("invalid boolean for %s: %w", name, err)
	}
	return parsed, true, nil
}
