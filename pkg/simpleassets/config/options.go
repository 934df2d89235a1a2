package config

import (
	"fmt"
	"time"
)

// WithDomain sets the domain prepended to relative asset paths
func WithDomain(domain string) Option {
	return func(c *Config) error {
		if domain == "" {
			return fmt.Errorf("domain cannot be empty")
		}
		c.Domain = domain
		return nil
	}
}

// WithPrefix sets the string prepended to every rendered tag line
func WithPrefix(prefix string) Option {
	return func(c *Config) error {
		c.Prefix = prefix
		return nil
	}
}

// WithSecure toggles https preference for generated URLs
func WithSecure(secure bool) Option {
	return func(c *Config) error {
		c.Secure = secure
		return nil
	}
}

// WithFallback sets the classification fallback for unrecognized paths
func WithFallback(fallback string) Option {
	return func(c *Config) error {
		switch fallback {
		case "css", "less", "js", "none":
		default:
			return fmt.Errorf("fallback must be 'css', 'less', 'js' or 'none', got: %s", fallback)
		}
		c.Fallback = fallback
		return nil
	}
}

// WithEnvironment pins the environment label (skipping the resolver hook)
func WithEnvironment(env string) Option {
	return func(c *Config) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithShorthandReady selects the short DOM-ready wrapper for inline scripts
func WithShorthandReady(enabled bool) Option {
	return func(c *Config) error {
		c.ShorthandReady = enabled
		return nil
	}
}

// WithManifest sets the source path of the cache-buster manifest
func WithManifest(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return fmt.Errorf("manifest path cannot be empty")
		}
		c.Manifest = path
		return nil
	}
}

// WithVersionsCache enables caching of wildcard version lookups.
// An empty keyPrefix keeps the default.
func WithVersionsCache(ttl time.Duration, keyPrefix string) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return fmt.Errorf("versions cache TTL cannot be negative, got: %s", ttl)
		}
		c.VersionsCache = true
		c.VersionsTTL = ttl
		if keyPrefix != "" {
			c.VersionsKeyPrefix = keyPrefix
		}
		return nil
	}
}

// WithMemorySource configures an in-memory asset source (for testing)
func WithMemorySource() Option {
	return func(c *Config) error {
		c.Source = SourceConfig{
			Type:   "memory",
			Config: map[string]interface{}{},
		}
		return nil
	}
}

// WithFilesystemSource configures a filesystem asset source
func WithFilesystemSource(baseDir string) Option {
	return func(c *Config) error {
		if baseDir == "" {
			return fmt.Errorf("filesystem base directory cannot be empty")
		}
		c.Source = SourceConfig{
			Type: "fs",
			Config: map[string]interface{}{
				"base_dir": baseDir,
			},
		}
		return nil
	}
}

// WithS3Source configures an S3 asset source
func WithS3Source(bucket, region string) Option {
	return func(c *Config) error {
		if bucket == "" {
			return fmt.Errorf("S3 bucket cannot be empty")
		}
		if region == "" {
			region = "us-east-1" // Default region
		}
		c.Source = SourceConfig{
			Type: "s3",
			Config: map[string]interface{}{
				"bucket": bucket,
				"region": region,
			},
		}
		return nil
	}
}

// WithS3Credentials sets AWS credentials for the S3 source
func WithS3Credentials(accessKeyID, secretAccessKey string) Option {
	return func(c *Config) error {
		if c.Source.Type != "s3" {
			// Source doesn't exist yet, create it with minimal config
			c.Source = SourceConfig{
				Type:   "s3",
				Config: map[string]interface{}{},
			}
		}
		c.Source.Config["access_key_id"] = accessKeyID
		c.Source.Config["secret_access_key"] = secretAccessKey
		return nil
	}
}

// WithS3Endpoint sets a custom S3 endpoint (for MinIO, LocalStack, etc.)
func WithS3Endpoint(endpoint string, usePathStyle bool) Option {
	return func(c *Config) error {
		if c.Source.Type != "s3" {
			// Source doesn't exist yet, create it with minimal config
			c.Source = SourceConfig{
				Type:   "s3",
				Config: map[string]interface{}{},
			}
		}
		c.Source.Config["endpoint"] = endpoint
		c.Source.Config["use_path_style"] = usePathStyle
		return nil
	}
}

// WithS3KeyPrefix scopes the S3 source under a key prefix
func WithS3KeyPrefix(prefix string) Option {
	return func(c *Config) error {
		if c.Source.Type != "s3" {
			// Source doesn't exist yet, create it with minimal config
			c.Source = SourceConfig{
				Type:   "s3",
				Config: map[string]interface{}{},
			}
		}
		c.Source.Config["key_prefix"] = prefix
		return nil
	}
}

// WithDefaults is a convenience option that resets everything back to library defaults
func WithDefaults() Option {
	return func(c *Config) error {
		*c = defaults()
		return nil
	}
}
