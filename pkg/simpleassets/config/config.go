package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tendant/simple-assets/pkg/simpleassets"
	fssource "github.com/tendant/simple-assets/pkg/simpleassets/source/fs"
	memorysource "github.com/tendant/simple-assets/pkg/simpleassets/source/memory"
	s3source "github.com/tendant/simple-assets/pkg/simpleassets/source/s3"
	"github.com/tendant/simple-assets/pkg/simpleassets/vcache"
)

// Option applies configuration to a Config instance.
type Option func(*Config) error

// Load constructs a Config by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*Config, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() Config {
	return Config{
		Domain:            "/",
		Fallback:          "none",
		VersionsTTL:       time.Hour,
		VersionsKeyPrefix: "assets:",
		Source: SourceConfig{
			Type:   "none",
			Config: map[string]interface{}{},
		},
	}
}

// Config represents build configuration for an asset registry
type Config struct {
	Domain         string
	Prefix         string
	Secure         bool
	Fallback       string // "css", "less", "js", "none"
	Environment    string // empty resolves through the registry's hook
	ShorthandReady bool

	// Manifest is the source path of the cache-buster manifest, loaded
	// by BuildRegistry after the registry is constructed.
	Manifest string

	// Wildcard version resolution
	VersionsCache     bool
	VersionsTTL       time.Duration
	VersionsKeyPrefix string

	// Source configuration
	Source SourceConfig
}

// SourceConfig represents configuration for an asset source
type SourceConfig struct {
	Type   string // "none", "memory", "fs", "s3"
	Config map[string]interface{}
}

// Validate validates the registry configuration
func (c *Config) Validate() error {
	switch c.Fallback {
	case "css", "less", "js", "none":
	default:
		return fmt.Errorf("fallback must be 'css', 'less', 'js' or 'none', got: %s", c.Fallback)
	}

	switch c.Source.Type {
	case "none", "memory":
	case "fs":
		if getString(c.Source.Config, "base_dir", "") == "" {
			return errors.New("base_dir is required for fs source")
		}
	case "s3":
		if getString(c.Source.Config, "bucket", "") == "" {
			return errors.New("bucket is required for s3 source")
		}
	default:
		return fmt.Errorf("unsupported source type: %s", c.Source.Type)
	}

	if c.VersionsTTL < 0 {
		return errors.New("versions cache TTL cannot be negative")
	}

	return nil
}

// BuildRegistry creates a Registry instance from the configuration
func (c *Config) BuildRegistry() (*simpleassets.Registry, error) {
	options := []simpleassets.Option{
		simpleassets.WithDomain(c.Domain),
		simpleassets.WithPrefix(c.Prefix),
		simpleassets.WithSecure(c.Secure),
		simpleassets.WithFallback(simpleassets.Kind(c.Fallback)),
		simpleassets.WithShorthandReady(c.ShorthandReady),
	}

	if c.Environment != "" {
		options = append(options, simpleassets.WithEnvironment(c.Environment))
	}

	src, err := c.buildSource()
	if err != nil {
		return nil, fmt.Errorf("failed to build source: %w", err)
	}
	if src != nil {
		options = append(options, simpleassets.WithSource(src))
	}

	if c.VersionsCache {
		options = append(options,
			simpleassets.WithVersionCache(vcache.NewMemory()),
			simpleassets.WithVersionTTL(c.VersionsTTL),
			simpleassets.WithVersionKeyPrefix(c.VersionsKeyPrefix),
		)
	}

	registry := simpleassets.New(options...)

	if c.Manifest != "" {
		registry.LoadManifest(context.Background(), c.Manifest)
	}

	return registry, nil
}

// buildSource creates a Source based on the configuration
func (c *Config) buildSource() (simpleassets.Source, error) {
	switch c.Source.Type {
	case "none", "":
		return nil, nil

	case "memory":
		return memorysource.New(), nil

	case "fs":
		return fssource.New(fssource.Config{
			BaseDir: getString(c.Source.Config, "base_dir", ""),
		})

	case "s3":
		return s3source.New(s3source.Config{
			Region:          getString(c.Source.Config, "region", "us-east-1"),
			Bucket:          getString(c.Source.Config, "bucket", ""),
			AccessKeyID:     getString(c.Source.Config, "access_key_id", ""),
			SecretAccessKey: getString(c.Source.Config, "secret_access_key", ""),
			Endpoint:        getString(c.Source.Config, "endpoint", ""),
			UsePathStyle:    getBool(c.Source.Config, "use_path_style", false),
			KeyPrefix:       getString(c.Source.Config, "key_prefix", ""),
		})

	default:
		return nil, fmt.Errorf("unsupported source type: %s", c.Source.Type)
	}
}

func getString(config map[string]interface{}, key string, defaultValue string) string {
	if value, exists := config[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBool(config map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := config[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
		if str, ok := value.(string); ok {
			if b, err := strconv.ParseBool(str); err == nil {
				return b
			}
		}
	}
	return defaultValue
}
