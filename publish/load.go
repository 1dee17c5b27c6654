package publish

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Environment variables recognised by the loader. They override the values
// read from the configuration file.
const (
	EnvService = "PUBLISH_SERVICE"
	EnvBlog    = "PUBLISH_BLOG"
)

// Option configures the behaviour of a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load diagnostics. The default is a
// no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithoutEnv disables environment variable overrides (primarily for tests).
func WithoutEnv() Option {
	return func(l *Loader) {
		l.env = false
	}
}

// Loader reads publish configuration files and applies environment
// overrides. Precedence: environment variables > file values.
type Loader struct {
	logger *zap.Logger
	env    bool
}

// NewLoader creates a Loader with the provided options applied.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: zap.NewNop(),
		env:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, overrides, and validates the configuration at path using a
// Loader built from opts.
func Load(path string, opts ...Option) (Config, error) {
	return NewLoader(opts...).Load(path)
}

// Load reads the configuration file at path, applies environment overrides,
// and validates the result. The returned Config is not retained by the
// Loader and is safe to treat as immutable.
func (l *Loader) Load(path string) (Config, error) {
	cfg, err := loadFromFile(path)
	if err != nil {
		return Config{}, err
	}

	if l.env {
		if err := applyEnvOverrides(&cfg); err != nil {
			return Config{}, err
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	l.warnUnusedConfigs(cfg)

	l.logger.Info("publish configuration loaded",
		zap.String("path", path),
		zap.String("service", cfg.Service),
		zap.Int64("blog", cfg.ServiceOptions.Blog),
		zap.Int("handlers", len(cfg.Handlers)),
	)

	return cfg, nil
}

// loadFromFile reads and decodes the configuration file, choosing the codec
// by file extension.
func loadFromFile(path string) (Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read file: %w", err)
	}

	return Unmarshal(data, format)
}

// applyEnvOverrides applies environment variable configuration.
func applyEnvOverrides(cfg *Config) error {
	if service := strings.TrimSpace(os.Getenv(EnvService)); service != "" {
		cfg.Service = service
	}

	if blog := strings.TrimSpace(os.Getenv(EnvBlog)); blog != "" {
		value, err := strconv.ParseInt(blog, 10, 64)
		if err != nil {
			return validationErrorf("service_options.blog", "%s must be an integer, got %q", EnvBlog, blog)
		}
		cfg.ServiceOptions.Blog = value
	}

	return nil
}

// Validate checks the configuration against the publish schema. Violations
// are reported as a *ValidationError matching ErrInvalidConfig.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Service) == "" {
		return validationErrorf("service", "required field is missing")
	}

	if len(cfg.Handlers) == 0 {
		return validationErrorf("handlers", "at least one handler is required")
	}

	if cfg.Service == ServiceBlogger && cfg.ServiceOptions.Blog <= 0 {
		return validationErrorf("service_options.blog", "blogger requires a positive blog identifier, got %d", cfg.ServiceOptions.Blog)
	}

	for name, handler := range cfg.Handlers {
		if strings.TrimSpace(name) == "" {
			return validationErrorf("handlers", "handler name must not be empty")
		}
		if err := validateRenderConfig(name, handler.Options.Config); err != nil {
			return err
		}
	}

	return nil
}

func validateRenderConfig(handler string, rc RenderConfig) error {
	field := fmt.Sprintf("handlers.%s.options.config.extensions", handler)

	seen := make(map[string]struct{}, len(rc.Extensions))
	for _, ext := range rc.Extensions {
		if strings.TrimSpace(ext) == "" {
			return validationErrorf(field, "extension name must not be empty")
		}
		if _, dup := seen[ext]; dup {
			return validationErrorf(field, "duplicate extension %q", ext)
		}
		seen[ext] = struct{}{}
	}

	for ext, settings := range rc.ExtensionConfigs {
		for _, s := range settings {
			if strings.TrimSpace(s.Name) == "" {
				return validationErrorf(
					fmt.Sprintf("handlers.%s.options.config.extension_configs.%s", handler, ext),
					"setting name must not be empty",
				)
			}
		}
	}

	return nil
}

// warnUnusedConfigs reports extension_configs entries whose extension is not
// enabled. The original tool ignores such entries, so this is not an error.
func (l *Loader) warnUnusedConfigs(cfg Config) {
	for name, handler := range cfg.Handlers {
		rc := handler.Options.Config
		for ext := range rc.ExtensionConfigs {
			if !rc.HasExtension(ext) {
				l.logger.Warn("extension config for disabled extension",
					zap.String("handler", name),
					zap.String("extension", ext),
				)
			}
		}
	}
}
