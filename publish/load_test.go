package publish

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const referenceBlogID = int64(6425054342484936402)

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadVariantWithEmbedImages(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("testdata", "publish_embed.yaml"), WithoutEnv())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Service != "blogger" {
		t.Fatalf("expected service blogger, got %q", cfg.Service)
	}
	if cfg.ServiceOptions.Blog != referenceBlogID {
		t.Fatalf("expected blog %d, got %d", referenceBlogID, cfg.ServiceOptions.Blog)
	}

	handler, ok := cfg.Markdown()
	if !ok {
		t.Fatalf("expected Markdown handler")
	}

	enabled, set := handler.Options.EmbedImagesEnabled()
	if !set || !enabled {
		t.Fatalf("expected embed_images set to true, got enabled=%v set=%v", enabled, set)
	}

	want := []string{"codehilite", "footnotes", "tables", "toc"}
	if !slices.Equal(handler.Options.Config.Extensions, want) {
		t.Fatalf("expected extensions %v, got %v", want, handler.Options.Config.Extensions)
	}

	value, ok := handler.Options.Config.Setting("codehilite", "noclasses")
	if !ok || value != "True" {
		t.Fatalf("expected codehilite noclasses=True, got %q (ok=%v)", value, ok)
	}
}

func TestLoadVariantWithoutEmbedImages(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("testdata", "publish.yaml"), WithoutEnv())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	handler, ok := cfg.Markdown()
	if !ok {
		t.Fatalf("expected Markdown handler")
	}

	if handler.Options.EmbedImages != nil {
		t.Fatalf("expected embed_images to be absent, got %v", *handler.Options.EmbedImages)
	}
	if _, set := handler.Options.EmbedImagesEnabled(); set {
		t.Fatalf("expected embed_images to be reported as unset")
	}
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("testdata", "publish.json"), WithoutEnv())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.ServiceOptions.Blog != referenceBlogID {
		t.Fatalf("expected blog %d, got %d", referenceBlogID, cfg.ServiceOptions.Blog)
	}

	handler, ok := cfg.Markdown()
	if !ok {
		t.Fatalf("expected Markdown handler")
	}
	if enabled, set := handler.Options.EmbedImagesEnabled(); !set || !enabled {
		t.Fatalf("expected embed_images true, got enabled=%v set=%v", enabled, set)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvService, "wordpress")
	t.Setenv(EnvBlog, "42")

	cfg, err := Load(filepath.Join("testdata", "publish.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Service != "wordpress" {
		t.Fatalf("expected overridden service, got %q", cfg.Service)
	}
	if cfg.ServiceOptions.Blog != 42 {
		t.Fatalf("expected overridden blog, got %d", cfg.ServiceOptions.Blog)
	}
}

func TestLoadEnvOverridesRejectInvalidBlog(t *testing.T) {
	t.Setenv(EnvService, "")
	t.Setenv(EnvBlog, "not-a-number")

	if _, err := Load(filepath.Join("testdata", "publish.yaml")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMissingService(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "missing_service.yaml", `
handlers:
  Markdown:
    options:
      config:
        extensions: [tables]
`)

	_, err := Load(path, WithoutEnv())
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "service" {
		t.Fatalf("expected validation error on service field, got %v", err)
	}
}

func TestLoadMissingHandlers(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "missing_handlers.yaml", `
service: blogger
service_options:
  blog: 1
`)

	if _, err := Load(path, WithoutEnv()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMistypedDocument(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "mistyped.yaml", `
service: blogger
service_options: [not, a, mapping]
handlers: {}
`)

	if _, err := Load(path, WithoutEnv()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join("testdata", "publish.toml"), WithoutEnv()); err == nil {
		t.Fatalf("expected error for unsupported file extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), WithoutEnv()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() Config { return Default() }

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty service",
			mutate: func(c *Config) { c.Service = "  " },
		},
		{
			name:   "no handlers",
			mutate: func(c *Config) { c.Handlers = nil },
		},
		{
			name:   "blogger without blog id",
			mutate: func(c *Config) { c.ServiceOptions.Blog = 0 },
		},
		{
			name: "empty handler name",
			mutate: func(c *Config) {
				c.Handlers[""] = c.Handlers[HandlerMarkdown]
			},
		},
		{
			name: "duplicate extension",
			mutate: func(c *Config) {
				h := c.Handlers[HandlerMarkdown]
				h.Options.Config.Extensions = []string{"tables", "tables"}
				c.Handlers[HandlerMarkdown] = h
			},
		},
		{
			name: "empty extension name",
			mutate: func(c *Config) {
				h := c.Handlers[HandlerMarkdown]
				h.Options.Config.Extensions = []string{""}
				c.Handlers[HandlerMarkdown] = h
			},
		},
		{
			name: "empty setting name",
			mutate: func(c *Config) {
				h := c.Handlers[HandlerMarkdown]
				h.Options.Config.ExtensionConfigs = map[string][]Setting{
					"codehilite": {{Name: "", Value: "True"}},
				}
				c.Handlers[HandlerMarkdown] = h
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := base()
			tc.mutate(&cfg)
			if err := Validate(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		if err := Validate(Default()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-blogger service skips blog check", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.Service = "wordpress"
		cfg.ServiceOptions.Blog = 0
		if err := Validate(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
