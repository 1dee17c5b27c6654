package publish

// HandlerMarkdown is the handler name used for Markdown sources.
const HandlerMarkdown = "Markdown"

// ServiceBlogger identifies the Blogger publishing service.
const ServiceBlogger = "blogger"

// Config is the top-level publish configuration record. It names the
// destination service, carries the service-specific options, and maps each
// content format to its handler options.
type Config struct {
	Service        string             `yaml:"service" json:"service"`
	ServiceOptions ServiceOptions     `yaml:"service_options" json:"service_options"`
	Handlers       map[string]Handler `yaml:"handlers" json:"handlers"`
}

// ServiceOptions holds the service-specific parameters. Blog is the numeric
// identifier of the destination blog; observed Blogger identifiers exceed
// 32 bits.
type ServiceOptions struct {
	Blog int64 `yaml:"blog" json:"blog"`
}

// Handler wraps the options record of a single content-format handler.
type Handler struct {
	Options HandlerOptions `yaml:"options" json:"options"`
}

// HandlerOptions configures one handler. EmbedImages is optional: a nil
// pointer means the field was absent from the source file, which consumers
// must treat differently from an explicit false.
type HandlerOptions struct {
	EmbedImages *bool        `yaml:"embed_images,omitempty" json:"embed_images,omitempty"`
	Config      RenderConfig `yaml:"config" json:"config"`
}

// RenderConfig lists the enabled rendering extensions and their settings.
type RenderConfig struct {
	Extensions       []string             `yaml:"extensions" json:"extensions"`
	ExtensionConfigs map[string][]Setting `yaml:"extension_configs,omitempty" json:"extension_configs,omitempty"`
}

// Handler returns the handler registered under name.
func (c Config) Handler(name string) (Handler, bool) {
	h, ok := c.Handlers[name]
	return h, ok
}

// Markdown returns the Markdown handler, if configured.
func (c Config) Markdown() (Handler, bool) {
	return c.Handler(HandlerMarkdown)
}

// EmbedImagesEnabled reports the embed_images flag. The second return value
// is false when the field was absent from the configuration.
func (o HandlerOptions) EmbedImagesEnabled() (enabled, set bool) {
	if o.EmbedImages == nil {
		return false, false
	}
	return *o.EmbedImages, true
}

// HasExtension reports whether name is listed in the enabled extensions.
func (r RenderConfig) HasExtension(name string) bool {
	for _, ext := range r.Extensions {
		if ext == name {
			return true
		}
	}
	return false
}

// Setting returns the value configured for the given extension setting.
func (r RenderConfig) Setting(extension, name string) (string, bool) {
	for _, s := range r.ExtensionConfigs[extension] {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// Clone returns a deep copy of the configuration. Callers that hand the
// record across package boundaries use it to preserve immutability.
func (c Config) Clone() Config {
	out := c
	if c.Handlers != nil {
		out.Handlers = make(map[string]Handler, len(c.Handlers))
		for name, h := range c.Handlers {
			out.Handlers[name] = h.clone()
		}
	}
	return out
}

func (h Handler) clone() Handler {
	out := h
	if h.Options.EmbedImages != nil {
		embed := *h.Options.EmbedImages
		out.Options.EmbedImages = &embed
	}
	out.Options.Config = h.Options.Config.clone()
	return out
}

func (r RenderConfig) clone() RenderConfig {
	out := r
	if r.Extensions != nil {
		out.Extensions = make([]string, len(r.Extensions))
		copy(out.Extensions, r.Extensions)
	}
	if r.ExtensionConfigs != nil {
		out.ExtensionConfigs = make(map[string][]Setting, len(r.ExtensionConfigs))
		for ext, settings := range r.ExtensionConfigs {
			copied := make([]Setting, len(settings))
			copy(copied, settings)
			out.ExtensionConfigs[ext] = copied
		}
	}
	return out
}
