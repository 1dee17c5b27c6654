// Package publish defines the publish configuration schema consumed by the
// blog-publishing pipeline: the destination service, its service-specific
// options, and per-format handler options such as Markdown rendering
// extensions. It loads the configuration from YAML or JSON files with
// environment overrides, validates it at load time, and encodes it back for
// round-trip storage. The configuration is immutable after load.
package publish
