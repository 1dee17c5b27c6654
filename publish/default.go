package publish

// Default returns the reference Blogger configuration: Markdown sources
// rendered with code highlighting, footnotes, tables, and a table of
// contents. Each call returns an independent copy.
func Default() Config {
	return Config{
		Service: ServiceBlogger,
		ServiceOptions: ServiceOptions{
			Blog: 6425054342484936402,
		},
		Handlers: map[string]Handler{
			HandlerMarkdown: {
				Options: HandlerOptions{
					Config: RenderConfig{
						Extensions: []string{"codehilite", "footnotes", "tables", "toc"},
						ExtensionConfigs: map[string][]Setting{
							"codehilite": {
								{Name: "noclasses", Value: "True"},
							},
						},
					},
				},
			},
		},
	}
}
