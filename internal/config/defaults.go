package config

const (
	defaultEndpoint      = "udp://127.0.0.1:12201"
	defaultCompression   = "gzip"
	defaultMaxChunkSize  = 1420
	defaultQueueCapacity = 1024
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Endpoint:      defaultEndpoint,
			Compression:   defaultCompression,
			MaxChunkSize:  defaultMaxChunkSize,
			QueueCapacity: defaultQueueCapacity,
		},
		Message: Message{
			IncludeScopes:           true,
			IncludeMessageTemplates: true,
		},
		Tracing: Tracing{
			IncludeTraceID: true,
			IncludeSpanID:  true,
		},
	}
}
