package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.Output.Endpoint = strings.TrimSpace(c.Output.Endpoint)
	if value, ok := os.LookupEnv("GRAYLINE_ENDPOINT"); ok && strings.TrimSpace(value) != "" {
		c.Output.Endpoint = strings.TrimSpace(value)
	}
	if c.Output.Endpoint == "" {
		c.Output.Endpoint = defaultEndpoint
	}

	c.Output.Compression = strings.ToLower(strings.TrimSpace(c.Output.Compression))
	if c.Output.Compression == "" {
		c.Output.Compression = defaultCompression
	}
	if c.Output.MaxChunkSize == 0 {
		c.Output.MaxChunkSize = defaultMaxChunkSize
	}
	if c.Output.QueueCapacity == 0 {
		c.Output.QueueCapacity = defaultQueueCapacity
	}

	c.Message.LogSource = strings.TrimSpace(c.Message.LogSource)
}
