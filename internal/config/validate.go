package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
)

// Additional field names must satisfy the GELF schema; "id" is reserved.
var fieldNamePattern = regexp.MustCompile(`^[\w.\-]+$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateMessage(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	u, err := url.Parse(c.Output.Endpoint)
	if err != nil {
		return fmt.Errorf("output.endpoint: %w", err)
	}
	switch u.Scheme {
	case "udp", "tcp":
	default:
		return fmt.Errorf("output.endpoint: unsupported scheme %q (want udp or tcp)", u.Scheme)
	}
	if _, _, err := net.SplitHostPort(u.Host); err != nil {
		return fmt.Errorf("output.endpoint: %w", err)
	}

	switch c.Output.Compression {
	case "gzip", "zlib", "none":
	default:
		return fmt.Errorf("output.compression: unsupported value %q (want gzip, zlib, or none)", c.Output.Compression)
	}

	if c.Output.MaxChunkSize < 512 || c.Output.MaxChunkSize > 65467 {
		return errors.New("output.max_chunk_size must be between 512 and 65467")
	}
	if c.Output.QueueCapacity < 1 {
		return errors.New("output.queue_capacity must be positive")
	}
	return nil
}

func (c *Config) validateMessage() error {
	for name := range c.Message.AdditionalFields {
		if name == "id" {
			return errors.New(`message.additional_fields: "id" is reserved by the GELF schema`)
		}
		if !fieldNamePattern.MatchString(name) {
			return fmt.Errorf("message.additional_fields: invalid field name %q", name)
		}
	}
	return nil
}
