package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"grayline/internal/gelf"
)

//go:embed sample_config.toml
var sampleConfig string

// Output contains configuration for the wire transport.
type Output struct {
	// Endpoint is the collector address as scheme://host:port, where the
	// scheme selects the sender (udp or tcp).
	Endpoint string `toml:"endpoint"`
	// Compression selects the UDP payload codec: gzip, zlib, or none.
	Compression string `toml:"compression"`
	// MaxChunkSize caps UDP datagram payloads before chunking applies.
	MaxChunkSize int `toml:"max_chunk_size"`
	// QueueCapacity bounds the in-memory delivery queue; records beyond it
	// are dropped rather than blocking the caller.
	QueueCapacity int `toml:"queue_capacity"`
}

// Message contains configuration for record assembly.
type Message struct {
	// LogSource names the emitting host or service. Empty means the
	// operating system hostname.
	LogSource string `toml:"log_source"`
	// OmitOptionalFields suppresses logger, exception, event id and name,
	// and message template fields on every record.
	OmitOptionalFields bool `toml:"omit_optional_fields"`
	// IncludeScopes enables merging of ambient scope fields.
	IncludeScopes bool `toml:"include_scopes"`
	// IncludeMessageTemplates records the raw template text alongside the
	// rendered message.
	IncludeMessageTemplates bool `toml:"include_message_templates"`
	// AdditionalFields are static fields stamped on every record.
	AdditionalFields map[string]any `toml:"additional_fields"`
}

// Tracing contains configuration for distributed-tracing enrichment.
type Tracing struct {
	IncludeTraceID bool `toml:"include_trace_id"`
	IncludeSpanID  bool `toml:"include_span_id"`
}

// Config encapsulates all configuration values for grayline.
type Config struct {
	Output  Output  `toml:"output"`
	Message Message `toml:"message"`
	Tracing Tracing `toml:"tracing"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/grayline/config.toml")
}

// Load locates, parses, and validates a configuration file. Missing files are
// not an error: defaults apply and the third return reports whether a file
// was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("grayline.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// AssemblerOptions converts the message and tracing sections into the
// assembler's options snapshot. Static fields apply in key order so repeated
// loads produce the same merge input.
func (c *Config) AssemblerOptions() gelf.Options {
	keys := make([]string, 0, len(c.Message.AdditionalFields))
	for k := range c.Message.AdditionalFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]gelf.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, gelf.Any(k, c.Message.AdditionalFields[k]))
	}

	return gelf.Options{
		Host:                    c.Message.LogSource,
		OmitOptionalFields:      c.Message.OmitOptionalFields,
		IncludeScopes:           c.Message.IncludeScopes,
		IncludeMessageTemplates: c.Message.IncludeMessageTemplates,
		IncludeTraceID:          c.Tracing.IncludeTraceID,
		IncludeSpanID:           c.Tracing.IncludeSpanID,
		AdditionalFields:        fields,
	}
}

// WriteSample writes the annotated sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
