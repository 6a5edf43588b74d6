package transport

import (
	"context"
	"fmt"
	"net/url"

	"grayline/internal/gelf"
)

// Sender delivers assembled records to a collector. Delivery is best effort:
// a failed send reports its error and the record is gone; retry and buffering
// policy belongs to callers, not here.
type Sender interface {
	Send(ctx context.Context, msg *gelf.Message) error
	Close() error
}

// Compression selects the UDP payload codec.
type Compression string

const (
	CompressionGzip Compression = "gzip"
	CompressionZlib Compression = "zlib"
	CompressionNone Compression = "none"
)

// Options tunes sender construction.
type Options struct {
	// Compression applies to UDP payloads only.
	Compression Compression
	// MaxChunkSize caps UDP datagram size before chunking applies.
	MaxChunkSize int
}

// Dial builds the sender selected by the endpoint scheme
// (udp://host:port or tcp://host:port).
func Dial(endpoint string, opts Options) (Sender, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("transport: parse endpoint: %w", err)
	}
	switch u.Scheme {
	case "udp":
		return NewUDPSender(u.Host, opts)
	case "tcp":
		return NewTCPSender(u.Host)
	default:
		return nil, fmt.Errorf("transport: unsupported scheme %q", u.Scheme)
	}
}
