package transport

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"grayline/internal/gelf"
)

// GELF chunked-datagram framing constants.
const (
	chunkMagic0 = 0x1e
	chunkMagic1 = 0x0f
	// chunkHeaderLen is magic (2) + message id (8) + sequence (1) + count (1).
	chunkHeaderLen = 12
	// maxChunks is fixed by the GELF datagram format; collectors drop longer trains.
	maxChunks = 128
)

// UDPSender ships records as GELF datagrams, compressing payloads and
// splitting any payload over the datagram cap into a chunk train.
type UDPSender struct {
	mu          sync.Mutex
	conn        net.Conn
	compression Compression
	maxChunk    int
}

// NewUDPSender connects a datagram sender to addr (host:port).
func NewUDPSender(addr string, opts Options) (*UDPSender, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial udp %s: %w", addr, err)
	}
	compression := opts.Compression
	if compression == "" {
		compression = CompressionGzip
	}
	maxChunk := opts.MaxChunkSize
	if maxChunk <= chunkHeaderLen {
		maxChunk = 1420
	}
	return &UDPSender{conn: conn, compression: compression, maxChunk: maxChunk}, nil
}

// Send encodes, compresses, and transmits one record.
func (s *UDPSender) Send(ctx context.Context, msg *gelf.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("transport: encode message: %w", err)
	}
	payload, err = s.compress(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("transport: set deadline: %w", err)
	}

	if len(payload) <= s.maxChunk {
		if _, err := s.conn.Write(payload); err != nil {
			return fmt.Errorf("transport: send datagram: %w", err)
		}
		return nil
	}
	return s.sendChunked(payload)
}

func (s *UDPSender) sendChunked(payload []byte) error {
	chunkData := s.maxChunk - chunkHeaderLen
	count := (len(payload) + chunkData - 1) / chunkData
	if count > maxChunks {
		return fmt.Errorf("transport: message needs %d chunks, limit is %d", count, maxChunks)
	}

	var id [8]byte
	if _, err := rand.Read(id[:]); err != nil {
		return fmt.Errorf("transport: chunk id: %w", err)
	}

	chunk := make([]byte, 0, s.maxChunk)
	for seq := 0; seq < count; seq++ {
		start := seq * chunkData
		end := start + chunkData
		if end > len(payload) {
			end = len(payload)
		}
		chunk = chunk[:0]
		chunk = append(chunk, chunkMagic0, chunkMagic1)
		chunk = append(chunk, id[:]...)
		chunk = append(chunk, byte(seq), byte(count))
		chunk = append(chunk, payload[start:end]...)
		if _, err := s.conn.Write(chunk); err != nil {
			return fmt.Errorf("transport: send chunk %d/%d: %w", seq+1, count, err)
		}
	}
	return nil
}

func (s *UDPSender) compress(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	switch s.compression {
	case CompressionNone:
		return payload, nil
	case CompressionGzip:
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			return nil, fmt.Errorf("transport: gzip: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("transport: gzip: %w", err)
		}
	case CompressionZlib:
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			return nil, fmt.Errorf("transport: zlib: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("transport: zlib: %w", err)
		}
	default:
		return nil, fmt.Errorf("transport: unsupported compression %q", s.compression)
	}
	return buf.Bytes(), nil
}

// Close releases the socket.
func (s *UDPSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}
