package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"grayline/internal/gelf"
)

// TCPSender ships records as null-terminated JSON frames. GELF over TCP is
// never compressed; the null byte is the frame delimiter and cannot appear
// inside a compressed stream safely.
type TCPSender struct {
	mu   sync.Mutex
	addr string
	conn net.Conn
}

// NewTCPSender connects a stream sender to addr (host:port). The initial
// connection is established eagerly so configuration errors surface at
// construction instead of on the first log call.
func NewTCPSender(addr string) (*TCPSender, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial tcp %s: %w", addr, err)
	}
	return &TCPSender{addr: addr, conn: conn}, nil
}

// Send transmits one record. A write failure drops the connection; the next
// send redials once. There is no retry of the failed record itself.
func (s *TCPSender) Send(ctx context.Context, msg *gelf.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("transport: encode message: %w", err)
	}
	frame := append(payload, 0x00)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		conn, err := net.Dial("tcp", s.addr)
		if err != nil {
			return fmt.Errorf("transport: redial tcp %s: %w", s.addr, err)
		}
		s.conn = conn
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("transport: set deadline: %w", err)
	}

	if _, err := s.conn.Write(frame); err != nil {
		s.conn.Close()
		s.conn = nil
		return fmt.Errorf("transport: send frame: %w", err)
	}
	return nil
}

// Close releases the connection.
func (s *TCPSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
