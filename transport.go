package nats

import (
	"context"
	"net"
	"sync"
	"time"
)

// ReceiveFunc is invoked once per inbound read event with the chain of
// buffer fragments read from the wire. A nil chain with a non-nil error
// signals that the connection is gone. Invocations for one connection are
// sequential and never overlap.
type ReceiveFunc func(frags net.Buffers, err error)

// Transport moves raw bytes for a single NATS connection. The protocol core
// treats it as an external collaborator: it owns socket lifetime, buffering
// and any timeout policy.
type Transport interface {
	// Connect establishes the connection and starts delivering read events
	// to the receiver registered via SetReceiver.
	Connect(ctx context.Context, addr string) error

	// SendVector gathers the fragment vector into one outbound write and
	// submits it. It may block until the transport can take the data.
	SendVector(frags net.Buffers) error

	// SetReceiver registers the read-event callback. It must be called
	// before Connect.
	SetReceiver(fn ReceiveFunc)

	// Close tears the connection down. In-flight reassembly state held by
	// the receiver is simply discarded.
	Close() error
}

// readBufferSize is the per-read buffer for the TCP transport. Reads are
// delivered to the receiver as single-fragment events.
const readBufferSize = 4096

// TCPTransport is the default Transport over a plain TCP connection.
// SendVector uses writev-style gather writes (net.Buffers), so frame
// fragments reach the socket without an intermediate copy.
type TCPTransport struct {
	dialer net.Dialer

	// dial is swappable in tests; defaults to dialer.DialContext.
	dial func(ctx context.Context, addr string) (net.Conn, error)

	mu     sync.Mutex
	conn   net.Conn
	closed bool

	recv ReceiveFunc
}

var _ Transport = (*TCPTransport)(nil)

// NewTCPTransport returns a TCP transport dialing with the given timeout.
// A zero timeout leaves dialing unbounded (the context still applies).
func NewTCPTransport(dialTimeout time.Duration) *TCPTransport {
	return &TCPTransport{dialer: net.Dialer{Timeout: dialTimeout}}
}

func (t *TCPTransport) SetReceiver(fn ReceiveFunc) {
	t.recv = fn
}

func (t *TCPTransport) Connect(ctx context.Context, addr string) error {
	dial := t.dial
	if dial == nil {
		dial = func(ctx context.Context, addr string) (net.Conn, error) {
			return t.dialer.DialContext(ctx, "tcp", addr)
		}
	}

	conn, err := dial(ctx, addr)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.conn = conn
	t.closed = false
	t.mu.Unlock()

	go t.readLoop(conn)
	return nil
}

// readLoop reads until the connection dies, handing each read to the
// receiver. Running on a single goroutine guarantees the receiver is never
// invoked concurrently.
func (t *TCPTransport) readLoop(conn net.Conn) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 && t.recv != nil {
			t.recv(net.Buffers{buf[:n]}, nil)
		}
		if err != nil {
			t.markClosed()
			if t.recv != nil {
				t.recv(nil, err)
			}
			return
		}
	}
}

func (t *TCPTransport) SendVector(frags net.Buffers) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return ErrNotConnected
	}
	if t.closed {
		return ErrConnectionClosed
	}

	// WriteTo consumes the vector, gathering into as few syscalls as the
	// platform allows.
	if _, err := frags.WriteTo(t.conn); err != nil {
		t.closed = true
		return err
	}
	return nil
}

func (t *TCPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.conn == nil {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}

func (t *TCPTransport) markClosed() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}
