package nats

import (
	"context"
	"net"
)

// transportMock implements Transport in memory: outbound vectors are
// flattened into sent, inbound events are pushed through Deliver.
type transportMock struct {
	recv      ReceiveFunc
	sent      []string
	connected bool
	closed    bool
	dialErr   error
}

var _ Transport = (*transportMock)(nil)

func (m *transportMock) Connect(ctx context.Context, addr string) error {
	if m.dialErr != nil {
		return m.dialErr
	}
	m.connected = true
	return nil
}

func (m *transportMock) SendVector(frags net.Buffers) error {
	if m.closed {
		return ErrConnectionClosed
	}
	var out []byte
	for _, f := range frags {
		out = append(out, f...)
	}
	m.sent = append(m.sent, string(out))
	return nil
}

func (m *transportMock) SetReceiver(fn ReceiveFunc) {
	m.recv = fn
}

func (m *transportMock) Close() error {
	m.closed = true
	return nil
}

// Deliver simulates one inbound read event made of the given fragments.
func (m *transportMock) Deliver(frags ...string) {
	bufs := make(net.Buffers, len(frags))
	for i, f := range frags {
		bufs[i] = []byte(f)
	}
	m.recv(bufs, nil)
}

// Drop simulates the transport reporting the connection gone.
func (m *transportMock) Drop(err error) {
	m.recv(nil, err)
}

// newTestClient wires a client to a fresh mock transport and connects it.
func newTestClient(cfg Config) (*Client, *transportMock) {
	mock := &transportMock{}
	cfg.Transport = mock
	c := NewClient(cfg)
	_ = c.ConnectAddr(context.Background(), "mock:4222")
	return c, mock
}
