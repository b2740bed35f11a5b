package testutils

import (
	"bytes"
	"net"
	"strings"
	"time"
)

// ConnectionMock is a mock net.Conn scripted with server lines. Reads drain
// the scripted bytes and then block on Read until Close, like an idle
// socket; writes are captured for inspection.
type ConnectionMock struct {
	readBuf  *bytes.Buffer
	writeBuf *bytes.Buffer
	closed   chan struct{}
}

// NewConnectionMock creates a mock connection that will serve the given
// server lines, concatenated, to the reader.
func NewConnectionMock(serverLines ...string) *ConnectionMock {
	return &ConnectionMock{
		readBuf:  bytes.NewBufferString(strings.Join(serverLines, "")),
		writeBuf: &bytes.Buffer{},
		closed:   make(chan struct{}),
	}
}

func (m *ConnectionMock) Read(b []byte) (int, error) {
	if m.readBuf.Len() > 0 {
		return m.readBuf.Read(b)
	}
	<-m.closed
	return 0, net.ErrClosed
}

func (m *ConnectionMock) Write(b []byte) (int, error) {
	return m.writeBuf.Write(b)
}

func (m *ConnectionMock) Close() error {
	select {
	case <-m.closed:
	default:
		close(m.closed)
	}
	return nil
}

func (m *ConnectionMock) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}

func (m *ConnectionMock) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4222}
}

func (m *ConnectionMock) SetDeadline(t time.Time) error      { return nil }
func (m *ConnectionMock) SetReadDeadline(t time.Time) error  { return nil }
func (m *ConnectionMock) SetWriteDeadline(t time.Time) error { return nil }

// Written returns everything the client sent so far.
func (m *ConnectionMock) Written() string {
	return m.writeBuf.String()
}
