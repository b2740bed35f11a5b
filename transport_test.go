package nats

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedq/nats/internal/testutils"
)

// dialMock points a TCPTransport at a scripted connection.
func dialMock(tr *TCPTransport, conn net.Conn) {
	tr.dial = func(ctx context.Context, addr string) (net.Conn, error) {
		return conn, nil
	}
}

func TestTCPTransport_ReceivesEvents(t *testing.T) {
	conn := testutils.NewConnectionMock("PING\r\n")
	tr := NewTCPTransport(time.Second)
	dialMock(tr, conn)

	events := make(chan string, 1)
	tr.SetReceiver(func(frags net.Buffers, err error) {
		if err != nil {
			return
		}
		var got []byte
		for _, f := range frags {
			got = append(got, f...)
		}
		select {
		case events <- string(got):
		default:
		}
	})

	require.NoError(t, tr.Connect(context.Background(), "mock:4222"))
	defer tr.Close()

	select {
	case got := <-events:
		assert.Equal(t, "PING\r\n", got)
	case <-time.After(2 * time.Second):
		t.Fatal("no read event delivered")
	}
}

func TestTCPTransport_SendVector(t *testing.T) {
	conn := testutils.NewConnectionMock()
	tr := NewTCPTransport(time.Second)
	dialMock(tr, conn)
	tr.SetReceiver(func(net.Buffers, error) {})

	require.NoError(t, tr.Connect(context.Background(), "mock:4222"))
	defer tr.Close()

	err := tr.SendVector(net.Buffers{[]byte("PUB foo 2\r\n"), []byte("hi")})
	require.NoError(t, err)
	assert.Equal(t, "PUB foo 2\r\nhi", conn.Written())
}

func TestTCPTransport_SendBeforeConnect(t *testing.T) {
	tr := NewTCPTransport(time.Second)
	err := tr.SendVector(net.Buffers{[]byte("PING\r\n")})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestTCPTransport_SendAfterClose(t *testing.T) {
	conn := testutils.NewConnectionMock()
	tr := NewTCPTransport(time.Second)
	dialMock(tr, conn)
	tr.SetReceiver(func(net.Buffers, error) {})

	require.NoError(t, tr.Connect(context.Background(), "mock:4222"))
	require.NoError(t, tr.Close())

	err := tr.SendVector(net.Buffers{[]byte("PING\r\n")})
	assert.ErrorIs(t, err, ErrConnectionClosed)
}

func TestTCPTransport_DisconnectReported(t *testing.T) {
	conn := testutils.NewConnectionMock()
	tr := NewTCPTransport(time.Second)
	dialMock(tr, conn)

	var dropped = make(chan error, 1)
	tr.SetReceiver(func(frags net.Buffers, err error) {
		if frags == nil {
			select {
			case dropped <- err:
			default:
			}
		}
	})

	require.NoError(t, tr.Connect(context.Background(), "mock:4222"))
	conn.Close()

	select {
	case err := <-dropped:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("disconnect never reported")
	}
}

func TestTCPTransport_Loopback(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	served := make(chan struct{})
	go func() {
		defer close(served)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_, _ = conn.Write([]byte("INFO {\"server_id\":\"t\"}\r\n"))
	}()

	events := make(chan string, 4)
	tr := NewTCPTransport(time.Second)
	tr.SetReceiver(func(frags net.Buffers, err error) {
		if err != nil {
			return
		}
		var got []byte
		for _, f := range frags {
			got = append(got, f...)
		}
		events <- string(got)
	})

	require.NoError(t, tr.Connect(context.Background(), listener.Addr().String()))
	defer tr.Close()

	select {
	case got := <-events:
		assert.Contains(t, got, "INFO")
	case <-time.After(2 * time.Second):
		t.Fatal("no bytes received from loopback server")
	}
	<-served
}
