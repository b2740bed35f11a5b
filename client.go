package nats

import (
	"context"
	"net"
	"time"

	"github.com/embedq/nats/protocol"
)

// Message is a single delivery. See protocol.Message for the borrowing
// contract: all fields are views that die when the callback returns.
type Message = protocol.Message

// MessageHandler is invoked exactly once per decoded MSG frame. An error
// aborts processing of the rest of the read event that carried the frame.
type MessageHandler func(c *Client, msg *Message) error

// AuthHandler supplies credentials when the server demands authentication.
// It must write the username into user, the password into pass, and return
// both lengths. The buffers are fixed capacity; the JSON-escaped form of
// each credential must also fit.
type AuthHandler func(c *Client, user, pass []byte) (userLen, passLen int, err error)

// Config configures a Client. The zero value is usable for an anonymous
// connection that ignores inbound messages.
type Config struct {
	// Name selects the seed server: clients with the same name stick to the
	// same address. Also reported in logs by callers; unused on the wire.
	Name string

	// Transport carries the bytes. Nil selects a TCPTransport.
	Transport Transport

	// ConnectTimeout bounds dialing when the default transport is used.
	ConnectTimeout time.Duration

	// OnMessage receives inbound deliveries. Nil drops them.
	OnMessage MessageHandler

	// OnAuthRequired supplies credentials. If nil and the server demands
	// authentication, the INFO line fails with ErrAuthRequired.
	OnAuthRequired AuthHandler

	// OnDisconnect, if set, is told when the transport reports the
	// connection gone. The error is the transport's own (io.EOF on orderly
	// shutdown).
	OnDisconnect func(c *Client, err error)

	// DialBreaker, if set, guards connect attempts per server address.
	// See NewDialBreakerFactory.
	DialBreaker DialBreaker
}

// Client is a single-connection NATS client. It owns exactly one transport
// and one line reassembler. A Client does not synchronize concurrent
// outbound calls; applications driving it from several goroutines must
// serialize access themselves or use ClientPool.
type Client struct {
	cfg       Config
	transport Transport
	reader    *protocol.Reader
	connected bool
}

var _ protocol.Handler = (*Client)(nil)

// NewClient returns an unconnected client.
func NewClient(cfg Config) *Client {
	c := &Client{cfg: cfg, transport: cfg.Transport}
	if c.transport == nil {
		c.transport = NewTCPTransport(cfg.ConnectTimeout)
	}
	c.reader = protocol.NewReader(c)
	return c
}

// Connect selects a seed server and establishes the connection, registering
// the line reassembler as the transport's receive callback.
func (c *Client) Connect(ctx context.Context, servers Servers) error {
	addr, err := SelectServer(c.cfg.Name, servers.List())
	if err != nil {
		return err
	}
	return c.ConnectAddr(ctx, addr)
}

// ConnectAddr connects to one explicit address.
func (c *Client) ConnectAddr(ctx context.Context, addr string) error {
	c.transport.SetReceiver(c.receive)

	dial := func() error { return c.transport.Connect(ctx, addr) }
	if c.cfg.DialBreaker != nil {
		err := c.cfg.DialBreaker.Execute(addr, dial)
		if err != nil {
			return err
		}
	} else if err := dial(); err != nil {
		return err
	}

	c.connected = true
	return nil
}

// IsConnected reports whether the transport was established and has not
// been closed or dropped.
func (c *Client) IsConnected() bool {
	return c.connected
}

// Close releases the transport. In-flight reassembly state is discarded; no
// partial-line recovery is attempted across a disconnect.
func (c *Client) Close() error {
	c.connected = false
	return c.transport.Close()
}

// receive is the transport's read-event callback. Malformed inbound lines
// abort the rest of their event and are otherwise dropped: they never tear
// the connection down.
func (c *Client) receive(frags net.Buffers, err error) {
	if err != nil || frags == nil {
		c.connected = false
		if c.cfg.OnDisconnect != nil {
			c.cfg.OnDisconnect(c, err)
		}
		return
	}
	_ = c.reader.Feed(frags...)
}

// Subscribe expresses interest in subject under the given sid. An empty
// queueGroup subscribes individually; otherwise delivery is load-balanced
// among the group's members.
func (c *Client) Subscribe(subject, queueGroup, sid string) error {
	if !protocol.IsValidSubject(subject) {
		return ErrInvalidSubject
	}
	if !protocol.IsValidSID(sid) {
		return ErrInvalidSID
	}

	var group []byte
	if queueGroup != "" {
		group = []byte(queueGroup)
	}
	return c.transport.SendVector(protocol.SubFrame([]byte(subject), group, []byte(sid)))
}

// Unsubscribe removes interest for sid. A maxMsgs of zero unsubscribes
// immediately; a positive value lets that many more messages through first.
func (c *Client) Unsubscribe(sid string, maxMsgs uint64) error {
	if !protocol.IsValidSID(sid) {
		return ErrInvalidSID
	}

	frame, err := protocol.UnsubFrame([]byte(sid), maxMsgs)
	if err != nil {
		return err
	}
	return c.transport.SendVector(frame)
}

// Publish sends payload to subject. replyTo may be empty. The payload bytes
// ride the frame as their own fragment and are not copied.
func (c *Client) Publish(subject, replyTo string, payload []byte) error {
	if !protocol.IsValidSubject(subject) {
		return ErrInvalidSubject
	}

	var reply []byte
	if replyTo != "" {
		reply = []byte(replyTo)
	}
	frame, err := protocol.PubFrame([]byte(subject), reply, payload)
	if err != nil {
		return err
	}
	return c.transport.SendVector(frame)
}

// Info applies the INFO policy: refuse TLS-only servers, answer an auth
// challenge with an escaped CONNECT frame, otherwise do nothing.
func (c *Client) Info(info *protocol.ServerInfo) error {
	if info.SSLRequired {
		return ErrTLSRequired
	}
	if !info.AuthRequired {
		return nil
	}
	if c.cfg.OnAuthRequired == nil {
		return ErrAuthRequired
	}

	var user [protocol.MaxUserLen]byte
	var pass [protocol.MaxPassLen]byte

	userLen, passLen, err := c.cfg.OnAuthRequired(c, user[:], pass[:])
	if err != nil {
		return err
	}

	userLen, err = protocol.EscapeJSON(user[:], userLen)
	if err != nil {
		return err
	}
	passLen, err = protocol.EscapeJSON(pass[:], passLen)
	if err != nil {
		return err
	}

	return c.transport.SendVector(protocol.ConnectFrame(user[:userLen], pass[:passLen]))
}

// Msg forwards a delivery to the application callback.
func (c *Client) Msg(msg *Message) error {
	if c.cfg.OnMessage == nil {
		return nil
	}
	return c.cfg.OnMessage(c, msg)
}

// Ping answers the server's keepalive.
func (c *Client) Ping() error {
	return c.transport.SendVector(protocol.PongFrame())
}

// OK and ServerErr are accepted and ignored: correlating them with the
// command that triggered them would require tracking outbound history.
func (c *Client) OK(args []byte) error { return nil }

func (c *Client) ServerErr(args []byte) error { return nil }
