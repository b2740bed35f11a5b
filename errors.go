package nats

import "errors"

var (
	// ErrInvalidSubject indicates a subject that fails wire-protocol
	// validation. Nothing is written to the transport.
	ErrInvalidSubject = errors.New("nats: invalid subject")

	// ErrInvalidSID indicates a malformed subscription identifier.
	ErrInvalidSID = errors.New("nats: invalid sid")

	// ErrTLSRequired is returned when the server demands a TLS transport,
	// which this client does not provide.
	ErrTLSRequired = errors.New("nats: server requires TLS")

	// ErrAuthRequired is returned when the server demands authentication
	// but no auth callback is registered.
	ErrAuthRequired = errors.New("nats: server requires authentication")

	// ErrConnectionClosed is returned for operations on a closed transport.
	ErrConnectionClosed = errors.New("nats: connection closed")

	// ErrNotConnected is returned for operations before Connect.
	ErrNotConnected = errors.New("nats: not connected")

	// ErrNoServers is returned when the seed server list is empty.
	ErrNoServers = errors.New("nats: no servers available")

	// ErrPoolClosed is returned by ClientPool operations after Close.
	ErrPoolClosed = errors.New("nats: pool closed")
)
