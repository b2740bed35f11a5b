// Package protocol implements the NATS client wire protocol: subject and
// sid validation, outbound frame construction, control-line reassembly and
// inbound operation dispatch.
//
// This package is pure: it never touches a socket. Outbound frames are
// produced as net.Buffers fragment vectors for the transport to gather-write,
// and inbound bytes are pushed into a Reader which dispatches decoded
// operations to a Handler.
//
// # Reassembly
//
// Reader consumes read events as chains of arbitrarily fragmented buffers.
// Control lines are accumulated into a fixed 256-byte buffer and dispatched
// as they complete; a MSG frame's payload is accumulated after its header in
// the same buffer, so the whole frame must fit MaxControlLine.
//
//	r := protocol.NewReader(handler)
//	err := r.Feed(fragment1, fragment2)
//
// # Borrowed views
//
// Every slice handed to a Handler, including all Message fields, aliases the
// Reader's internal buffer. The views are valid only until the callback
// returns; copy anything that must be retained.
package protocol
