package protocol

import (
	"bytes"
	"fmt"
)

// Handler receives decoded server operations from a Reader. Arguments that
// are byte slices or Messages are views into the Reader's buffer and are
// invalid once the call returns.
type Handler interface {
	// Info is invoked with the decoded INFO announcement.
	Info(info *ServerInfo) error
	// Msg is invoked exactly once per fully reassembled MSG frame.
	Msg(msg *Message) error
	// Ping is invoked for a server PING and is expected to answer it.
	Ping() error
	// OK and ServerErr see +OK and -ERR lines. Acknowledgement tracking is
	// deliberately not implemented, so both are typically no-ops.
	OK(args []byte) error
	ServerErr(args []byte) error
}

type readState int

const (
	// stateLine accumulates control-line bytes up to the '\r' delimiter.
	stateLine readState = iota
	// stateLineLF discards the '\n' following a dispatched line.
	stateLineLF
	// statePayload accumulates the declared MSG payload bytes.
	statePayload
	// statePayloadCR and statePayloadLF discard the payload's trailing CRLF.
	statePayloadCR
	statePayloadLF
)

// Reader reassembles CRLF-delimited control lines out of arbitrarily
// fragmented read events and dispatches them to a Handler. A line, or a MSG
// payload, may span any number of fragments and read events. A MSG frame is
// held whole: the payload is accumulated after the header in the same
// buffer, so header plus payload must fit MaxControlLine.
//
// Reader is not safe for concurrent use; the transport contract guarantees
// sequential delivery of read events.
type Reader struct {
	handler Handler

	buf     [MaxControlLine]byte
	n       int // bytes accumulated in buf
	state   readState
	afterLF readState // state entered once the line's '\n' is discarded

	// pending MSG, set between header dispatch and payload completion
	args   msgArgs
	hdrLen int // header line length in buf; the payload follows it
	need   int // payload bytes still expected
}

// NewReader returns a Reader dispatching to h.
func NewReader(h Handler) *Reader {
	return &Reader{handler: h, afterLF: stateLine}
}

// Feed consumes one read event, given as a chain of fragments. Complete
// lines are dispatched as they are found; partial state is kept for the next
// event. A dispatch or callback error abandons the rest of the event and is
// returned; an oversized line abandons the event silently.
func (r *Reader) Feed(frags ...[]byte) error {
	for _, frag := range frags {
		for len(frag) > 0 {
			rest, abandon, err := r.consume(frag)
			if err != nil || abandon {
				return err
			}
			frag = rest
		}
	}
	return nil
}

// consume advances the state machine over one fragment and returns the
// unconsumed remainder.
func (r *Reader) consume(frag []byte) (rest []byte, abandon bool, err error) {
	switch r.state {
	case stateLine:
		end := bytes.IndexByte(frag, '\r')
		take := frag
		if end >= 0 {
			take = frag[:end]
		}
		if r.n+len(take) > len(r.buf) {
			// Line too long: the rest of the event is dropped, with no
			// error surfaced to the application.
			r.reset()
			return nil, true, nil
		}
		copy(r.buf[r.n:], take)
		r.n += len(take)
		if end < 0 {
			return nil, false, nil
		}
		if err := r.dispatch(); err != nil {
			r.reset()
			return nil, false, err
		}
		r.state = stateLineLF
		return frag[end+1:], false, nil

	case stateLineLF:
		// The byte after '\r' is expected to be '\n'; consumed, discarded.
		r.state = r.afterLF
		r.afterLF = stateLine
		return frag[1:], false, nil

	case statePayload:
		take := len(frag)
		if take > r.need {
			take = r.need
		}
		copy(r.buf[r.hdrLen+r.args.Size-r.need:], frag[:take])
		r.need -= take
		if r.need > 0 {
			return frag[take:], false, nil
		}
		err := r.deliver()
		r.reset()
		if err != nil {
			// The rest of the event, trailing CRLF included, is dropped.
			r.state = stateLine
			return nil, false, err
		}
		r.state = statePayloadCR
		return frag[take:], false, nil

	case statePayloadCR:
		r.state = statePayloadLF
		return frag[1:], false, nil

	default: // statePayloadLF
		r.state = stateLine
		return frag[1:], false, nil
	}
}

// dispatch resolves and handles the line accumulated in buf. For MSG it only
// parses the header; delivery happens once the payload is complete.
func (r *Reader) dispatch() error {
	line := r.buf[:r.n]
	tok, args := SplitLine(line)

	switch op := LookupOp(tok); op {
	case OpInfo:
		info, err := ParseInfo(args)
		if err != nil {
			return err
		}
		return r.finish(r.handler.Info(info))

	case OpMsg:
		parsed, err := parseMsgArgs(args)
		if err != nil {
			return err
		}
		if r.n+parsed.Size > len(r.buf) {
			// Declared size cannot fit after the header: framing desync.
			return fmt.Errorf("%w: payload size %d exceeds buffer", ErrBadMsg, parsed.Size)
		}
		r.args = parsed
		r.hdrLen = r.n
		r.need = parsed.Size
		r.afterLF = statePayload
		return nil

	case OpPing:
		return r.finish(r.handler.Ping())

	case OpOK:
		return r.finish(r.handler.OK(args))

	case OpErr:
		return r.finish(r.handler.ServerErr(args))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, tok)
	}
}

// finish resets the line buffer after a handler ran, regardless of outcome.
func (r *Reader) finish(err error) error {
	r.n = 0
	return err
}

// deliver invokes the message callback with views into buf. The views are
// dead as soon as the callback returns.
func (r *Reader) deliver() error {
	msg := Message{
		Subject: r.args.Subject,
		SID:     r.args.SID,
		ReplyTo: r.args.ReplyTo,
		Payload: r.buf[r.hdrLen : r.hdrLen+r.args.Size],
	}
	return r.handler.Msg(&msg)
}

func (r *Reader) reset() {
	r.n = 0
	r.hdrLen = 0
	r.need = 0
	r.args = msgArgs{}
	r.afterLF = stateLine
}
