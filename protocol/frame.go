package protocol

import (
	"net"
	"strconv"
)

// Outbound frames are built as ordered fragment vectors over literal
// keywords and caller-owned argument slices, then handed to the transport
// for a single gather-write. Fragment contents are never copied here.
var (
	litSub     = []byte("SUB ")
	litUnsub   = []byte("UNSUB ")
	litPub     = []byte("PUB ")
	litSep     = []byte(" ")
	litCRLF    = []byte(CRLF)
	litPong    = []byte("PONG" + CRLF)
	litConnect = []byte(`CONNECT {"user":"`)
	litPass    = []byte(`","pass":"`)
	litConnEnd = []byte(`"}` + CRLF)
)

// SubFrame builds a SUB frame. queueGroup may be nil.
func SubFrame(subject, queueGroup, sid []byte) net.Buffers {
	if queueGroup != nil {
		return net.Buffers{litSub, subject, litSep, queueGroup, litSep, sid, litCRLF}
	}
	return net.Buffers{litSub, subject, litSep, sid, litCRLF}
}

// UnsubFrame builds an UNSUB frame. A maxMsgs of zero omits the count,
// requesting an immediate full unsubscribe.
func UnsubFrame(sid []byte, maxMsgs uint64) (net.Buffers, error) {
	if maxMsgs == 0 {
		return net.Buffers{litUnsub, sid, litCRLF}, nil
	}

	count, err := formatUint(make([]byte, 0, maxUintDigits), maxMsgs)
	if err != nil {
		return nil, err
	}
	return net.Buffers{litUnsub, sid, litSep, count, litCRLF}, nil
}

// PubFrame builds a PUB frame. replyTo may be nil. The payload bytes ride
// as their own fragment after the header line.
func PubFrame(subject, replyTo, payload []byte) (net.Buffers, error) {
	size, err := formatUint(make([]byte, 0, maxUintDigits), uint64(len(payload)))
	if err != nil {
		return nil, err
	}

	if replyTo != nil {
		return net.Buffers{litPub, subject, litSep, replyTo, litSep, size, litCRLF, payload}, nil
	}
	return net.Buffers{litPub, subject, litSep, size, litCRLF, payload}, nil
}

// ConnectFrame builds the CONNECT handshake frame. Both credentials must
// already be JSON-escaped (see EscapeJSON).
func ConnectFrame(user, pass []byte) net.Buffers {
	return net.Buffers{litConnect, user, litPass, pass, litConnEnd}
}

// PongFrame builds the reply to a server PING.
func PongFrame() net.Buffers {
	return net.Buffers{litPong}
}

// formatUint appends the decimal form of v to dst, failing with
// ErrBufferFull instead of growing past dst's fixed capacity.
func formatUint(dst []byte, v uint64) ([]byte, error) {
	out := strconv.AppendUint(dst, v, 10)
	if len(out) > cap(dst) {
		return nil, ErrBufferFull
	}
	return out, nil
}
