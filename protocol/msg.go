package protocol

import (
	"fmt"
	"strconv"
)

// Message is a single delivery decoded from a MSG frame. All byte slices are
// views into the reassembly buffer: they are valid only for the duration of
// the message callback and must be copied if retained.
type Message struct {
	Subject []byte
	SID     []byte
	ReplyTo []byte // nil when the frame carries no reply-to subject
	Payload []byte
}

// msgArgs holds the tokenized header of a MSG frame. Subject, SID and
// ReplyTo are views into the header bytes.
type msgArgs struct {
	Subject []byte
	SID     []byte
	ReplyTo []byte
	Size    int
}

// parseMsgArgs tokenizes the bytes following "MSG ". The header carries
// three tokens (subject, sid, size) or four when a reply-to subject is
// present. Runs of spaces and tabs separate tokens; a trailing carriage
// return, if still present, is ignored.
func parseMsgArgs(args []byte) (msgArgs, error) {
	var toks [5][]byte
	n := 0

	i := 0
	for i < len(args) && n < len(toks) {
		for i < len(args) && (args[i] == ' ' || args[i] == '\t') {
			i++
		}
		start := i
		for i < len(args) && args[i] != ' ' && args[i] != '\t' && args[i] != '\r' {
			i++
		}
		if i > start {
			toks[n] = args[start:i]
			n++
		}
		if i < len(args) && args[i] == '\r' {
			break
		}
	}

	var out msgArgs
	var sizeTok []byte
	switch n {
	case 3:
		out.Subject, out.SID = toks[0], toks[1]
		sizeTok = toks[2]
	case 4:
		out.Subject, out.SID, out.ReplyTo = toks[0], toks[1], toks[2]
		sizeTok = toks[3]
	default:
		return msgArgs{}, fmt.Errorf("%w: %d header tokens", ErrBadMsg, n)
	}

	size, err := strconv.ParseUint(string(sizeTok), 10, 31)
	if err != nil {
		return msgArgs{}, fmt.Errorf("%w: bad payload size %q", ErrBadMsg, sizeTok)
	}
	out.Size = int(size)

	return out, nil
}
