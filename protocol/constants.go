package protocol

// CRLF terminates every control line on the wire.
const CRLF = "\r\n"

const (
	// MaxControlLine is the capacity of the line reassembly buffer. A MSG
	// frame (header plus payload) must fit in it entirely.
	MaxControlLine = 256

	// MaxUserLen and MaxPassLen size the credential buffers handed to the
	// auth callback. The JSON-escaped form must also fit.
	MaxUserLen = 32
	MaxPassLen = 64
)

// maxUintDigits bounds the scratch buffer used to format payload sizes and
// UNSUB message counts. A uint64 needs at most 20 decimal digits.
const maxUintDigits = 20
