package protocol

import "errors"

var (
	// ErrBadInfo indicates an INFO payload that could not be decoded.
	ErrBadInfo = errors.New("nats: malformed INFO")

	// ErrBadMsg indicates a MSG control line that could not be tokenized,
	// or whose declared payload size cannot fit the line buffer.
	ErrBadMsg = errors.New("nats: malformed MSG")

	// ErrUnknownOp indicates a control line whose leading token matches no
	// known server operation.
	ErrUnknownOp = errors.New("nats: unknown protocol operation")

	// ErrBufferFull indicates a value that does not fit its fixed-capacity
	// buffer (numeric formatting, credential escaping).
	ErrBufferFull = errors.New("nats: buffer full")
)
