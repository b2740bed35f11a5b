package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOp(t *testing.T) {
	tests := []struct {
		tok  string
		want Op
	}{
		{"INFO", OpInfo},
		{"MSG", OpMsg},
		{"PING", OpPing},
		{"+OK", OpOK},
		{"-ERR", OpErr},
		{"info", OpUnknown}, // case-sensitive
		{"MS", OpUnknown},
		{"MSGX", OpUnknown},
		{"PONG", OpUnknown},
		{"", OpUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupOp([]byte(tt.tok)), "token %q", tt.tok)
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		tok  string
		args string
	}{
		{"keyword with args", "MSG foo 1 2", "MSG", "foo 1 2"},
		{"bare keyword", "PING", "PING", ""},
		{"tab separator", "MSG\tfoo", "MSG", "foo"},
		{"separator run", "MSG  \t foo", "MSG", "foo"},
		{"trailing cr", "PING\r", "PING", "\r"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, args := SplitLine([]byte(tt.line))
			assert.Equal(t, tt.tok, string(tok))
			assert.Equal(t, tt.args, string(args))
		})
	}
}
