package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMsgArgs(t *testing.T) {
	args, err := parseMsgArgs([]byte("foo 1 2"))
	require.NoError(t, err)
	assert.Equal(t, "foo", string(args.Subject))
	assert.Equal(t, "1", string(args.SID))
	assert.Nil(t, args.ReplyTo)
	assert.Equal(t, 2, args.Size)
}

func TestParseMsgArgs_ReplyTo(t *testing.T) {
	args, err := parseMsgArgs([]byte("foo 1 bar 11"))
	require.NoError(t, err)
	assert.Equal(t, "foo", string(args.Subject))
	assert.Equal(t, "1", string(args.SID))
	assert.Equal(t, "bar", string(args.ReplyTo))
	assert.Equal(t, 11, args.Size)
}

func TestParseMsgArgs_DelimiterRuns(t *testing.T) {
	args, err := parseMsgArgs([]byte("foo \t 1\t\t2"))
	require.NoError(t, err)
	assert.Equal(t, "foo", string(args.Subject))
	assert.Equal(t, "1", string(args.SID))
	assert.Equal(t, 2, args.Size)
}

func TestParseMsgArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{"empty", ""},
		{"one token", "foo"},
		{"two tokens", "foo 1"},
		{"five tokens", "foo 1 bar 2 extra"},
		{"size not a number", "foo 1 xyz"},
		{"negative size", "foo 1 -2"},
		{"size overflow", "foo 1 99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMsgArgs([]byte(tt.args))
			assert.ErrorIs(t, err, ErrBadMsg)
		})
	}
}
