package protocol

// Op identifies a server-to-client protocol operation.
type Op int

const (
	OpUnknown Op = iota
	OpInfo
	OpMsg
	OpPing
	OpOK
	OpErr
)

func (op Op) String() string {
	switch op {
	case OpInfo:
		return "INFO"
	case OpMsg:
		return "MSG"
	case OpPing:
		return "PING"
	case OpOK:
		return "+OK"
	case OpErr:
		return "-ERR"
	default:
		return "UNKNOWN"
	}
}

// LookupOp resolves the leading token of a control line. Matching is exact
// and case-sensitive.
func LookupOp(tok []byte) Op {
	switch string(tok) {
	case "INFO":
		return OpInfo
	case "MSG":
		return OpMsg
	case "PING":
		return OpPing
	case "+OK":
		return OpOK
	case "-ERR":
		return OpErr
	default:
		return OpUnknown
	}
}

// SplitLine splits a reassembled control line into its leading token and the
// remaining arguments. The token ends at the first space, tab or carriage
// return; the run of separators after it is consumed.
func SplitLine(line []byte) (tok, args []byte) {
	i := 0
	for i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != '\r' {
		i++
	}
	tok = line[:i]

	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return tok, line[i:]
}
