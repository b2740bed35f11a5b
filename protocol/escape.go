package protocol

const hexDigits = "0123456789abcdef"

// escapedLen returns the number of bytes c occupies inside a JSON string.
func escapedLen(c byte) int {
	switch c {
	case '"', '\\', '\b', '\f', '\n', '\r', '\t':
		return 2
	default:
		if c < 0x20 {
			return 6 // \u00XX
		}
		return 1
	}
}

// EscapeJSON rewrites buf[:n] in place as the body of a JSON string,
// escaping quotes, backslashes and control characters. It returns the
// escaped length, or ErrBufferFull if the result would not fit in buf.
//
// The rewrite is done backward over the same buffer so the input and output
// may share storage without an intermediate copy.
func EscapeJSON(buf []byte, n int) (int, error) {
	if n < 0 || n > len(buf) {
		return 0, ErrBufferFull
	}

	total := 0
	for i := 0; i < n; i++ {
		total += escapedLen(buf[i])
	}
	if total > len(buf) {
		return 0, ErrBufferFull
	}
	if total == n {
		return n, nil
	}

	w := total
	for i := n - 1; i >= 0; i-- {
		c := buf[i]
		switch l := escapedLen(c); l {
		case 1:
			w--
			buf[w] = c
		case 2:
			w -= 2
			buf[w] = '\\'
			buf[w+1] = shortEscape(c)
		default:
			w -= 6
			buf[w] = '\\'
			buf[w+1] = 'u'
			buf[w+2] = '0'
			buf[w+3] = '0'
			buf[w+4] = hexDigits[c>>4]
			buf[w+5] = hexDigits[c&0xf]
		}
	}

	return total, nil
}

func shortEscape(c byte) byte {
	switch c {
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	default:
		return c // '"' and '\\' escape to themselves
	}
}
