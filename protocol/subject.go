package protocol

// IsValidSubject reports whether subject is a well-formed NATS subject.
// Subjects are dot-delimited tokens of alphanumeric characters. A token may
// be the single-token wildcard '*'; the full-remainder wildcard '>' is valid
// only as the final character. Doubled structural characters ("..", "**")
// are malformed, as is the empty subject.
func IsValidSubject(subject string) bool {
	if len(subject) == 0 {
		return false
	}

	var last byte
	for i := 0; i < len(subject); i++ {
		c := subject[i]
		switch c {
		case '>':
			if i != len(subject)-1 {
				return false
			}
		case '.', '*':
			if last == c {
				return false
			}
		default:
			if !isAlnum(c) {
				return false
			}
		}
		last = c
	}

	return true
}

// IsValidSID reports whether sid is a well-formed subscription identifier:
// a non-empty run of alphanumeric characters.
func IsValidSID(sid string) bool {
	if len(sid) == 0 {
		return false
	}

	for i := 0; i < len(sid); i++ {
		if !isAlnum(sid[i]) {
			return false
		}
	}

	return true
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
