package charconv

// text is the set of byte sequences the scanner accepts.
type text interface {
	~string | ~[]byte
}

// lower(c) is a lower-case letter if and only if
// c is either that lower-case letter or the equivalent upper-case letter.
// Instead of writing c == 'x' || c == 'X' one can write lower(c) == 'x'.
// Note that lower of non-letters can produce other non-letters.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

// prefixLenFold returns the length of the common prefix of s[pos:] and
// prefix, with the character case of s ignored.
// The prefix argument must be all lower-case.
func prefixLenFold[S text](s S, pos int, prefix string) int {
	n := 0
	for n < len(prefix) && pos+n < len(s) && lower(s[pos+n]) == prefix[n] {
		n++
	}
	return n
}

// special recognizes a signed infinity or NaN at the start of s.
// It reports the sign, whether the value is a NaN, and the number of bytes
// consumed; ok is false if s does not start with a special value, in which
// case nothing was consumed.
//
// The accepted forms, ignoring case, are:
//
//	[sign] inf
//	[sign] infinity
//	[sign] nan
//	[sign] nan(payload)
//
// where payload is any sequence of bytes other than ')'.
// The payload is consumed but not interpreted.
func special[S text](s S) (neg, nan bool, n int, ok bool) {
	pos := 0
	if pos < len(s) {
		switch s[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}
	if pos == len(s) {
		return false, false, 0, false
	}
	switch lower(s[pos]) {
	case 'i':
		k := prefixLenFold(s, pos, "infinity")
		switch {
		case k == 8:
			return neg, false, pos + 8, true
		case k >= 3:
			// Anything longer than "inf" is ok, but if we
			// don't have "infinity", only consume "inf".
			return neg, false, pos + 3, true
		}
	case 'n':
		if prefixLenFold(s, pos, "nan") != 3 {
			break
		}
		pos += 3
		if pos < len(s) && s[pos] == '(' {
			for i := pos + 1; i < len(s); i++ {
				if s[i] == ')' {
					return neg, true, i + 1, true
				}
			}
		}
		return neg, true, pos, true
	}
	return false, false, 0, false
}
