package pydesc

import "errors"

// parseBytesLiteral decodes the Python bytes literal beginning at src[0],
// after any b/B prefix. Adjacent literals separated only by whitespace are
// concatenated, matching Python's implicit concatenation inside call
// parentheses. Decoding stops at the first non-literal token; trailing
// source is ignored.
func parseBytesLiteral(src []byte) ([]byte, error) {
	var out []byte
	parsed := false
	for {
		lit, ok := literalStart(skipPySpace(src))
		if !ok {
			if !parsed {
				return nil, errors.New("not a bytes literal")
			}
			return out, nil
		}
		val, rest, err := decodeLiteral(lit)
		if err != nil {
			return nil, err
		}
		out = append(out, val...)
		src = rest
		parsed = true
	}
}

// literalStart strips an optional b/B prefix and reports whether src then
// begins a quoted literal.
func literalStart(src []byte) ([]byte, bool) {
	if len(src) > 0 && (src[0] == 'b' || src[0] == 'B') {
		src = src[1:]
	}
	if len(src) > 0 && (src[0] == '\'' || src[0] == '"') {
		return src, true
	}
	return nil, false
}

// decodeLiteral decodes a single quoted literal whose opening quote is at
// src[0], returning the decoded bytes and the source remaining after the
// closing quote. Escape sequences follow CPython's bytes rules: the named
// single-character escapes, up to three octal digits, exactly two hex
// digits after \x, a backslash-newline line continuation, and everything
// else passed through with its backslash intact.
func decodeLiteral(src []byte) ([]byte, []byte, error) {
	quote := src[0]
	var out []byte
	for i := 1; i < len(src); i++ {
		c := src[i]
		switch {
		case c == quote:
			return out, src[i+1:], nil
		case c == '\n' || c == '\r':
			return nil, nil, errors.New("newline in bytes literal")
		case c == '\\':
			i++
			if i >= len(src) {
				return nil, nil, errors.New("trailing backslash in bytes literal")
			}
			switch e := src[i]; e {
			case '\n':
				// line continuation
			case '\r':
				if i+1 < len(src) && src[i+1] == '\n' {
					i++
				}
			case '\\', '\'', '"':
				out = append(out, e)
			case 'a':
				out = append(out, '\a')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'v':
				out = append(out, '\v')
			case 'x':
				if i+2 >= len(src) || !isHexDigit(src[i+1]) || !isHexDigit(src[i+2]) {
					return nil, nil, errors.New(`\x escape needs two hex digits`)
				}
				out = append(out, hexVal(src[i+1])<<4|hexVal(src[i+2]))
				i += 2
			case '0', '1', '2', '3', '4', '5', '6', '7':
				v := int(e - '0')
				for n := 0; n < 2 && i+1 < len(src) && isOctalDigit(src[i+1]); n++ {
					i++
					v = v<<3 | int(src[i]-'0')
				}
				out = append(out, byte(v))
			default:
				out = append(out, '\\', e)
			}
		default:
			out = append(out, c)
		}
	}
	return nil, nil, errors.New("unterminated bytes literal")
}

func skipPySpace(src []byte) []byte {
	for len(src) > 0 {
		switch src[0] {
		case ' ', '\t', '\n', '\r':
			src = src[1:]
		default:
			return src
		}
	}
	return src
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func hexVal(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
