package jsontree

import (
	"fmt"
	"strings"
)

// decodeString takes the raw bytes strictly between a string's opening and
// closing quote and produces the decoded UTF-8 content, or fails on a bad
// escape, bad surrogate pair, or unescaped control byte.
func decodeString(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	i := 0
	for i < len(raw) {
		c := raw[i]
		if c < 0x20 {
			return "", fmt.Errorf("%w: unescaped control byte 0x%02x in string", ErrParse, c)
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		// c == '\\': an escape sequence follows.
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("%w: unterminated escape at end of string", ErrParse)
		}
		switch raw[i] {
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case '/':
			b.WriteByte('/')
			i++
		case 'b':
			b.WriteByte(0x08)
			i++
		case 'f':
			b.WriteByte(0x0C)
			i++
		case 'n':
			b.WriteByte(0x0A)
			i++
		case 'r':
			b.WriteByte(0x0D)
			i++
		case 't':
			b.WriteByte(0x09)
			i++
		case 'u':
			cp, n, err := readHex4(raw, i+1)
			if err != nil {
				return "", err
			}
			i += 1 + n

			switch {
			case cp < 0xD800 || cp > 0xDFFF:
				b.WriteRune(rune(cp))
			case cp >= 0xD800 && cp <= 0xDBFF:
				// High surrogate: must be followed immediately by \uYYYY
				// with YYYY a low surrogate.
				if i+6 > len(raw) || raw[i] != '\\' || raw[i+1] != 'u' {
					return "", fmt.Errorf("%w: high surrogate not followed by low surrogate", ErrParse)
				}
				low, n2, err := readHex4(raw, i+2)
				if err != nil {
					return "", err
				}
				if low < 0xDC00 || low > 0xDFFF {
					return "", fmt.Errorf("%w: high surrogate not followed by low surrogate", ErrParse)
				}
				i += 2 + n2
				r := 0x10000 + ((cp - 0xD800) << 10) | (low - 0xDC00)
				b.WriteRune(rune(r))
			default:
				// Lone low surrogate (0xDC00..0xDFFF) with no preceding high.
				return "", fmt.Errorf("%w: lone low surrogate", ErrParse)
			}
		default:
			return "", fmt.Errorf("%w: invalid escape '\\%c'", ErrParse, raw[i])
		}
	}
	return b.String(), nil
}

// readHex4 reads exactly four hex digits from s starting at offset, and
// returns the parsed 16-bit value, the number of bytes consumed (always 4
// on success), and an error on malformed hex or running out of input.
func readHex4(s string, offset int) (int, int, error) {
	if offset+4 > len(s) {
		return 0, 0, fmt.Errorf("%w: truncated \\u escape", ErrParse)
	}
	v := 0
	for i := 0; i < 4; i++ {
		c := s[offset+i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		default:
			return 0, 0, fmt.Errorf("%w: invalid hex digit in \\u escape", ErrParse)
		}
	}
	return v, 4, nil
}

// encodedStringLen returns the number of bytes the escaped form of s would
// occupy, excluding the two surrounding quote bytes (the callers in
// serializer.go add those themselves).
func encodedStringLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			n += 2
		default:
			n++
		}
	}
	return n
}

// writeEncodedString appends the escaped form of s to b: `"` and `\` are
// backslash-escaped, the control shorthands (\b \f \n \r \t) replace their
// raw bytes, and everything else is copied verbatim.
func writeEncodedString(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
}
