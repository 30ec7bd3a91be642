// File: escape.go
// Title: C-Style Escape Sequence Decoding
// Description: Decodes backslash escape sequences in needle, delimiter and
//              fill arguments before they reach the string functions. The
//              decoder is lenient: malformed sequences never fail.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package stringx

import "strings"

// Unescape decodes C-style backslash escape sequences in raw.
//
// Supported sequences:
//
//	\a \b \f \n \r \t \v  - control characters (BEL, BS, FF, LF, CR, HT, VT)
//	\\                    - literal backslash
//	\xH, \xHH             - one or two hex digits, one byte
//	\O, \OO, \OOO         - one to three octal digits, one byte (value mod 256)
//
// Any other escaped character is emitted without its backslash, so \' and \"
// become quotes and \q becomes q. A \x that is not followed by a hex digit
// yields x. A trailing lone backslash is kept.
func Unescape(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}

		i++
		c = raw[i]
		switch c {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '\\':
			b.WriteByte('\\')
		case 'x':
			if i+1 < len(raw) && isHexDigit(raw[i+1]) {
				i++
				v := hexValue(raw[i])
				if i+1 < len(raw) && isHexDigit(raw[i+1]) {
					i++
					v = v<<4 | hexValue(raw[i])
				}
				b.WriteByte(v)
				continue
			}
			b.WriteByte('x')
		default:
			if !isOctalDigit(c) {
				b.WriteByte(c)
				continue
			}
			v := int(c - '0')
			for n := 1; n < 3 && i+1 < len(raw) && isOctalDigit(raw[i+1]); n++ {
				i++
				v = v*8 + int(raw[i]-'0')
			}
			b.WriteByte(byte(v))
		}
	}

	return b.String()
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
