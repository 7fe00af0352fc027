package grammar

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/reluri/internal/constraints"
	"github.com/ghettovoice/reluri/internal/util"
)

// IsCharUnreserved reports whether c is an RFC 3986 unreserved character.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	default:
		return isAlpha(c) || isDigit(c)
	}
}

// IsGenDelim reports whether c is one of the RFC 3986 gen-delims.
func IsGenDelim(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	default:
		return false
	}
}

// IsSubDelim reports whether c is one of the RFC 3986 sub-delims.
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	default:
		return false
	}
}

// IsURIChar reports whether c may appear in a URI reference:
// unreserved, gen-delims, sub-delims and the percent sign.
func IsURIChar(c byte) bool {
	return c == '%' || IsCharUnreserved(c) || IsGenDelim(c) || IsSubDelim(c)
}

func IsHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// CheckChars returns an error wrapping [ErrIllegalChar] for the first byte of s
// that is not a URI character. Every byte of a multi-byte UTF-8 sequence is illegal.
func CheckChars[T constraints.Byteseq](s T) error {
	for i := 0; i < len(s); i++ {
		if !IsURIChar(s[i]) {
			return errtrace.Wrap(newIllegalCharErr("byte 0x%02x at offset %d", s[i], i))
		}
	}
	return nil
}

// CheckEscapes returns an error wrapping [ErrIncompleteEscape] for the first
// percent sign of s that is not followed by two hexadecimal digits.
// The end of input counts as a missing digit.
func CheckEscapes[T constraints.Byteseq](s T) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 >= len(s) || !IsHexDigit(s[i+1]) {
			return errtrace.Wrap(newIncompleteEscapeErr("first hex digit missing or invalid at offset %d", i))
		}
		if i+2 >= len(s) || !IsHexDigit(s[i+2]) {
			return errtrace.Wrap(newIncompleteEscapeErr("second hex digit missing or invalid at offset %d", i))
		}
		i += 2
	}
	return nil
}

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes every byte of s for which shouldEscape returns true.
// A nil shouldEscape keeps unreserved characters and sub-delims.
// Well-formed percent-escapes are never re-escaped.
func Escape(s string, shouldEscape func(c byte) bool) string {
	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsCharUnreserved(c) && !IsSubDelim(c) }
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]) {
			sb.WriteString(s[i : i+3])
			i += 2
			continue
		}
		if shouldEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
