// Package grammar implements the RFC 3986 lexical rules used to classify URI references.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/reluri/internal/constraints"
	"github.com/ghettovoice/reluri/internal/errorutil"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrIllegalChar      Error = "illegal character"
	ErrIncompleteEscape Error = "incomplete percent-escape"
)

func newIllegalCharErr(args ...any) error {
	return errorutil.NewWrapperError(ErrIllegalChar, args...) //errtrace:skip
}

func newIncompleteEscapeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrIncompleteEscape, args...) //errtrace:skip
}

// RFC 3986, section 3.1:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var (
	alpha = abnf.AltFirst(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	scheme = abnf.Concat(
		"scheme",
		alpha,
		abnf.Repeat0Inf(
			"*( ALPHA / DIGIT / \"+\" / \"-\" / \".\" )",
			abnf.AltFirst(
				"ALPHA / DIGIT / \"+\" / \"-\" / \".\"",
				alpha,
				digit,
				abnf.Literal("\"+\"", []byte{'+'}),
				abnf.Literal("\"-\"", []byte{'-'}),
				abnf.Literal("\".\"", []byte{'.'}),
			),
		),
	)
)

// IsScheme reports whether the whole s matches the RFC 3986 scheme rule.
// The rule is case-insensitive, so "HTTP" and "http" are both schemes.
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := scheme([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
