package reluri

import (
	"github.com/ghettovoice/reluri/internal/errorutil"
	"github.com/ghettovoice/reluri/internal/grammar"
)

type Error = errorutil.Error

const (
	// ErrNotString is reported for values rejected by the [TypeGuard].
	ErrNotString Error = "not a string"
	// ErrPanic is reported when a user supplied guard or decomposer panics.
	ErrPanic Error = "classifier panic"

	// ErrIllegalChar is reported for inputs with characters outside of the URI character set.
	ErrIllegalChar = grammar.ErrIllegalChar
	// ErrIncompleteEscape is reported for inputs with a "%" not followed by two hex digits.
	ErrIncompleteEscape = grammar.ErrIncompleteEscape
)
