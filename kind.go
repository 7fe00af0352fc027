package reluri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/reluri/internal/errorutil"
	"github.com/ghettovoice/reluri/internal/util"
)

// Kind is a classification outcome.
type Kind uint8

const (
	// KindInvalid is a value that is not a string, contains illegal characters
	// or malformed percent-escapes.
	KindInvalid Kind = iota
	// KindRelative is a reference without a valid scheme.
	KindRelative
	// KindNetworkPath is a reference with a valid scheme, an empty authority
	// and a path starting with "//". It is treated as relative.
	KindNetworkPath
	// KindAbsolute is a reference with a valid scheme.
	KindAbsolute
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindRelative:    "relative",
	KindNetworkPath: "network-path",
	KindAbsolute:    "absolute",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsRelative reports whether k is [KindRelative] or [KindNetworkPath].
func (k Kind) IsRelative() bool { return k == KindRelative || k == KindNetworkPath }

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown kind %d", k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Names are matched case-insensitively.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if util.EqFold(name, string(text)) {
			*k = Kind(i)
			return nil
		}
	}
	return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown kind %q", text))
}
