package uri

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ghettovoice/reluri/internal/constraints"
	"github.com/ghettovoice/reluri/internal/grammar"
	"github.com/ghettovoice/reluri/internal/util"
)

// Components holds the generic components of a URI reference.
// Has* flags distinguish an absent component from an empty one.
type Components struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string

	HasScheme    bool
	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

// HasValidScheme reports whether the scheme is present and matches the RFC 3986 scheme rule.
func (c Components) HasValidScheme() bool {
	return c.HasScheme && c.Scheme != "" && grammar.IsScheme(util.LCase(c.Scheme))
}

// IsNetworkPathOnly reports whether the authority is empty while the path starts with "//".
func (c Components) IsNetworkPathOnly() bool {
	return c.Authority == "" && strings.HasPrefix(c.Path, "//")
}

// String reassembles the reference from the components.
func (c Components) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if c.HasScheme {
		sb.WriteString(c.Scheme)
		sb.WriteByte(':')
	}
	if c.HasAuthority {
		sb.WriteString("//")
		sb.WriteString(c.Authority)
	}
	sb.WriteString(c.Path)
	if c.HasQuery {
		sb.WriteByte('?')
		sb.WriteString(c.Query)
	}
	if c.HasFragment {
		sb.WriteByte('#')
		sb.WriteString(c.Fragment)
	}
	return sb.String()
}

// LogValue implements [slog.LogValuer].
func (c Components) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	if c.HasScheme {
		attrs = append(attrs, slog.String("scheme", c.Scheme))
	}
	if c.HasAuthority {
		attrs = append(attrs, slog.String("authority", c.Authority))
	}
	attrs = append(attrs, slog.String("path", c.Path))
	if c.HasQuery {
		attrs = append(attrs, slog.String("query", c.Query))
	}
	if c.HasFragment {
		attrs = append(attrs, slog.String("fragment", c.Fragment))
	}
	return slog.GroupValue(attrs...)
}

// Groups 1-3 are the scheme, authority and path; 4-5 are the query and fragment.
// The match always starts at offset 0 and consumes the whole input.
var uriRe = regexp.MustCompile(`^(?s:(?:([^:/?#]+):)?(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?)`)

// Split decomposes s with the RFC 3986 regular expression.
func Split[T constraints.Byteseq](s T) Components {
	str := string(s)
	m := uriRe.FindStringSubmatchIndex(str)

	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return str[m[2*i]:m[2*i+1]], true
	}

	var c Components
	c.Scheme, c.HasScheme = group(1)
	c.Authority, c.HasAuthority = group(2)
	c.Path, _ = group(3)
	c.Query, c.HasQuery = group(4)
	c.Fragment, c.HasFragment = group(5)
	return c
}

// Scan decomposes s in a single pass. It returns the same components as [Split].
func Scan[T constraints.Byteseq](s T) Components {
	var c Components
	str := string(s)

	if i := strings.IndexAny(str, ":/?#"); i > 0 && str[i] == ':' {
		c.Scheme, c.HasScheme = str[:i], true
		str = str[i+1:]
	}

	if rest, ok := strings.CutPrefix(str, "//"); ok {
		i := strings.IndexAny(rest, "/?#")
		if i < 0 {
			i = len(rest)
		}
		c.Authority, c.HasAuthority = rest[:i], true
		str = rest[i:]
	}

	i := strings.IndexAny(str, "?#")
	if i < 0 {
		i = len(str)
	}
	c.Path, str = str[:i], str[i:]

	if rest, ok := strings.CutPrefix(str, "?"); ok {
		i := strings.IndexByte(rest, '#')
		if i < 0 {
			i = len(rest)
		}
		c.Query, c.HasQuery = rest[:i], true
		str = rest[i:]
	}

	if rest, ok := strings.CutPrefix(str, "#"); ok {
		c.Fragment, c.HasFragment = rest, true
	}
	return c
}
