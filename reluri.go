package reluri

//go:generate go tool errtrace -w .

import (
	"context"
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/reluri/internal/errorutil"
	"github.com/ghettovoice/reluri/internal/grammar"
	"github.com/ghettovoice/reluri/internal/log"
	"github.com/ghettovoice/reluri/uri"
)

// Result is the outcome of a classification.
type Result struct {
	Kind Kind
	// Components is the decomposition of the input.
	// It is zero for inputs rejected before decomposition.
	Components uri.Components
	// Err is the reason of [KindInvalid], nil otherwise.
	Err error
}

// IsRelative reports whether the classified value is a relative URI reference.
func (r Result) IsRelative() bool { return r.Kind.IsRelative() }

// Classifier classifies values as relative or absolute URI references.
// The zero value is ready to use.
type Classifier struct {
	// Guard selects the values treated as strings.
	// If nil, [StrictStringGuard] is used.
	Guard TypeGuard
	// Decompose splits a string into URI components.
	// If nil, [uri.Split] is used.
	Decompose func(s string) uri.Components
	// Logger receives debug records of every decision.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

func (c *Classifier) guard() TypeGuard {
	if c == nil || c.Guard == nil {
		return StrictStringGuard
	}
	return c.Guard
}

func (c *Classifier) decompose(s string) uri.Components {
	if c == nil || c.Decompose == nil {
		return uri.Split(s)
	}
	return c.Decompose(s)
}

func (c *Classifier) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return log.Noop
	}
	return c.Logger
}

// Classify classifies v.
// It never panics: a panic of the guard or the decomposer yields [KindInvalid] with [ErrPanic].
func (c *Classifier) Classify(v any) Result {
	s, ok, res := c.classify(v)
	c.logResult(v, s, ok, res)
	return res
}

func (c *Classifier) classify(v any) (s string, ok bool, res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Kind: KindInvalid, Err: errtrace.Wrap(errorutil.NewWrapperError(ErrPanic, fmt.Sprint(r)))}
		}
	}()

	if s, ok = c.guard().AsString(v); !ok {
		return s, ok, Result{Kind: KindInvalid, Err: errtrace.Wrap(errorutil.NewWrapperError(ErrNotString, "%T", v))}
	}
	return s, ok, c.classifyString(s)
}

func (c *Classifier) classifyString(s string) Result {
	if err := grammar.CheckChars(s); err != nil {
		return Result{Kind: KindInvalid, Err: errtrace.Wrap(err)}
	}
	if err := grammar.CheckEscapes(s); err != nil {
		return Result{Kind: KindInvalid, Err: errtrace.Wrap(err)}
	}

	comps := c.decompose(s)
	switch {
	case !comps.HasValidScheme():
		return Result{Kind: KindRelative, Components: comps}
	case comps.IsNetworkPathOnly():
		return Result{Kind: KindNetworkPath, Components: comps}
	default:
		return Result{Kind: KindAbsolute, Components: comps}
	}
}

// logResult logs the decision; s is the guarded string when isStr is true.
// Panics of the logger's handler are dropped.
func (c *Classifier) logResult(v any, s string, isStr bool, res Result) {
	defer func() { _ = recover() }()

	logger := c.logger()
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := make([]slog.Attr, 0, 4)
	if isStr {
		attrs = append(attrs, slog.String(log.InputKey, s))
	} else {
		attrs = append(attrs, slog.String("type", fmt.Sprintf("%T", v)))
	}
	attrs = append(attrs, slog.Any("kind", res.Kind))
	if res.Err != nil {
		attrs = append(attrs, slog.Any("error", res.Err))
	} else {
		attrs = append(attrs, slog.Any("uri", res.Components))
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "URI reference classified", attrs...)
}

// IsRelativeURI reports whether v is a relative URI reference.
func (c *Classifier) IsRelativeURI(v any) bool { return c.Classify(v).IsRelative() }

var defClassifier Classifier

// Classify classifies v with the default classifier.
func Classify(v any) Result { return defClassifier.Classify(v) }

// IsRelativeURI reports whether v is a relative URI reference.
//
// It returns false for non-string values (only the predeclared string type is accepted),
// strings with characters outside the RFC 3986 character set, strings with malformed
// percent-escapes and strings starting with a valid scheme.
func IsRelativeURI(v any) bool { return defClassifier.IsRelativeURI(v) }
