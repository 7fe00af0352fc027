package reluri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/reluri"
	"github.com/ghettovoice/reluri/internal/errorutil"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind reluri.Kind
		want string
	}{
		{reluri.KindInvalid, "invalid"},
		{reluri.KindRelative, "relative"},
		{reluri.KindNetworkPath, "network-path"},
		{reluri.KindAbsolute, "absolute"},
		{reluri.Kind(100), "unknown"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := c.kind.String(); got != c.want {
				t.Errorf("reluri.Kind(%d).String() = %q, want %q", c.kind, got, c.want)
			}
		})
	}
}

func TestKind_MarshalText(t *testing.T) {
	t.Parallel()

	for _, k := range []reluri.Kind{reluri.KindInvalid, reluri.KindRelative, reluri.KindNetworkPath, reluri.KindAbsolute} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("reluri.Kind(%d).MarshalText() error = %v, want nil", k, err)
		}

		var got reluri.Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("kind.UnmarshalText(%q) error = %v, want nil", text, err)
		}
		if got != k {
			t.Errorf("kind.UnmarshalText(%q) = %v, want %v", text, got, k)
		}
	}

	if _, err := reluri.Kind(100).MarshalText(); !cmp.Equal(err, errorutil.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("reluri.Kind(100).MarshalText() error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		text    string
		want    reluri.Kind
		wantErr error
	}{
		{"lower", "absolute", reluri.KindAbsolute, nil},
		{"upper", "RELATIVE", reluri.KindRelative, nil},
		{"dashed", "Network-Path", reluri.KindNetworkPath, nil},
		{"unknown", "opaque", reluri.KindInvalid, errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got reluri.Kind
			err := got.UnmarshalText([]byte(c.text))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("kind.UnmarshalText(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.text, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("kind.UnmarshalText(%q) = %v, want %v", c.text, got, c.want)
			}
		})
	}
}

func TestKind_IsRelative(t *testing.T) {
	t.Parallel()

	cases := map[reluri.Kind]bool{
		reluri.KindInvalid:     false,
		reluri.KindRelative:    true,
		reluri.KindNetworkPath: true,
		reluri.KindAbsolute:    false,
	}
	for k, want := range cases {
		if got := k.IsRelative(); got != want {
			t.Errorf("reluri.%v.IsRelative() = %v, want %v", k, got, want)
		}
	}
}
