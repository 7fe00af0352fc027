package validate_test

import (
	"errors"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/ghettovoice/reluri"
	"github.com/ghettovoice/reluri/validate"
)

type link struct {
	Href string `validate:"reluri"`
}

type optLink struct {
	Href string `validate:"omitempty,reluri"`
}

type rawLink struct {
	Href []byte `validate:"reluri"`
}

func newValidator(t *testing.T, c *reluri.Classifier) *validator.Validate {
	t.Helper()

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterWith(v, c); err != nil {
		t.Fatalf("validate.RegisterWith(v, c) error = %v, want nil", err)
	}
	return v
}

func TestRegister(t *testing.T) {
	t.Parallel()

	v := validator.New()
	if err := validate.Register(v); err != nil {
		t.Fatalf("validate.Register(v) error = %v, want nil", err)
	}

	cases := []struct {
		name    string
		val     any
		wantErr bool
	}{
		{"relative", link{"./beep/boop"}, false},
		{"absolute path", link{"/dashboard/admin"}, false},
		{"empty", link{""}, false},
		{"absolute", link{"https://wikipedia.org"}, true},
		{"illegal", link{"foo bar"}, true},
		{"omit empty", optLink{""}, false},
		{"opt absolute", optLink{"mailto:a@b"}, true},
		{"bytes strict", rawLink{[]byte("./beep")}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(c.val)
			if (err != nil) != c.wantErr {
				t.Fatalf("v.Struct(%+v) error = %v, want error %v", c.val, err, c.wantErr)
			}
			if err == nil {
				return
			}

			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("v.Struct(%+v) error = %T, want validator.ValidationErrors", c.val, err)
			}
			if got := verrs[0].Tag(); got != validate.Tag {
				t.Errorf("verrs[0].Tag() = %q, want %q", got, validate.Tag)
			}
		})
	}
}

func TestRegisterWith_Lenient(t *testing.T) {
	t.Parallel()

	v := newValidator(t, &reluri.Classifier{Guard: reluri.LenientStringGuard})
	if err := v.Struct(rawLink{[]byte("./beep")}); err != nil {
		t.Errorf("v.Struct(rawLink) error = %v, want nil", err)
	}
	if err := v.Var("https://x", validate.Tag); err == nil {
		t.Errorf("v.Var(\"https://x\", %q) error = nil, want error", validate.Tag)
	}
}

func TestRegisterTranslation(t *testing.T) {
	t.Parallel()

	enLoc := en.New()
	trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

	v := newValidator(t, nil)
	if err := validate.RegisterTranslation(v, trans); err != nil {
		t.Fatalf("validate.RegisterTranslation(v, trans) error = %v, want nil", err)
	}

	err := v.Struct(link{"https://wikipedia.org"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("v.Struct(link) error = %v, want validator.ValidationErrors", err)
	}
	if got, want := verrs[0].Translate(trans), "Href must be a relative URI reference"; got != want {
		t.Errorf("verrs[0].Translate(trans) = %q, want %q", got, want)
	}
}
