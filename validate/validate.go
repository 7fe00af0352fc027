// Package validate registers the relative URI check with [github.com/go-playground/validator/v10].
//
//	v := validator.New()
//	if err := validate.Register(v); err != nil {
//	    ...
//	}
//	type Link struct {
//	    Href string `validate:"reluri"`
//	}
package validate

//go:generate go tool errtrace -w .

import (
	"reflect"

	"braces.dev/errtrace"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/ghettovoice/reluri"
)

// Tag is the validation tag of relative URI references.
const Tag = "reluri"

// Register registers [Tag] on v using the default classifier.
func Register(v *validator.Validate) error {
	return errtrace.Wrap(RegisterWith(v, nil))
}

// RegisterWith registers [Tag] on v using classifier c.
// A nil c is the default classifier.
// Fields of string kind are converted to string before classification,
// fields of any other kind are passed as is.
func RegisterWith(v *validator.Validate, c *reluri.Classifier) error {
	return errtrace.Wrap(v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() == reflect.String {
			return c.IsRelativeURI(f.String())
		}
		if !f.CanInterface() {
			return false
		}
		return c.IsRelativeURI(f.Interface())
	}))
}

// RegisterTranslation registers the error message of [Tag] on v for trans.
func RegisterTranslation(v *validator.Validate, trans ut.Translator) error {
	return errtrace.Wrap(v.RegisterTranslation(Tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(Tag, "{0} must be a relative URI reference", true) //errtrace:skip
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(Tag, fe.Field())
			return msg
		},
	))
}
