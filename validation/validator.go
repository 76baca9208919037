// SPDX-License-Identifier: GPL-3.0-only

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"scratchcard-server/cards"
	"scratchcard-server/network"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// Validator wraps the playground validator with the platform's custom tags and
// translates its errors into FieldErrors. It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// mustRegister panics when tag cannot be registered, like regexp.MustCompile.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// New builds a validator whose "ngphone" tag uses detector.
func New(detector *network.Detector) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "ngphone", func(fl validator.FieldLevel) bool {
		return detector.Valid(fl.Field().String())
	})
	mustRegister(v, "serial", func(fl validator.FieldLevel) bool {
		return cards.ValidateSerialNumber(fl.Field().String())
	})
	mustRegister(v, "cardcode", func(fl validator.FieldLevel) bool {
		return cards.ValidateCardCode(fl.Field().String())
	})
	mustRegister(v, "digits", func(fl validator.FieldLevel) bool {
		return digitsRegex.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(orderStructLevel, OrderRequest{})

	return &Validator{validate: v}
}

// Validate returns FieldErrors when i breaks a rule, nil when it is acceptable.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return translate(verrs)
	}
	return err
}

// Check is Validate with the result narrowed to FieldErrors. Errors that are not
// rule failures, such as a nil argument, are reported under the root path.
func (v *Validator) Check(i any) FieldErrors {
	err := v.Validate(i)
	if err == nil {
		return nil
	}
	if fe, ok := AsFieldErrors(err); ok {
		return fe
	}
	return FieldErrors{RootPath: err.Error()}
}

func translate(verrs validator.ValidationErrors) FieldErrors {
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		out.add(path, message(path, fe))
	}
	return out
}

// fieldPath drops the leading struct type name from a namespace such as
// "OrderRequest.items[0].quantity".
func fieldPath(namespace string) string {
	if _, after, ok := strings.Cut(namespace, "."); ok {
		return after
	}
	return RootPath
}
