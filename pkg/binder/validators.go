package binder

import (
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/go-playground/validator/v10"
)

// sortSpecValidator ensures the value is a parsable "<key>.<direction>" sort
// specification. Use it together with omitempty when the parameter is
// optional, since the empty string doesn't parse.
func sortSpecValidator(fl validator.FieldLevel) bool {
	_, err := sorting.Parse(fl.Field().String())
	return err == nil
}
