package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail reports whether s looks like a deliverable address. Login and
// find-or-create treat a failure here as absence, never as an error.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
