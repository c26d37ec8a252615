package auth

import (
	"unicode"

	"counter-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
}

// Character classes a password must draw from. Length bounds live on the
// struct tags; class coverage is checked here.
const (
	classUpper = 1 << iota
	classLower
	classDigit
	classOther

	classAll = classUpper | classLower | classDigit | classOther
)

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if passwordClasses(req.Password) != classAll {
		return errors.ErrInvalidPassword
	}
	return nil
}

func passwordClasses(password string) int {
	classes := 0
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			classes |= classUpper
		case unicode.IsLower(r):
			classes |= classLower
		case unicode.IsDigit(r):
			classes |= classDigit
		default:
			classes |= classOther
		}
	}
	return classes
}
