package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo's Validate hook so
// request DTO tags are checked before any handler touches storage.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
