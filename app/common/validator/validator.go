package validator

import (
	stderrors "errors"
	"net/http"

	"StrideAI/app/common/consts/errno"

	"github.com/go-playground/validator/v10"
	"github.com/zeromicro/x/errors"
)

// Validator plugs validate tags into httpx.Parse.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(_ *http.Request, data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if stderrors.As(err, &invalid) {
		// not a struct, nothing to check
		return nil
	}
	return errors.New(errno.InvalidParam, err.Error())
}
