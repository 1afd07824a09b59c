package serverutils

import (
	"interview-eval-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds failures into the
// validation error kind so the error handler answers 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.Validationf("%s", err.Error())
	}
	return nil
}
