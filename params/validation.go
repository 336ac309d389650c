package params

import (
	"github.com/ethereum/go-ethereum/common"
	validator "gopkg.in/go-playground/validator.v9"
)

// NewValidator returns a validator with the custom tags used by config structs.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return common.IsHexAddress(fl.Field().String())
	})
	return validate
}
