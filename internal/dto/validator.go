package dto

import (
	"trading-signal-api/pkg/utils"

	goValidator "github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom tags used by request DTOs.
func NewValidator() *goValidator.Validate {
	v := goValidator.New()
	_ = v.RegisterValidation("json_truthy", func(fl goValidator.FieldLevel) bool {
		return utils.IsTruthyJSON(fl.Field().Bytes())
	})
	return v
}
