package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var sortKeys = map[string]bool{
	"featured":      true,
	"price_asc":     true,
	"price_desc":    true,
	"rating":        true,
	"response_time": true,
	"popular":       true,
}

func registerCustomRules(v *validator.Validate) {
	// sortkey: a discovery sort key
	_ = v.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
		return sortKeys[fl.Field().String()]
	})

	// currency: a 3-letter uppercase ISO-ish code
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == 3 && s == strings.ToUpper(s)
	})
}
