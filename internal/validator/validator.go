// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"financogram/internal/listing"
	"financogram/internal/models"
	"financogram/internal/portfolio"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v and reports fields by
// their JSON or query parameter name.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("investment_type", validateInvestmentType)
	_ = v.RegisterValidation("payment_mode", validatePaymentMode)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	return portfolio.InvestmentType(fl.Field().String()).Valid()
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	_, ok := models.ParsePaymentMode(fl.Field().String())
	return ok
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch listing.SortOrder(fl.Field().String()) {
	case listing.Ascending, listing.Descending:
		return true
	}
	return false
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
