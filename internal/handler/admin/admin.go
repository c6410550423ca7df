// Package admin holds the JSON handlers behind RequireAdmin: coupon
// registry management, order status updates, shipping settings, and
// catalog edits.
package admin

import (
	"github.com/go-playground/validator/v10"

	"github.com/esenmoda/esen/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs validator tags over req and converts failures to
// field-level validation errors keyed by the struct's JSON field names.
func validateStruct(op string, req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.Internal(err, op, "validation failed")
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fieldName(fe.Field())] = failureMessage(fe)
	}
	return &domain.ValidationError{Op: op, Fields: fields}
}

func failureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// fieldName converts an exported Go field name to its snake_case JSON
// name. Runs of capitals like "ID" stay together: "ProductID" becomes
// "product_id".
func fieldName(name string) string {
	isUpper := func(c byte) bool { return c >= 'A' && c <= 'Z' }
	lower := func(c byte) byte {
		if isUpper(c) {
			return c + 'a' - 'A'
		}
		return c
	}

	out := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) && i > 0 &&
			(!isUpper(name[i-1]) || (i+1 < len(name) && !isUpper(name[i+1]))) {
			out = append(out, '_')
		}
		out = append(out, lower(c))
	}
	return string(out)
}
