// Package validator adapts go-playground/validator to echo and the domain
// error taxonomy so form errors come back per field.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the bound input and converts tag failures into a
// ValidationError with one message per offending field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Trường này là bắt buộc"
	case "email":
		return "Email không hợp lệ"
	case "min":
		return "Giá trị quá ngắn (tối thiểu " + fe.Param() + ")"
	case "max":
		return "Giá trị quá dài (tối đa " + fe.Param() + ")"
	case "eqfield":
		return "Giá trị nhập lại không khớp"
	case "gt", "gte":
		return "Giá trị phải là số dương"
	default:
		return "Giá trị không hợp lệ"
	}
}
