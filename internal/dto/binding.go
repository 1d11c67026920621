package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/splitgem/payment-manager/internal/core/validation"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// RegisterCustomValidations installs the request-level validation tags on
// gin's binding validator. Must be called once at startup.
func RegisterCustomValidations(v *validator.Validate) error {
	// Expose decimal fields to numeric comparison tags like gt=0.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		return err
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}

// TranslateBindingError converts a binding failure into the user-visible
// field validation messages. Non-validator errors (malformed JSON and the
// like) yield a single generic message.
func TranslateBindingError(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request format"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		if fe.Tag() == "max" {
			return validation.TitleMaxLength
		}
		return validation.TitleNotBlank
	case "Value":
		return validation.PositiveAmount
	case "Currency":
		if fe.Tag() == "currencycode" {
			return validation.BaseCurrencyPattern
		}
		return validation.BaseCurrencyNotBlank
	case "TargetCurrency":
		return validation.TargetCurrencyPattern
	case "RecipientID":
		return validation.RecipientIDNotBlank
	case "PaymentID":
		return validation.PaymentIDNotBlank
	case "GroupID":
		return validation.GroupIDNotBlank
	case "Message":
		return validation.MessageNullOrBlank
	case "AttachmentID":
		return validation.AttachmentIDNullOrBlank
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
