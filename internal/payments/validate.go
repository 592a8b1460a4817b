package payments

import (
	"strings"

	"go.uber.org/multierr"

	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
)

const minPhoneDigits = 10

// ValidateDetails checks the method-specific fields before any charge is
// attempted. All field problems for a method are reported together.
func ValidateDetails(details Details) error {
	if !details.Method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	var problems error
	switch details.Method {
	case enums.PaymentMethodMpesa:
		if len(strings.TrimSpace(details.Phone)) < minPhoneDigits {
			problems = multierr.Append(problems, errField("phone number must have at least 10 digits"))
		}
	case enums.PaymentMethodCard:
		if details.Card == nil {
			problems = multierr.Append(problems, errField("card details are required"))
			break
		}
		if strings.TrimSpace(details.Card.Number) == "" {
			problems = multierr.Append(problems, errField("card number is required"))
		}
		if strings.TrimSpace(details.Card.Expiry) == "" {
			problems = multierr.Append(problems, errField("card expiry is required"))
		}
		if strings.TrimSpace(details.Card.CVV) == "" {
			problems = multierr.Append(problems, errField("card cvv is required"))
		}
	case enums.PaymentMethodCashOnDelivery:
		if strings.TrimSpace(details.Address) == "" {
			problems = multierr.Append(problems, errField("delivery address is required"))
		}
	}

	if problems == nil {
		return nil
	}

	messages := make([]string, 0)
	for _, err := range multierr.Errors(problems) {
		messages = append(messages, err.Error())
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid payment details").WithDetails(messages)
}

type fieldError string

func (f fieldError) Error() string { return string(f) }

func errField(message string) error { return fieldError(message) }
