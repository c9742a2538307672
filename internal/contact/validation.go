package contact

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type fieldCheck struct {
	field string
	value string
	rules []validation.Rule
}

func required(field, message string) validation.Rule {
	return validation.Required.ErrorObject(validation.NewError("artia.contact."+field+"_required", message))
}

// Validate checks the fields in form order and reports the first failure as a
// *ValidationError. Blank values count as missing.
func (in Input) Validate() error {
	checks := []fieldCheck{
		{field: "name", value: strings.TrimSpace(in.Name), rules: []validation.Rule{
			required("name", "Name is required"),
		}},
		{field: "email", value: strings.TrimSpace(in.Email), rules: []validation.Rule{
			required("email", "Email is required"),
		}},
		{field: "email", value: in.Email, rules: []validation.Rule{
			validation.Match(emailPattern).ErrorObject(validation.NewError("artia.contact.email_invalid", "Invalid email format")),
		}},
		{field: "subject", value: strings.TrimSpace(in.Subject), rules: []validation.Rule{
			required("subject", "Subject is required"),
		}},
		{field: "message", value: strings.TrimSpace(in.Message), rules: []validation.Rule{
			required("message", "Message is required"),
		}},
	}

	for _, check := range checks {
		if err := validation.Validate(check.value, check.rules...); err != nil {
			return &ValidationError{Field: check.field, Message: err.Error()}
		}
	}
	return nil
}
