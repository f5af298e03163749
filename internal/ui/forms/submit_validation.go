package forms

import (
	"regexp"
	"strings"

	"github.com/greenaire/site/internal/ui/model"
)

// Validation messages shown beneath each contact field.
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email"
	MsgMessageRequired = "Message is required"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact checks fields and returns the failing ones. The email pattern
// is applied to the raw value, so surrounding whitespace makes it invalid.
func ValidateContact(fields model.ContactFields) model.FieldErrors {
	errs := model.FieldErrors{}
	if strings.TrimSpace(fields.Name) == "" {
		errs[model.FieldName] = MsgNameRequired
	}
	switch {
	case strings.TrimSpace(fields.Email) == "":
		errs[model.FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(fields.Email):
		errs[model.FieldEmail] = MsgEmailInvalid
	}
	if strings.TrimSpace(fields.Message) == "" {
		errs[model.FieldMessage] = MsgMessageRequired
	}
	return errs
}
