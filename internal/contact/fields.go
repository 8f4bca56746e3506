package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Form field names, as posted by the browser.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldTitle   = "title"
	FieldMessage = "message"
)

// TimeLayout matches the browser's en-US toLocaleString output.
const TimeLayout = "1/2/2006, 3:04:05 PM"

var (
	ErrIncomplete   = errors.New("required field missing")
	ErrUnknownField = errors.New("unknown form field")
	ErrSubmitting   = errors.New("submission already in flight")
)

// Fields are the four visitor-entered values. Each must hold more than
// whitespace; nothing else is checked.
type Fields struct {
	Name    string `form:"name" validate:"notblank"`
	Email   string `form:"email" validate:"notblank"`
	Title   string `form:"title" validate:"notblank"`
	Message string `form:"message" validate:"notblank"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Set assigns one field by its form name.
func (f *Fields) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldTitle:
		f.Title = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Validate reports ErrIncomplete naming every empty or blank field.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
}

// Payload is the template data handed to the relay.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// Payload stamps the fields with the submission time.
func (f Fields) Payload(at time.Time) Payload {
	return Payload{
		Name:    f.Name,
		Email:   f.Email,
		Title:   f.Title,
		Message: f.Message,
		Time:    at.Format(TimeLayout),
	}
}
