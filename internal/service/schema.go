package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

// SchemaValidator enforces the stored-record rules on entities before they are persisted.
type SchemaValidator struct {
	validate *validator.Validate
	services []string
}

// NewSchemaValidator registers the custom tags used by the entity structs.
func NewSchemaValidator(services []string) *SchemaValidator {
	if len(services) == 0 {
		services = entity.DefaultLeadServices
	}
	allowed := make(map[string]struct{}, len(services))
	for _, s := range services {
		allowed[s] = struct{}{}
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("leademail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("leadservice", func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})

	return &SchemaValidator{validate: v, services: services}
}

// Lead checks a lead and returns a *SchemaError listing every violation.
func (s *SchemaValidator) Lead(lead *entity.Lead) error {
	return s.check(lead)
}

// Review checks a review and returns a *SchemaError listing every violation.
func (s *SchemaValidator) Review(review *entity.Review) error {
	return s.check(review)
}

func (s *SchemaValidator) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("schema validation: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, s.message(fe))
	}
	return &SchemaError{Errors: messages}
}

func (s *SchemaValidator) message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "leademail":
		return msgInvalidEmail
	case "leadservice":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(s.services, ", "))
	default:
		return field + " is invalid"
	}
}
