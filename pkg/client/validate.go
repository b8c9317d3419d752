package client

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
)

var ErrValidation = errors.New("validation failed")

// ValidationError lists the form fields that failed local checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// form mirrors the checks the admin forms apply before submitting.
type form struct {
	Name        string `validate:"required,max=80"`
	Description string `validate:"required,max=4096"`
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

func validateForm(name, description string) error {
	f := form{Name: strings.TrimSpace(name), Description: strings.TrimSpace(description)}
	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	vErr := &ValidationError{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			vErr.Fields = append(vErr.Fields, field+" is required")
		case "max":
			limit := types.MaxNameLength
			if fe.Field() == "Description" {
				limit = types.MaxDescriptionLength
			}
			vErr.Fields = append(vErr.Fields, field+" must be at most "+strconv.Itoa(limit)+" characters")
		default:
			vErr.Fields = append(vErr.Fields, field+" is invalid")
		}
	}
	return vErr
}

func validateRef(name string, id int64) error {
	if id <= 0 {
		return &ValidationError{Fields: []string{name + " is required"}}
	}
	return nil
}
