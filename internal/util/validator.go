package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func msgForTag(fe validator.FieldError, customField map[string]string) string {
	field := fe.Field()
	if name, ok := customField[field]; ok {
		field = name
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	}

	return fe.Error()
}

/*
FirstErrorMessage extracts the first validation error as a human readable
string. A customField map replaces struct field names with friendlier labels.

Usage: FirstErrorMessage(err, map[string]string{"Name": "designer name"})
Example output: "designer name is required"
*/
func FirstErrorMessage(err error, customField map[string]string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return msgForTag(ve[0], customField)
	}
	return err.Error()
}

// check if string is empty, after trimming spaces
// Usage: `validate:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return len(strings.TrimSpace(field.String())) > 0
}
