// Package validator checks required fields of records before they are written.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// MissingFieldError names the first required field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("The field '%s' is required.", e.Field)
}

// Init initializes the validator singleton (idempotent). Fields are reported by their json name.
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Required validates s and returns a *MissingFieldError for the first failing field in struct
// declaration order. Any other validation problem is returned unchanged.
func Required(s interface{}) error {
	Init()
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors gpvalidator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return &MissingFieldError{Field: fieldErrors[0].Field()}
	}
	return err
}
