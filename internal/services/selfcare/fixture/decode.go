package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		id, ok := field.Interface().(SubscriberID)
		if !ok {
			return nil
		}
		return id.raw
	}, SubscriberID{})
	return v
}

// Decode parses and validates a fixture document.
func Decode(r io.Reader) (Document, error) {
	if r == nil {
		return Document{}, errors.New("fixture reader is required")
	}
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode fixture: %w", err)
	}
	if err := Validate(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks the structural requirements the pages rely on: every user
// has a username, every subscriber an id, every invoice an id and every
// product a name and a non-negative price.
func Validate(doc Document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate fixture: %w", err)
	}
	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("validate fixture: invalid fields %s", strings.Join(fields, ", "))
}
