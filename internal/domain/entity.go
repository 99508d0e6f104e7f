package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entity is the fixed-shape template of a collection. Decoding a request body
// into an Entity drops every field the template does not declare.
type Entity interface {
	// Normalize trims inputs and fills in default values.
	Normalize()
}

// selfValidator is implemented by entities with rules that struct tags
// cannot express.
type selfValidator interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct tags of e and then any entity-specific rules.
// The first failing field is reported as a *ValidationError.
func Validate(e Entity) error {
	if err := validate.Struct(e); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return NewValidationError(fe.Field(), tagMessage(fe.Tag()), ErrValidation)
		}
		return NewValidationError("body", "is invalid", err)
	}

	if sv, ok := e.(selfValidator); ok {
		return sv.Validate()
	}
	return nil
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return "failed on the '" + tag + "' rule"
	}
}

// FlexString accepts either a JSON string or a JSON number and always
// marshals as a string. Clients send numeric fields both ways.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// FieldNames returns the JSON names of the fields e declares, in declaration
// order. Names are exact: a body key that differs only in case is not a
// template field.
func FieldNames(e Entity) []string {
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = fld.Name
		}
		names = append(names, name)
	}
	return names
}
