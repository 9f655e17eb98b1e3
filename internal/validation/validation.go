package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind is the expected JSON type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
)

// Rule describes the constraints on a single payload field.
type Rule struct {
	Required bool
	Kind     Kind
	MinLen   int      // minimum string length, 0 = unbounded
	MaxLen   int      // maximum string length, 0 = unbounded
	Min      int64    // minimum numeric value
	Max      int64    // maximum numeric value, 0 = unbounded
	Email    bool     // string must look like an email address
	Enum     []string // string must be one of these (case-insensitive)
}

// Field pairs a payload field name with its rule.
type Field struct {
	Name string
	Rule Rule
}

// Schema is an ordered list of field rules for one operation.
// Order determines which failure is reported first.
type Schema []Field

// FieldError describes the first failing field of a payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%q %s", e.Field, e.Message)
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Evaluate checks a decoded JSON payload against a schema and returns
// the first failure, or nil if the payload is acceptable. It never
// touches the database: this is a pure shape check. Unknown payload
// fields are ignored.
func Evaluate(schema Schema, payload map[string]any) error {
	for _, f := range schema {
		value, ok := payload[f.Name]
		if !ok || value == nil {
			if f.Rule.Required {
				return &FieldError{Field: f.Name, Message: "is required"}
			}
			continue
		}

		switch f.Rule.Kind {
		case KindString:
			if err := checkString(f, value); err != nil {
				return err
			}
		case KindInt:
			if err := checkInt(f, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkString validates the value exactly as submitted: the stored
// value is the submitted one, so accepting a cleaned-up copy here would
// let payloads through that the database layer never sees in that form.
func checkString(f Field, value any) error {
	s, ok := value.(string)
	if !ok {
		return &FieldError{Field: f.Name, Message: "must be a string"}
	}

	if f.Rule.MinLen > 0 && utf8.RuneCountInString(s) < f.Rule.MinLen {
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at least %d characters", f.Rule.MinLen)}
	}
	if f.Rule.MaxLen > 0 && utf8.RuneCountInString(s) > f.Rule.MaxLen {
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at most %d characters", f.Rule.MaxLen)}
	}
	if f.Rule.Email && !emailRe.MatchString(s) {
		return &FieldError{Field: f.Name, Message: "must be a valid email"}
	}
	if len(f.Rule.Enum) > 0 {
		lower := strings.ToLower(s)
		found := false
		for _, e := range f.Rule.Enum {
			if lower == e {
				found = true
				break
			}
		}
		if !found {
			return &FieldError{Field: f.Name, Message: "must be one of " + strings.Join(f.Rule.Enum, ", ")}
		}
	}
	return nil
}

func checkInt(f Field, value any) error {
	// JSON numbers decode to float64.
	n, ok := value.(float64)
	if !ok || n != math.Trunc(n) {
		return &FieldError{Field: f.Name, Message: "must be an integer"}
	}
	v := int64(n)
	if v < f.Rule.Min {
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at least %d", f.Rule.Min)}
	}
	if f.Rule.Max != 0 && v > f.Rule.Max {
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("must be at most %d", f.Rule.Max)}
	}
	return nil
}
