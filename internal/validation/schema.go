package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	String Kind = iota
	Number
)

type Field struct {
	Name string
	Kind Kind
	Max  int // maximum string length; 0 means unbounded
}

// Schema is the declarative shape of an insert payload: required fields,
// primitive kinds and maximum lengths, in canonical declaration order.
type Schema struct {
	fields []Field
}

func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// FieldNames returns the canonical field order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

var validate = validator.New()

// Check verifies the payload against the schema and returns the reason for
// the first offense, quoted for display ("'compName' is required"), or ""
// when the shape is acceptable. Unknown keys are ignored.
func (s *Schema) Check(payload map[string]any) string {
	for _, f := range s.fields {
		value, ok := payload[f.Name]
		if !ok {
			return fmt.Sprintf("'%s' is required", f.Name)
		}

		switch f.Kind {
		case String:
			str, isStr := value.(string)
			if !isStr {
				return fmt.Sprintf("'%s' must be a string", f.Name)
			}
			if f.Max > 0 {
				if err := validate.Var(str, fmt.Sprintf("max=%d", f.Max)); err != nil {
					return fmt.Sprintf(
						"'%s' length must be less than or equal to %d characters long",
						f.Name, f.Max,
					)
				}
			}
		case Number:
			if _, isNum := NumberValue(value); !isNum {
				return fmt.Sprintf("'%s' must be a number", f.Name)
			}
		}
	}

	return ""
}
