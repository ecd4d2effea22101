package validation_test

import (
	"strings"
	"testing"

	"company-services/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestSchemaCheck(t *testing.T) {
	schema := validation.NewSchema(
		validation.Field{Name: "compName", Kind: validation.String, Max: 25},
		validation.Field{Name: "deptNum", Kind: validation.String, Max: 20},
		validation.Field{Name: "salary", Kind: validation.Number},
	)

	t.Run("valid payload", func(t *testing.T) {
		reason := schema.Check(map[string]any{
			"compName": "Acme",
			"deptNum":  "d10",
			"salary":   float64(1000),
		})
		assert.Empty(t, reason)
	})

	t.Run("missing field cites first in declaration order", func(t *testing.T) {
		reason := schema.Check(map[string]any{"deptNum": "d10", "salary": float64(1)})
		assert.Equal(t, "'compName' is required", reason)
	})

	t.Run("wrong kind", func(t *testing.T) {
		reason := schema.Check(map[string]any{
			"compName": float64(1),
			"deptNum":  "d10",
			"salary":   float64(1),
		})
		assert.Equal(t, "'compName' must be a string", reason)
	})

	t.Run("length cap", func(t *testing.T) {
		reason := schema.Check(map[string]any{
			"compName": strings.Repeat("a", 26),
			"deptNum":  "d10",
			"salary":   float64(1),
		})
		assert.Equal(t, "'compName' length must be less than or equal to 25 characters long", reason)
	})

	t.Run("number field rejects non-numeric", func(t *testing.T) {
		reason := schema.Check(map[string]any{
			"compName": "Acme",
			"deptNum":  "d10",
			"salary":   "lots",
		})
		assert.Equal(t, "'salary' must be a number", reason)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		reason := schema.Check(map[string]any{
			"compName": "Acme",
			"deptNum":  "d10",
			"salary":   float64(1),
			"extra":    "whatever",
		})
		assert.Empty(t, reason)
	})

	t.Run("field names keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"compName", "deptNum", "salary"}, schema.FieldNames())
	})
}
