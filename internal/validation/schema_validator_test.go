package validation

import (
	"strings"
	"testing"
	"testing/fstest"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {
			"type": "string"
		},
		"age": {
			"type": "integer",
			"minimum": 0
		}
	},
	"required": ["name"]
}`

func newTestValidator() SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"test.schema.json":   &fstest.MapFile{Data: []byte(testSchema)},
		"broken.schema.json": &fstest.MapFile{Data: []byte(`{not json`)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := newTestValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid data",
			data:      `{"name": "John", "age": 30}`,
			wantError: false,
		},
		{
			name:      "valid data without optional field",
			data:      `{"name": "Jane"}`,
			wantError: false,
		},
		{
			name:      "missing required field",
			data:      `{"age": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"name": "John", "age": "thirty"}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "constraint violation",
			data:      `{"name": "John", "age": -5}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": "John", "age": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "test.schema.json")

			if tt.wantError {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.errorMsg)
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error containing %q, got: %v", tt.errorMsg, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	validator := newTestValidator()

	if err := validator.ValidateBytes([]byte(`{}`), "missing.schema.json"); err == nil {
		t.Error("Expected error for missing schema")
	}

	err := validator.ValidateBytes([]byte(`{}`), "broken.schema.json")
	if err == nil || !strings.Contains(err.Error(), "failed to parse schema JSON") {
		t.Errorf("Expected schema parse error, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := newTestValidator().(*validator)

	for i := 0; i < 2; i++ {
		if err := v.ValidateBytes([]byte(`{"name": "x"}`), "test.schema.json"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected one cached schema, got %d", len(v.schemas))
	}
}
