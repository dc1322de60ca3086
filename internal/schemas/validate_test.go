package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["mode"],
	"properties": {
		"mode": {"type": "string", "enum": ["balanced", "clarity"]},
		"verbose": {"type": "boolean"}
	},
	"additionalProperties": false
}`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSONString(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		err := ValidateJSONString(testSchema, `{"mode": "clarity", "verbose": true}`)
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := ValidateJSONString(testSchema, `{"verbose": true}`)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.NotEmpty(t, validationErr.Errors)
	})

	t.Run("enum violation names the field", func(t *testing.T) {
		err := ValidateJSONString(testSchema, `{"mode": "poetic"}`)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Errors, 1)
		assert.Equal(t, "mode", validationErr.Errors[0].Field)
	})

	t.Run("unknown property rejected", func(t *testing.T) {
		err := ValidateJSONString(testSchema, `{"mode": "balanced", "extra": 1}`)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("broken schema is a load error", func(t *testing.T) {
		err := ValidateJSONString(`{"type": `, `{}`)
		var loadErr *SchemaLoadError
		require.ErrorAs(t, err, &loadErr)
	})
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFixture(t, dir, "schema.json", testSchema)

	t.Run("valid file", func(t *testing.T) {
		jsonPath := writeFixture(t, dir, "valid.json", `{"mode": "balanced"}`)
		assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
	})

	t.Run("invalid file", func(t *testing.T) {
		jsonPath := writeFixture(t, dir, "invalid.json", `{"mode": 3}`)
		err := ValidateJSON(schemaPath, jsonPath)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("missing schema file", func(t *testing.T) {
		jsonPath := writeFixture(t, dir, "doc.json", `{"mode": "balanced"}`)
		err := ValidateJSON(filepath.Join(dir, "absent.json"), jsonPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("missing document file", func(t *testing.T) {
		err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestResolveSchemaPath(t *testing.T) {
	t.Run("repository schema is reachable", func(t *testing.T) {
		got := ResolveSchemaPath(filepath.Join("schemas", "rewrite_config.schema.json"))
		require.NotEmpty(t, got)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("unknown path resolves to empty", func(t *testing.T) {
		assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "no_such.schema.json")))
	})
}
