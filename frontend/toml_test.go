package frontend

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleZiustToml(t *testing.T) {
	zt, err := HandleZiustToml(`
name = "demo"
version = "0.1.0"
workers = 4
prelude = true
exclude = ["src/scratch.zt"]
`)
	require.NoError(t, err)
	assert.Equal(t, "demo", zt.Name)
	assert.Equal(t, DefaultSrc, zt.Src)
	assert.Equal(t, 4, zt.Workers)
	assert.True(t, zt.Prelude)
	assert.True(t, zt.Excludes("src/scratch.zt"))
	assert.False(t, zt.Excludes("src/main.zt"))
}

func TestHandleZiustTomlCustomSrc(t *testing.T) {
	zt, err := HandleZiustToml("name = \"a\"\nversion = \"1\"\nsrc = \"lib\"\n")
	require.NoError(t, err)
	assert.Equal(t, "lib", zt.Src)
}

func TestHandleZiustTomlErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"missing name", `version = "1"`, "Name"},
		{"missing version", `name = "a"`, "Version"},
		{"negative workers", "name = \"a\"\nversion = \"1\"\nworkers = -1", "Workers"},
		{"too many workers", "name = \"a\"\nversion = \"1\"\nworkers = 1000", "Workers"},
		{"empty exclude", "name = \"a\"\nversion = \"1\"\nexclude = [\"\"]", "Exclude[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HandleZiustToml(tt.content)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestHandleZiustTomlUnknownKey(t *testing.T) {
	_, err := HandleZiustToml("name = \"a\"\nversion = \"1\"\nlib = true\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lib")
}

func TestHandleZiustTomlSyntax(t *testing.T) {
	_, err := HandleZiustToml("name = ")
	assert.Error(t, err)
}
