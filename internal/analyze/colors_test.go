// internal/analyze/colors_test.go
package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

func TestNormalizeColor(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "rgb declaration", input: "rgb(255, 0, 0)", expected: "#ff0000"},
		{name: "rgba declaration drops alpha", input: "rgba(0, 102, 204, 0.5)", expected: "#0066cc"},
		{name: "whitespace variant", input: "rgb( 16 , 32 , 48 )", expected: "#102030"},
		{name: "hex passes through unchanged", input: "#AbCdEf", expected: "#AbCdEf"},
		{name: "short hex passes through unchanged", input: "#fff", expected: "#fff"},
		{name: "out of range channels clamp", input: "rgb(300, 999, 0)", expected: "#ffff00"},
		{name: "unparseable defaults to black", input: "currentColor", expected: "#000000"},
		{name: "empty string defaults to black", input: "", expected: "#000000"},
		{name: "leading whitespace trimmed", input: "  rgb(1, 2, 3)", expected: "#010203"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeColor(tc.input))
		})
	}
}

// Normalization must be idempotent: feeding an output back in returns it
// byte for byte.
func TestNormalizeColorIdempotent(t *testing.T) {
	inputs := []string{"rgb(255, 0, 0)", "rgba(10, 20, 30, 1)", "#336699", "not-a-color"}
	for _, in := range inputs {
		once := NormalizeColor(in)
		assert.Equal(t, once, NormalizeColor(once), "input %q", in)
	}
}

func TestRoleOf(t *testing.T) {
	testCases := []struct {
		hex      string
		expected schemas.ColorRole
	}{
		{"#ffffff", schemas.RoleBackground},
		{"#000000", schemas.RoleText},
		{"#0066cc", schemas.RoleAccent},
		{"#fff", schemas.RoleBackground},
		{"not-hex", schemas.RoleText}, // decodes as black
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RoleOf(tc.hex), "hex %q", tc.hex)
	}
}

func TestBuildColorScheme(t *testing.T) {
	t.Run("first three colors in extraction order", func(t *testing.T) {
		scheme := buildColorScheme([]string{
			"rgb(255, 255, 255)",
			"rgb(0, 0, 0)",
			"rgb(0, 102, 204)",
			"rgb(200, 200, 200)",
		})
		assert.Equal(t, "#ffffff", scheme.Primary)
		assert.Equal(t, "#000000", scheme.Secondary)
		assert.Equal(t, "#0066cc", scheme.Accent)
		assert.Len(t, scheme.All, 4)
	})

	t.Run("duplicates collapse before assignment", func(t *testing.T) {
		scheme := buildColorScheme([]string{
			"rgb(255, 0, 0)",
			"#ff0000", // same color after normalization
			"rgb(0, 255, 0)",
		})
		assert.Equal(t, "#ff0000", scheme.Primary)
		assert.Equal(t, "#00ff00", scheme.Secondary)
		assert.Len(t, scheme.All, 2)
	})

	t.Run("defaults fill missing slots", func(t *testing.T) {
		scheme := buildColorScheme([]string{"rgb(17, 17, 17)"})
		assert.Equal(t, "#111111", scheme.Primary)
		assert.Equal(t, "#666666", scheme.Secondary)
		assert.Equal(t, "#0066cc", scheme.Accent)
	})

	t.Run("empty input yields the full default palette", func(t *testing.T) {
		scheme := buildColorScheme(nil)
		assert.Equal(t, "#000000", scheme.Primary)
		assert.Equal(t, "#666666", scheme.Secondary)
		assert.Equal(t, "#0066cc", scheme.Accent)
		assert.Empty(t, scheme.All)
	})
}
