// internal/llmutil/parser_test.go
package llmutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type advicePayload struct {
	Improvements []string `json:"improvements"`
	UX           []string `json:"ux"`
}

func TestParseJSONResponse(t *testing.T) {
	testCases := []struct {
		name     string
		response string
		wantErr  bool
	}{
		{
			name:     "bare object",
			response: `{"improvements": ["a"], "ux": ["b"]}`,
		},
		{
			name:     "fenced json block",
			response: "```json\n{\"improvements\": [\"a\"], \"ux\": [\"b\"]}\n```",
		},
		{
			name:     "fenced block without language tag",
			response: "```\n{\"improvements\": [\"a\"], \"ux\": [\"b\"]}\n```",
		},
		{
			name:     "conversational wrapper",
			response: `Sure! Here is the JSON you asked for: {"improvements": ["a"], "ux": ["b"]} Hope that helps.`,
		},
		{
			name:     "leading and trailing whitespace",
			response: "\n\n  {\"improvements\": [\"a\"], \"ux\": [\"b\"]}  \n",
		},
		{
			name:     "plain prose",
			response: "I cannot produce that.",
			wantErr:  true,
		},
		{
			name:     "truncated object",
			response: `{"improvements": ["a"`,
			wantErr:  true,
		},
		{
			name:     "empty string",
			response: "",
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseJSONResponse[advicePayload](tc.response)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"a"}, parsed.Improvements)
			assert.Equal(t, []string{"b"}, parsed.UX)
		})
	}
}

func TestParseJSONResponseArray(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		parsed, err := ParseJSONResponse[[]string](`["x", "y"]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, *parsed)
	})

	t.Run("fenced array", func(t *testing.T) {
		parsed, err := ParseJSONResponse[[]string]("```json\n[\"x\", \"y\"]\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, *parsed)
	})

	t.Run("array in conversational text", func(t *testing.T) {
		parsed, err := ParseJSONResponse[[]string](`The list is ["x", "y"] as requested.`)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, *parsed)
	})
}

func TestParseJSONResponseNestedBraces(t *testing.T) {
	// The widest bracket span must cover nested objects.
	response := `Result: {"improvements": ["a"], "ux": ["b"], "meta": {"inner": true}} done.`
	type withMeta struct {
		Meta map[string]bool `json:"meta"`
	}
	parsed, err := ParseJSONResponse[withMeta](response)
	require.NoError(t, err)
	assert.True(t, parsed.Meta["inner"])
}
