package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTextResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "The rewritten text.",
			want:  "The rewritten text.",
		},
		{
			name:  "fenced block",
			input: "```\nThe rewritten text.\n```",
			want:  "The rewritten text.",
		},
		{
			name:  "fenced block with language identifier",
			input: "```text\nThe rewritten text.\n```",
			want:  "The rewritten text.",
		},
		{
			name:  "surrounding whitespace",
			input: "  \n The rewritten text. \n ",
			want:  "The rewritten text.",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTextResponse(tt.input))
		})
	}
}
