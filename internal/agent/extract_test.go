package agent

import (
	"errors"
	"testing"
)

func TestExtractResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "<response>X</response>", "X"},
		{"upper case tags", "<RESPONSE>X</RESPONSE>", "X"},
		{"mixed case tags", "<Response>X</respONSE>", "X"},
		{"surrounding chatter", "Sure, here it is:\n<response>payload</response>\nHope that helps!", "payload"},
		{"multiline content", "<response>\nline1\nline2\n</response>", "line1\nline2"},
		{"markup inside", "<response>[{\"file\":\"a<b.go\"}]</response>", `[{"file":"a<b.go"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractResponse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractResponse_NoBlock(t *testing.T) {
	inputs := []string{
		"",
		"no tags at all",
		"<response>never closed",
		"closed only</response>",
	}

	for _, input := range inputs {
		_, err := ExtractResponse(input)
		if err == nil {
			t.Errorf("input %q: expected error", input)
			continue
		}

		var parseErr *ResponseParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("input %q: error type %T, want *ResponseParseError", input, err)
			continue
		}
		// Raw output is preserved byte-for-byte for diagnostics.
		if parseErr.Raw != input {
			t.Errorf("raw = %q, want %q", parseErr.Raw, input)
		}
	}
}
