package translator

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		contains []string
	}{
		{
			name: "known code resolves to language name",
			code: "fr",
			contains: []string{
				"French",
				"Detect the source language",
				"Output ONLY the translation",
			},
		},
		{
			name:     "another known code",
			code:     "ja",
			contains: []string{"Japanese"},
		},
		{
			name:     "unknown code passed through",
			code:     "xx",
			contains: []string{"Translate the input into xx"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildSystemPrompt(tc.code)
			for _, expected := range tc.contains {
				if !strings.Contains(prompt, expected) {
					t.Errorf("expected prompt to contain %q, got: %s", expected, prompt)
				}
			}
		})
	}
}

func TestBuildSystemPromptNeverNamesSource(t *testing.T) {
	// The source side is engine-detected; the prompt must not pin one.
	prompt := BuildSystemPrompt("de")
	if strings.Contains(prompt, "from English") {
		t.Errorf("prompt pins a source language: %s", prompt)
	}
}
