package translator

import (
	"fmt"

	"github.com/leonardotrapani/voicelab/internal/language"
)

// BuildSystemPrompt generates the system prompt pinning the target language.
// The source language is never named so the engine detects it.
func BuildSystemPrompt(targetLang string) string {
	target := language.FromCode(targetLang).Name
	if target == language.Auto.Name {
		// Unknown code: pass it through verbatim and let the engine cope.
		target = targetLang
	}

	prompt := "You are a translation engine.\n\n"
	prompt += "Rules:\n"
	prompt += "- Detect the source language of the input automatically\n"
	prompt += fmt.Sprintf("- Translate the input into %s\n", target)
	prompt += "- Preserve meaning, tone, and formatting\n"
	prompt += "- Do not add explanations or notes\n"
	prompt += "- Output ONLY the translation, nothing else\n"

	return prompt
}
