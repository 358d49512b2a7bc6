package summarizer

import "fmt"

// BuildSystemPrompt generates the system prompt carrying the generation
// bounds. Lengths are in words.
func BuildSystemPrompt(maxLength, minLength int) string {
	prompt := "You are a meeting summarization engine. You condense transcripts into their key points.\n\n"
	prompt += "Rules:\n"
	prompt += fmt.Sprintf("- The summary must be between %d and %d words\n", minLength, maxLength)
	prompt += "- Keep the same language as the input\n"
	prompt += "- Cover decisions, action items, and main topics\n"
	prompt += "- Do not add information that is not in the transcript\n"
	prompt += "- Output ONLY the summary, nothing else\n"

	return prompt
}
