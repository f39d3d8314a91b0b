package domain

import "fmt"

const promptTemplate = `You are an experienced medical educator writing board-style multiple-choice questions.

Write ONE clinical vignette question about the topic: %s

Answer using exactly these five sections, each label in uppercase on its own line, with a blank line between sections:

CLINICAL SCENARIO:
<a realistic patient vignette>

QUESTION:
<a single clear question stem>

OPTIONS:
A) <option>
B) <option>
C) <option>
D) <option>
E) <option>

CORRECT ANSWER:
<the single letter of the correct option>

EXPLANATION:
<why the correct option is right and why the others are wrong>

Do not add any text before or after these sections.`

// ReferencePrefix introduces user supplied reference material in the prompt.
const ReferencePrefix = "\n\nReference text:\n"

// PromptFor returns the generation prompt with the topic substituted.
func PromptFor(topic string) string {
	return fmt.Sprintf(promptTemplate, topic)
}

// ReferenceBlock returns the reference text with its fixed prefix, or "" when
// there is no reference text.
func ReferenceBlock(referenceText string) string {
	if referenceText == "" {
		return ""
	}
	return ReferencePrefix + referenceText
}

// BuildPrompt is the full text sent to the model. The token estimator counts
// exactly this string.
func BuildPrompt(topic, referenceText string) string {
	return PromptFor(topic) + ReferenceBlock(referenceText)
}
