package openai

import (
	"fmt"
	"strings"

	"github.com/bnema/studymate/internal/domain"
)

func userPrompt(prompt string) []domain.ChatMessage {
	return []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: prompt}}
}

func flashcardsPrompt(content string, opts domain.GenerationOptions) string {
	return fmt.Sprintf(`Generate %d flashcards from the following content. Each flashcard should have a front (question) and back (answer). Format as JSON array with objects containing "front", "back", "difficulty", and "tags" fields.

Content:
%s

Difficulty level: %s
Focus areas: %s

Return only the JSON array, no additional text.`, opts.Count, content, opts.Difficulty, strings.Join(opts.FocusAreas, ", "))
}

func studyGuidePrompt(content string, opts domain.GenerationOptions) string {
	return fmt.Sprintf(`Create a comprehensive study guide from the following content. Include a title, overview, and organized sections. Format as JSON with "title", "content", and "sections" fields, where each section is an object with "title" and "content".

Content:
%s

Difficulty level: %s
Focus areas: %s

Return only the JSON object, no additional text.`, content, opts.Difficulty, strings.Join(opts.FocusAreas, ", "))
}

func testPrompt(content string, opts domain.GenerationOptions) string {
	return fmt.Sprintf(`Generate a test with %d questions from the following content. Include multiple choice, short answer, and essay questions. Format as JSON with "title" and "questions" array.

Content:
%s

Difficulty level: %s
Focus areas: %s

Each question should have: type (multiple_choice, short_answer or essay), prompt, options (for multiple choice), correctAnswer, and points.

Return only the JSON object, no additional text.`, opts.Count, content, opts.Difficulty, strings.Join(opts.FocusAreas, ", "))
}
