package reading

import (
	"fmt"
	"strings"
)

const articleSystemPrompt = `You are a professional English teacher who excels at creating appropriate reading materials for beginners. You must return valid JSON format only.`

// maxPromptWords caps how many word-bank entries are embedded verbatim
// in the prompt. Anything beyond it becomes a remainder-count note.
const maxPromptWords = 50

const questionRequirements = `5 Test Questions Requirements:
- 2 multiple choice questions (4 options A/B/C/D)
- 2 fill-in-the-blank questions (test vocabulary and grammar)
- 1 true/false question`

const jsonShapeBlock = `Please return in JSON format:
{
  "article": "article content here",
  "questions": [
    {
      "type": "multiple_choice",
      "question": "question text",
      "options": ["A. option1", "B. option2", "C. option3", "D. option4"],
      "correct_answer": "A"
    },
    {
      "type": "fill_blank",
      "question": "question text (use ___ for blank)",
      "correct_answer": "answer"
    },
    {
      "type": "true_false",
      "question": "question text",
      "correct_answer": true
    }
  ]
}

IMPORTANT: Return ONLY valid JSON, no other text.`

// BuildArticlePrompts renders the system and user prompts for article
// and question generation. Pure and deterministic: identical inputs
// always produce identical strings.
//
// With a non-empty word list the instructions require the article to
// use at least 80% of the supplied words. With an empty list that
// requirement is dropped and difficulty is driven purely by the Lexile
// value, with explicit vocabulary and grammar banding per Lexile range.
func BuildArticlePrompts(words []string, age, lexile int, category Category) (system, user string) {
	var b strings.Builder

	b.WriteString("Please generate an English reading article and 5 test questions based on the following information:\n\n")
	b.WriteString("User Information:\n")
	fmt.Fprintf(&b, "- Age: %d years old\n", age)
	fmt.Fprintf(&b, "- Lexile Level: %d (grammar and sentence complexity indicator)\n", lexile)
	fmt.Fprintf(&b, "- Article Type: %s - Create %s\n", category, category.Description())

	if len(words) == 0 {
		b.WriteString("\nRequirements:\n")
		b.WriteString("1. Article length: 150-250 words\n")
		fmt.Fprintf(&b, "2. The article MUST be %s\n", category.Description())
		fmt.Fprintf(&b, "3. Vocabulary and grammar difficulty should STRICTLY match the Lexile level %d\n", lexile)
		fmt.Fprintf(&b, "4. Content should be age-appropriate, interesting, and educational for %d-year-old students\n", age)
		fmt.Fprintf(&b, "5. Choose appropriate vocabulary and sentence structures based on Lexile %d:\n", lexile)
		b.WriteString("   - Lexile 200-400: Simple present/past tense, basic vocabulary, short sentences\n")
		b.WriteString("   - Lexile 400-600: Introduction of complex sentences, common phrasal verbs\n")
		b.WriteString("   - Lexile 600-800: More varied tenses, intermediate vocabulary, compound sentences\n")
		b.WriteString("   - Lexile 800-1000: Advanced grammar structures, academic vocabulary\n")
		b.WriteString("   - Lexile 1000+: Complex syntax, sophisticated vocabulary, nuanced expressions\n")
	} else {
		fmt.Fprintf(&b, "\nWord Bank: %s\n", formatWordBank(words))
		b.WriteString("\nRequirements:\n")
		b.WriteString("1. Article length: 150-250 words\n")
		fmt.Fprintf(&b, "2. The article MUST be %s\n", category.Description())
		b.WriteString("3. Must use at least 80% of the words from the word bank\n")
		b.WriteString("4. Grammar difficulty should match the Lexile level\n")
		b.WriteString("5. Content should be age-appropriate, interesting, and educational\n")
	}

	b.WriteString("\n")
	b.WriteString(questionRequirements)
	b.WriteString("\n\n")
	b.WriteString(jsonShapeBlock)

	return articleSystemPrompt, b.String()
}

// formatWordBank joins at most maxPromptWords entries and notes how
// many were left out.
func formatWordBank(words []string) string {
	if len(words) <= maxPromptWords {
		return strings.Join(words, ", ")
	}
	return fmt.Sprintf("%s (and %d more words)",
		strings.Join(words[:maxPromptWords], ", "), len(words)-maxPromptWords)
}
