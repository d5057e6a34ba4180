package reading

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildArticlePrompts_Deterministic(t *testing.T) {
	words := []string{"ocean", "wave", "shore"}

	sys1, user1 := BuildArticlePrompts(words, 9, 650, CategoryNature)
	sys2, user2 := BuildArticlePrompts(words, 9, 650, CategoryNature)

	if sys1 != sys2 || user1 != user2 {
		t.Fatal("identical inputs must produce identical prompts")
	}
}

func TestBuildArticlePrompts_WithWords(t *testing.T) {
	_, user := BuildArticlePrompts([]string{"ocean", "wave"}, 9, 650, CategoryNature)

	for _, want := range []string{
		"Age: 9 years old",
		"Lexile Level: 650",
		"Word Bank: ocean, wave",
		"at least 80% of the words",
		"2 multiple choice questions",
		"2 fill-in-the-blank questions",
		"1 true/false question",
		"Return ONLY valid JSON",
		CategoryNature.Description(),
	} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Lexile banding only applies when no words are supplied.
	if strings.Contains(user, "Lexile 200-400") {
		t.Error("word-bank prompt should not contain Lexile banding")
	}
}

func TestBuildArticlePrompts_WithoutWords(t *testing.T) {
	_, user := BuildArticlePrompts(nil, 11, 850, CategoryHistory)

	for _, want := range []string{
		"STRICTLY match the Lexile level 850",
		"Lexile 200-400: Simple present/past tense",
		"Lexile 1000+: Complex syntax",
		CategoryHistory.Description(),
	} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(user, "Word Bank") {
		t.Error("empty word list must not produce a word bank section")
	}
	if strings.Contains(user, "80%") {
		t.Error("empty word list must not require word usage")
	}
}

func TestBuildArticlePrompts_TruncatesLongWordBank(t *testing.T) {
	words := make([]string, 64)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}

	_, user := BuildArticlePrompts(words, 10, 600, CategoryStory)

	if !strings.Contains(user, "(and 14 more words)") {
		t.Error("expected remainder note for words beyond the cap")
	}
	if !strings.Contains(user, "word49") {
		t.Error("expected the 50th word to be embedded")
	}
	if strings.Contains(user, "word50") {
		t.Error("words beyond the cap must not be embedded verbatim")
	}
}

func TestBuildArticlePrompts_SystemPrompt(t *testing.T) {
	sys, _ := BuildArticlePrompts(nil, 10, 600, CategoryStory)
	if !strings.Contains(sys, "professional English teacher") {
		t.Errorf("unexpected system prompt: %q", sys)
	}
	if !strings.Contains(sys, "valid JSON") {
		t.Errorf("system prompt must demand JSON: %q", sys)
	}
}

func TestFormatWordBank_AtCap(t *testing.T) {
	words := make([]string, maxPromptWords)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	out := formatWordBank(words)
	if strings.Contains(out, "more words") {
		t.Error("exactly the cap should not produce a remainder note")
	}
}
