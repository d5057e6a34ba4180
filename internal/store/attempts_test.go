package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readleaf/readleaf/internal/reading"
)

func sampleContent(t *testing.T) reading.GeneratedContent {
	t.Helper()
	raw := `{
		"article": "The fox jumps over the pond.",
		"questions": [
			{"type": "multiple_choice", "question": "What jumps?", "options": ["A. fox", "B. dog"], "correct_answer": "A"},
			{"type": "true_false", "question": "The pond is loud.", "correct_answer": false}
		]
	}`
	var c reading.GeneratedContent
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	return c
}

func TestAttemptRepo_SaveGeneratedAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, err := s.Attempts().SaveGenerated(ctx, "mia", reading.CategoryNature, sampleContent(t))
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.Equal(t, StatusGenerated, a.Status)

	got, err := s.Attempts().Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "mia", got.Username)
	require.Equal(t, reading.CategoryNature, got.Category)
	require.Equal(t, "The fox jumps over the pond.", got.Content.Article)
	require.Len(t, got.Content.Questions, 2)
	require.Nil(t, got.Evaluation)

	// Answer types survive the payload round-trip.
	require.Equal(t, "A", got.Content.Questions[0].CorrectAnswer.String())
	v, ok := got.Content.Questions[1].CorrectAnswer.Bool()
	require.True(t, ok)
	require.False(t, v)
}

func TestAttemptRepo_GetUnknownFails(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Attempts().Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestAttemptRepo_Complete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, err := s.Attempts().SaveGenerated(ctx, "mia", reading.CategoryStory, sampleContent(t))
	require.NoError(t, err)

	eval := &reading.Evaluation{
		Score: 75,
		ItemAnalysis: []reading.ItemAnalysis{
			{Correct: true, Feedback: "good"},
			{Correct: false, Feedback: "it is quiet"},
		},
		OverallFeedback: "nice work",
		Suggestions:     "reread the ending",
	}
	require.NoError(t, s.Attempts().Complete(ctx, a.ID, []string{"A", "true"}, eval))

	got, err := s.Attempts().Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, got.Status)
	require.Equal(t, []string{"A", "true"}, got.Answers)
	require.NotNil(t, got.Evaluation)
	require.Equal(t, 75, got.Evaluation.Score)
	require.Len(t, got.Evaluation.ItemAnalysis, 2)
	require.Equal(t, "nice work", got.Evaluation.OverallFeedback)
}

func TestAttemptRepo_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Attempts().SaveGenerated(ctx, "mia", reading.CategoryStory, sampleContent(t))
	require.NoError(t, err)
	second, err := s.Attempts().SaveGenerated(ctx, "mia", reading.CategoryScience, sampleContent(t))
	require.NoError(t, err)

	// Another user's attempts stay out of the listing.
	_, err = s.Attempts().SaveGenerated(ctx, "noah", reading.CategoryStory, sampleContent(t))
	require.NoError(t, err)

	attempts, err := s.Attempts().List(ctx, "mia", 10)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	require.Equal(t, second.ID, attempts[0].ID)
	require.Equal(t, first.ID, attempts[1].ID)

	limited, err := s.Attempts().List(ctx, "mia", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestAttemptRepo_LatestGenerated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Attempts().LatestGenerated(ctx, "mia")
	require.ErrorIs(t, err, ErrAttemptNotFound)

	a, err := s.Attempts().SaveGenerated(ctx, "mia", reading.CategoryStory, sampleContent(t))
	require.NoError(t, err)

	latest, err := s.Attempts().LatestGenerated(ctx, "mia")
	require.NoError(t, err)
	require.Equal(t, a.ID, latest.ID)

	// Completed attempts no longer count as pending.
	require.NoError(t, s.Attempts().Complete(ctx, a.ID, []string{"A", "false"}, &reading.Evaluation{Score: 50}))
	_, err = s.Attempts().LatestGenerated(ctx, "mia")
	require.ErrorIs(t, err, ErrAttemptNotFound)
}
