package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/readleaf/readleaf/internal/reading"
)

// Attempt statuses. A generated attempt has content but no answers; a
// completed one carries the submitted answers and the grading verdict.
const (
	StatusGenerated = "generated"
	StatusCompleted = "completed"
)

// ErrAttemptNotFound is returned when an attempt id doesn't exist.
var ErrAttemptNotFound = errors.New("attempt not found")

// Attempt is one practice round: the generated content, and once the
// learner has answered, their answers and the evaluation.
type Attempt struct {
	ID        string
	Username  string
	CreatedAt time.Time
	Status    string
	Category  reading.Category

	Content    reading.GeneratedContent
	Answers    []string
	Evaluation *reading.Evaluation
}

// attemptPayload is the JSON stored in the payload column. Field names
// match the on-disk practice logs from before the SQLite migration so
// old exports stay readable.
type attemptPayload struct {
	Article         string                 `json:"article"`
	Questions       []reading.Question     `json:"questions"`
	UserAnswers     []string               `json:"user_answers,omitempty"`
	Score           *int                   `json:"score,omitempty"`
	ItemAnalysis    []reading.ItemAnalysis `json:"item_analysis,omitempty"`
	OverallFeedback string                 `json:"overall_feedback,omitempty"`
	Suggestions     string                 `json:"suggestions,omitempty"`
}

// AttemptRepo persists practice attempts.
type AttemptRepo interface {
	// SaveGenerated stores freshly generated content and returns the new
	// attempt with its id and timestamp filled in.
	SaveGenerated(ctx context.Context, username string, category reading.Category, content reading.GeneratedContent) (*Attempt, error)

	// Complete attaches answers and the evaluation to an attempt and
	// marks it completed.
	Complete(ctx context.Context, id string, answers []string, eval *reading.Evaluation) error

	// Get returns one attempt by id, or ErrAttemptNotFound.
	Get(ctx context.Context, id string) (*Attempt, error)

	// List returns the user's attempts newest first.
	List(ctx context.Context, username string, limit int) ([]Attempt, error)

	// LatestGenerated returns the user's most recent attempt still in
	// the generated state, or ErrAttemptNotFound.
	LatestGenerated(ctx context.Context, username string) (*Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) SaveGenerated(ctx context.Context, username string, category reading.Category, content reading.GeneratedContent) (*Attempt, error) {
	a := &Attempt{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
		Status:    StatusGenerated,
		Category:  category,
		Content:   content,
	}

	payload, err := json.Marshal(attemptPayload{
		Article:   content.Article,
		Questions: content.Questions,
	})
	if err != nil {
		return nil, fmt.Errorf("encode attempt payload: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, username, created_at, status, category, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.CreatedAt, a.Status, string(a.Category), string(payload))
	if err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	return a, nil
}

func (r *attemptRepo) Complete(ctx context.Context, id string, answers []string, eval *reading.Evaluation) error {
	a, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	p := attemptPayload{
		Article:     a.Content.Article,
		Questions:   a.Content.Questions,
		UserAnswers: answers,
	}
	if eval != nil {
		p.Score = &eval.Score
		p.ItemAnalysis = eval.ItemAnalysis
		p.OverallFeedback = eval.OverallFeedback
		p.Suggestions = eval.Suggestions
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode attempt payload: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE attempts SET status = ?, payload = ? WHERE id = ?`,
		StatusCompleted, string(payload), id)
	if err != nil {
		return fmt.Errorf("complete attempt %s: %w", id, err)
	}
	return nil
}

func (r *attemptRepo) Get(ctx context.Context, id string) (*Attempt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, created_at, status, category, payload
		 FROM attempts WHERE id = ?`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrAttemptNotFound, id)
	}
	return a, err
}

func (r *attemptRepo) List(ctx context.Context, username string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, created_at, status, category, payload
		 FROM attempts WHERE username = ?
		 ORDER BY created_at DESC LIMIT ?`, username, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts for %q: %w", username, err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, rows.Err()
}

func (r *attemptRepo) LatestGenerated(ctx context.Context, username string) (*Attempt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, created_at, status, category, payload
		 FROM attempts WHERE username = ? AND status = ?
		 ORDER BY created_at DESC LIMIT 1`, username, StatusGenerated)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no pending attempt for %q", ErrAttemptNotFound, username)
	}
	return a, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*Attempt, error) {
	var (
		a        Attempt
		category string
		payload  string
	)
	if err := row.Scan(&a.ID, &a.Username, &a.CreatedAt, &a.Status, &category, &payload); err != nil {
		return nil, err
	}
	a.Category = reading.Category(category)

	var p attemptPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decode attempt %s payload: %w", a.ID, err)
	}
	a.Content = reading.GeneratedContent{Article: p.Article, Questions: p.Questions}
	a.Answers = p.UserAnswers
	if p.Score != nil {
		a.Evaluation = &reading.Evaluation{
			Score:           *p.Score,
			ItemAnalysis:    p.ItemAnalysis,
			OverallFeedback: p.OverallFeedback,
			Suggestions:     p.Suggestions,
		}
	}
	return &a, nil
}
