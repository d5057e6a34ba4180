package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// WordRepo persists each user's word bank. Order is the order words
// were added; generation embeds them in that order.
type WordRepo interface {
	// List returns the word bank in insertion order.
	List(ctx context.Context, username string) ([]string, error)

	// Set replaces the whole word bank.
	Set(ctx context.Context, username string, words []string) error

	// Add appends words, skipping case-insensitive duplicates of
	// existing entries. Returns the words actually added.
	Add(ctx context.Context, username string, words []string) ([]string, error)

	// Dedupe removes case-insensitive duplicates keeping the first
	// occurrence, and returns how many entries were removed.
	Dedupe(ctx context.Context, username string) (int, error)
}

type wordRepo struct {
	db *sql.DB
}

func (r *wordRepo) List(ctx context.Context, username string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT word FROM words WHERE username = ? ORDER BY position`, username)
	if err != nil {
		return nil, fmt.Errorf("list words for %q: %w", username, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (r *wordRepo) Set(ctx context.Context, username string, words []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM words WHERE username = ?`, username); err != nil {
		return fmt.Errorf("clear words for %q: %w", username, err)
	}
	for i, w := range words {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO words (username, position, word) VALUES (?, ?, ?)`,
			username, i, w); err != nil {
			return fmt.Errorf("insert word %q: %w", w, err)
		}
	}
	return tx.Commit()
}

func (r *wordRepo) Add(ctx context.Context, username string, words []string) ([]string, error) {
	existing, err := r.List(ctx, username)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing))
	for _, w := range existing {
		seen[strings.ToLower(w)] = true
	}

	var added []string
	merged := existing
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, w)
		added = append(added, w)
	}

	if len(added) == 0 {
		return nil, nil
	}
	if err := r.Set(ctx, username, merged); err != nil {
		return nil, err
	}
	return added, nil
}

func (r *wordRepo) Dedupe(ctx context.Context, username string) (int, error) {
	words, err := r.List(ctx, username)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(words))
	kept := words[:0:0]
	for _, w := range words {
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, w)
	}

	removed := len(words) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := r.Set(ctx, username, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
