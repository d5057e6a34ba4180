package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Profile defaults for a user created on first use.
const (
	DefaultAge    = 10
	DefaultLexile = 600
)

// Lexile bounds enforced on writes.
const (
	MinLexile = 200
	MaxLexile = 1700
)

// User is a learner profile. Provider and Model record the last
// preference used for generation so the next run picks them up.
type User struct {
	Name      string
	Age       int
	Lexile    int
	Provider  string
	Model     string
	CreatedAt time.Time
}

// UserRepo persists learner profiles.
type UserRepo interface {
	// Get returns the profile, or nil if the user doesn't exist.
	Get(ctx context.Context, name string) (*User, error)

	// GetOrCreate returns the profile, creating it with defaults first
	// if needed.
	GetOrCreate(ctx context.Context, name string) (*User, error)

	// Save writes the full profile, inserting or replacing.
	Save(ctx context.Context, u *User) error

	// SetPreferences records the provider/model pair used last.
	SetPreferences(ctx context.Context, name, provider, model string) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]User, error)
}

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) Get(ctx context.Context, name string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT username, age, lexile, provider, model, created_at
		 FROM users WHERE username = ?`, name)

	var u User
	err := row.Scan(&u.Name, &u.Age, &u.Lexile, &u.Provider, &u.Model, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", name, err)
	}
	return &u, nil
}

func (r *userRepo) GetOrCreate(ctx context.Context, name string) (*User, error) {
	u, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &User{
		Name:      name,
		Age:       DefaultAge,
		Lexile:    DefaultLexile,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) Save(ctx context.Context, u *User) error {
	if u.Lexile < MinLexile || u.Lexile > MaxLexile {
		return fmt.Errorf("lexile %d out of range [%d, %d]", u.Lexile, MinLexile, MaxLexile)
	}
	if u.Age <= 0 {
		return fmt.Errorf("age must be positive, got %d", u.Age)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, age, lexile, provider, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (username) DO UPDATE SET
			age = excluded.age,
			lexile = excluded.lexile,
			provider = excluded.provider,
			model = excluded.model`,
		u.Name, u.Age, u.Lexile, u.Provider, u.Model, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("save user %q: %w", u.Name, err)
	}
	return nil
}

func (r *userRepo) SetPreferences(ctx context.Context, name, provider, model string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET provider = ?, model = ? WHERE username = ?`,
		provider, model, name)
	if err != nil {
		return fmt.Errorf("set preferences for %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("set preferences: user %q not found", name)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, age, lexile, provider, model, created_at
		 FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Name, &u.Age, &u.Lexile, &u.Provider, &u.Model, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
