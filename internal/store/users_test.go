package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRepo_GetAbsentIsNil(t *testing.T) {
	s := openTestStore(t)

	u, err := s.Users().Get(context.Background(), "ghost")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUserRepo_GetOrCreateDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.Users().GetOrCreate(ctx, "mia")
	require.NoError(t, err)
	require.Equal(t, "mia", u.Name)
	require.Equal(t, DefaultAge, u.Age)
	require.Equal(t, DefaultLexile, u.Lexile)

	// Second call returns the stored profile, not a fresh one.
	u.Age = 12
	require.NoError(t, s.Users().Save(ctx, u))

	again, err := s.Users().GetOrCreate(ctx, "mia")
	require.NoError(t, err)
	require.Equal(t, 12, again.Age)
}

func TestUserRepo_SaveValidatesLexile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		lexile int
		ok     bool
	}{
		{"below range", 150, false},
		{"lower bound", MinLexile, true},
		{"upper bound", MaxLexile, true},
		{"above range", 1800, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Users().Save(ctx, &User{Name: "lex-" + tt.name, Age: 10, Lexile: tt.lexile})
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestUserRepo_SaveRejectsNonPositiveAge(t *testing.T) {
	s := openTestStore(t)
	err := s.Users().Save(context.Background(), &User{Name: "kid", Age: 0, Lexile: 600})
	require.Error(t, err)
}

func TestUserRepo_SetPreferences(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetOrCreate(ctx, "mia")
	require.NoError(t, err)

	require.NoError(t, s.Users().SetPreferences(ctx, "mia", "dashscope", "qwen-plus"))

	u, err := s.Users().Get(ctx, "mia")
	require.NoError(t, err)
	require.Equal(t, "dashscope", u.Provider)
	require.Equal(t, "qwen-plus", u.Model)

	require.Error(t, s.Users().SetPreferences(ctx, "ghost", "openai", "gpt-4o"))
}

func TestUserRepo_List(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zoe", "adam"} {
		_, err := s.Users().GetOrCreate(ctx, name)
		require.NoError(t, err)
	}

	users, err := s.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "adam", users[0].Name)
	require.Equal(t, "zoe", users[1].Name)
}
