package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

func TestUserStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewUserStore(filepath.Join(t.TempDir(), "users.csv"))
	require.NoError(t, err)

	u := &domain.User{Name: "Meera Nair", Email: "meera@example.com", PasswordHash: "hash"}
	require.NoError(t, s.Append(ctx, u))

	found, err := s.FindByEmail(ctx, "meera@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.Name, found.Name)
	assert.Equal(t, u.PasswordHash, found.PasswordHash)

	_, err = s.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserStoreRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, err := NewUserStore(filepath.Join(t.TempDir(), "users.csv"))
	require.NoError(t, err)

	require.NoError(t, s.Append(ctx, &domain.User{Name: "A", Email: "a@example.com", PasswordHash: "h1"}))
	err = s.Append(ctx, &domain.User{Name: "B", Email: "a@example.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}
