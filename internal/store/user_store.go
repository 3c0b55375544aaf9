package store

import (
	"context"
	"strings"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

var userHeader = []string{"Name", "Email", "PasswordHash"}

// UserStore is the append-only users table. Email uniqueness is the
// only integrity rule; the check and the append share the table lock.
type UserStore struct {
	t *table
}

// NewUserStore opens (or creates) the users table at path.
func NewUserStore(path string) (*UserStore, error) {
	t, err := openTable(path, userHeader)
	if err != nil {
		return nil, err
	}
	return &UserStore{t: t}, nil
}

// Append persists a new user, rejecting a reused email.
func (s *UserStore) Append(ctx context.Context, u *domain.User) error {
	switch {
	case strings.TrimSpace(u.Name) == "":
		return &domain.ValidationError{Field: "Name", Reason: "must not be empty"}
	case strings.TrimSpace(u.Email) == "":
		return &domain.ValidationError{Field: "Email", Reason: "must not be empty"}
	case u.PasswordHash == "":
		return &domain.ValidationError{Field: "PasswordHash", Reason: "must not be empty"}
	}

	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	rows, err := s.t.readAll()
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row[1] == u.Email {
			return domain.ErrEmailTaken
		}
	}

	return s.t.appendRow([]string{u.Name, u.Email, u.PasswordHash})
}

// FindByEmail returns the user registered under email, or ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	rows, err := s.t.readAll()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[1] == email {
			return &domain.User{Name: row[0], Email: row[1], PasswordHash: row[2]}, nil
		}
	}
	return nil, domain.ErrNotFound
}
