package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/event-assistant/internal/persistence"
)

// CreateUser registers a user on first contact. Registering an existing user
// is a no-op so the start command can call it unconditionally.
func (s *Store) CreateUser(ctx context.Context, id int64, language string) error {
	if language == "" {
		language = "en"
	}
	_, err := s.helper.Exec(ctx,
		"INSERT OR IGNORE INTO users (user_id, language) VALUES (?, ?)",
		id, language,
	)
	return s.mapper.MapError(err)
}

// GetUser retrieves a user by platform id.
func (s *Store) GetUser(ctx context.Context, id int64) (persistence.User, error) {
	var user persistence.User
	var isAdmin int
	err := s.helper.QueryRow(ctx,
		"SELECT user_id, language, name, phone, company, is_admin FROM users WHERE user_id = ?",
		id,
	).Scan(&user.ID, &user.Language, &user.Name, &user.Phone, &user.Company, &isAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.User{}, persistence.ErrNotFound
		}
		return persistence.User{}, s.mapper.MapError(err)
	}
	user.IsAdmin = isAdmin != 0
	return user, nil
}

// UpdateLanguage switches the user's interface language.
func (s *Store) UpdateLanguage(ctx context.Context, id int64, language string) error {
	return s.execExpectingRow(ctx,
		"UPDATE users SET language = ? WHERE user_id = ?",
		language, id,
	)
}

// UpdateProfile writes all three profile fields atomically.
func (s *Store) UpdateProfile(ctx context.Context, id int64, name, phone, company string) error {
	return s.execExpectingRow(ctx,
		"UPDATE users SET name = ?, phone = ?, company = ? WHERE user_id = ?",
		name, phone, company, id,
	)
}

// SetAdmin grants or revokes the organizer flag.
func (s *Store) SetAdmin(ctx context.Context, id int64, admin bool) error {
	value := 0
	if admin {
		value = 1
	}
	return s.execExpectingRow(ctx,
		"UPDATE users SET is_admin = ? WHERE user_id = ?",
		value, id,
	)
}

// ListUserIDs returns the ids of every registered user.
func (s *Store) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.helper.Query(ctx, "SELECT user_id FROM users ORDER BY user_id ASC")
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, s.mapper.MapError(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return ids, nil
}

// execExpectingRow runs a statement that must affect at least one row and
// maps the zero-row case to ErrNotFound.
func (s *Store) execExpectingRow(ctx context.Context, query string, args ...interface{}) error {
	result, err := s.helper.Exec(ctx, query, args...)
	if err != nil {
		return s.mapper.MapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
