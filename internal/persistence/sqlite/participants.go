package sqlite

import (
	"context"

	"github.com/example/event-assistant/internal/persistence"
)

// AddParticipant registers a user for a meeting. Registering twice is a no-op.
func (s *Store) AddParticipant(ctx context.Context, meetingID, userID int64) error {
	_, err := s.helper.Exec(ctx,
		"INSERT OR IGNORE INTO participants (meeting_id, user_id) VALUES (?, ?)",
		meetingID, userID,
	)
	if err != nil {
		return s.mapper.MapError(err)
	}
	return nil
}

// RemoveParticipant withdraws a registration. Withdrawing one that does not
// exist is a no-op.
func (s *Store) RemoveParticipant(ctx context.Context, meetingID, userID int64) error {
	_, err := s.helper.Exec(ctx,
		"DELETE FROM participants WHERE meeting_id = ? AND user_id = ?",
		meetingID, userID,
	)
	if err != nil {
		return s.mapper.MapError(err)
	}
	return nil
}

// IsParticipant reports whether a user is registered for a meeting.
func (s *Store) IsParticipant(ctx context.Context, meetingID, userID int64) (bool, error) {
	row := s.helper.QueryRow(ctx,
		"SELECT COUNT(*) FROM participants WHERE meeting_id = ? AND user_id = ?",
		meetingID, userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, s.mapper.MapError(err)
	}
	return count > 0, nil
}

// ListParticipantIDs returns the ids of everyone registered for a meeting.
func (s *Store) ListParticipantIDs(ctx context.Context, meetingID int64) ([]int64, error) {
	rows, err := s.helper.Query(ctx,
		"SELECT user_id FROM participants WHERE meeting_id = ? ORDER BY user_id", meetingID)
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

// ListParticipants returns the registered users with their profile fields.
func (s *Store) ListParticipants(ctx context.Context, meetingID int64) ([]persistence.User, error) {
	rows, err := s.helper.Query(ctx,
		`SELECT u.user_id, u.language, u.name, u.phone, u.company, u.is_admin
		 FROM users u
		 JOIN participants p ON p.user_id = u.user_id
		 WHERE p.meeting_id = ?
		 ORDER BY u.user_id`,
		meetingID,
	)
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var users []persistence.User
	for rows.Next() {
		var user persistence.User
		var isAdmin int
		if err := rows.Scan(&user.ID, &user.Language, &user.Name, &user.Phone, &user.Company, &isAdmin); err != nil {
			return nil, s.mapper.MapError(err)
		}
		user.IsAdmin = isAdmin != 0
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return users, nil
}
