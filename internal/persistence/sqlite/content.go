package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/event-assistant/internal/persistence"
)

// AddQuestion records an attendee question and returns its generated id.
func (s *Store) AddQuestion(ctx context.Context, meetingID, userID int64, text string) (int64, error) {
	if text == "" {
		return 0, persistence.ErrConstraintViolation
	}
	result, err := s.helper.Exec(ctx,
		"INSERT INTO questions (meeting_id, user_id, text, created_at) VALUES (?, ?, ?, ?)",
		meetingID, userID, text, s.timestamp(),
	)
	if err != nil {
		return 0, s.mapper.MapError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated question id: %w", err)
	}
	return id, nil
}

// ListQuestions returns a meeting's questions, newest first.
func (s *Store) ListQuestions(ctx context.Context, meetingID int64) ([]persistence.Question, error) {
	rows, err := s.helper.Query(ctx,
		"SELECT id, meeting_id, user_id, text, created_at FROM questions WHERE meeting_id = ? ORDER BY created_at DESC, id DESC",
		meetingID,
	)
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var questions []persistence.Question
	for rows.Next() {
		var question persistence.Question
		var createdAt string
		if err := rows.Scan(&question.ID, &question.MeetingID, &question.UserID, &question.Text, &createdAt); err != nil {
			return nil, s.mapper.MapError(err)
		}
		question.CreatedAt = parseTimestamp(createdAt)
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return questions, nil
}

// AddPhoto stores a venue photo reference.
func (s *Store) AddPhoto(ctx context.Context, meetingID int64, fileID string) (int64, error) {
	if fileID == "" {
		return 0, persistence.ErrConstraintViolation
	}
	result, err := s.helper.Exec(ctx,
		"INSERT INTO photos (meeting_id, file_id) VALUES (?, ?)",
		meetingID, fileID,
	)
	if err != nil {
		return 0, s.mapper.MapError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated photo id: %w", err)
	}
	return id, nil
}

// ListPhotos returns a meeting's photo references in upload order.
func (s *Store) ListPhotos(ctx context.Context, meetingID int64) ([]persistence.Photo, error) {
	rows, err := s.helper.Query(ctx,
		"SELECT id, meeting_id, file_id FROM photos WHERE meeting_id = ? ORDER BY id", meetingID)
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var photos []persistence.Photo
	for rows.Next() {
		var photo persistence.Photo
		if err := rows.Scan(&photo.ID, &photo.MeetingID, &photo.FileID); err != nil {
			return nil, s.mapper.MapError(err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return photos, nil
}

// ClearPhotos removes all photo references of a meeting.
func (s *Store) ClearPhotos(ctx context.Context, meetingID int64) error {
	_, err := s.helper.Exec(ctx, "DELETE FROM photos WHERE meeting_id = ?", meetingID)
	if err != nil {
		return s.mapper.MapError(err)
	}
	return nil
}

// AddFeedback records a survey response. Rating and comment may each be
// empty; a response with both is also valid. Several responses from the
// same user are kept.
func (s *Store) AddFeedback(ctx context.Context, meetingID, userID int64, rating, comment string) (int64, error) {
	result, err := s.helper.Exec(ctx,
		"INSERT INTO feedback (meeting_id, user_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?)",
		meetingID, userID, nullableString(rating), nullableString(comment), s.timestamp(),
	)
	if err != nil {
		return 0, s.mapper.MapError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated feedback id: %w", err)
	}
	return id, nil
}

// ListFeedback returns a meeting's survey responses, newest first. The rows
// survive meeting deletion.
func (s *Store) ListFeedback(ctx context.Context, meetingID int64) ([]persistence.Feedback, error) {
	rows, err := s.helper.Query(ctx,
		"SELECT id, meeting_id, user_id, rating, comment, created_at FROM feedback WHERE meeting_id = ? ORDER BY created_at DESC, id DESC",
		meetingID,
	)
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var entries []persistence.Feedback
	for rows.Next() {
		var entry persistence.Feedback
		var rating, comment sql.NullString
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.MeetingID, &entry.UserID, &rating, &comment, &createdAt); err != nil {
			return nil, s.mapper.MapError(err)
		}
		entry.Rating = rating.String
		entry.Comment = comment.String
		entry.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return entries, nil
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
