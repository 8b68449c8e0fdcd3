package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/event-assistant/internal/persistence"
)

const meetingColumns = "id, name, location, date, wifi_network, wifi_password, latitude, longitude, pdf_file_id, ended"

// CreateMeeting inserts a meeting and returns its generated id.
func (s *Store) CreateMeeting(ctx context.Context, name, location, date string) (int64, error) {
	if name == "" {
		return 0, persistence.ErrConstraintViolation
	}
	result, err := s.helper.Exec(ctx,
		"INSERT INTO meetings (name, location, date) VALUES (?, ?, ?)",
		name, location, date,
	)
	if err != nil {
		return 0, s.mapper.MapError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated meeting id: %w", err)
	}
	return id, nil
}

// GetMeeting retrieves one meeting by id.
func (s *Store) GetMeeting(ctx context.Context, id int64) (persistence.Meeting, error) {
	row := s.helper.QueryRow(ctx,
		"SELECT "+meetingColumns+" FROM meetings WHERE id = ?", id)
	meeting, err := scanMeeting(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Meeting{}, persistence.ErrNotFound
		}
		return persistence.Meeting{}, s.mapper.MapError(err)
	}
	return meeting, nil
}

// ListActiveMeetings returns meetings that have not ended, newest first.
func (s *Store) ListActiveMeetings(ctx context.Context) ([]persistence.Meeting, error) {
	return s.listMeetings(ctx,
		"SELECT "+meetingColumns+" FROM meetings WHERE ended = 0 ORDER BY id DESC")
}

// ListEndedMeetings returns finished meetings, newest first.
func (s *Store) ListEndedMeetings(ctx context.Context) ([]persistence.Meeting, error) {
	return s.listMeetings(ctx,
		"SELECT "+meetingColumns+" FROM meetings WHERE ended = 1 ORDER BY id DESC")
}

func (s *Store) listMeetings(ctx context.Context, query string) ([]persistence.Meeting, error) {
	rows, err := s.helper.Query(ctx, query)
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var meetings []persistence.Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows.Scan)
		if err != nil {
			return nil, s.mapper.MapError(err)
		}
		meetings = append(meetings, meeting)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return meetings, nil
}

func scanMeeting(scan func(dest ...interface{}) error) (persistence.Meeting, error) {
	var meeting persistence.Meeting
	var latitude, longitude sql.NullFloat64
	var ended int
	err := scan(
		&meeting.ID,
		&meeting.Name,
		&meeting.Location,
		&meeting.Date,
		&meeting.WifiNetwork,
		&meeting.WifiPassword,
		&latitude,
		&longitude,
		&meeting.PDFFileID,
		&ended,
	)
	if err != nil {
		return persistence.Meeting{}, err
	}
	if latitude.Valid && longitude.Valid {
		meeting.Latitude = &latitude.Float64
		meeting.Longitude = &longitude.Float64
	}
	meeting.Ended = ended != 0
	return meeting, nil
}

// UpdateMeetingName renames a meeting.
func (s *Store) UpdateMeetingName(ctx context.Context, id int64, name string) error {
	return s.execExpectingRow(ctx, "UPDATE meetings SET name = ? WHERE id = ?", name, id)
}

// UpdateMeetingDate changes the free-text date.
func (s *Store) UpdateMeetingDate(ctx context.Context, id int64, date string) error {
	return s.execExpectingRow(ctx, "UPDATE meetings SET date = ? WHERE id = ?", date, id)
}

// UpdateMeetingLocation changes the venue description.
func (s *Store) UpdateMeetingLocation(ctx context.Context, id int64, location string) error {
	return s.execExpectingRow(ctx, "UPDATE meetings SET location = ? WHERE id = ?", location, id)
}

// SetWifi writes both WiFi fields together.
func (s *Store) SetWifi(ctx context.Context, id int64, network, password string) error {
	return s.execExpectingRow(ctx,
		"UPDATE meetings SET wifi_network = ?, wifi_password = ? WHERE id = ?",
		network, password, id,
	)
}

// ClearWifi removes both WiFi fields.
func (s *Store) ClearWifi(ctx context.Context, id int64) error {
	return s.SetWifi(ctx, id, "", "")
}

// SetGeo pins the venue location.
func (s *Store) SetGeo(ctx context.Context, id int64, latitude, longitude float64) error {
	return s.execExpectingRow(ctx,
		"UPDATE meetings SET latitude = ?, longitude = ? WHERE id = ?",
		latitude, longitude, id,
	)
}

// ClearGeo removes the venue pin.
func (s *Store) ClearGeo(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx,
		"UPDATE meetings SET latitude = NULL, longitude = NULL WHERE id = ?", id)
}

// SetPDF attaches a program document reference.
func (s *Store) SetPDF(ctx context.Context, id int64, fileID string) error {
	return s.execExpectingRow(ctx,
		"UPDATE meetings SET pdf_file_id = ? WHERE id = ?", fileID, id)
}

// ClearPDF removes the program document reference.
func (s *Store) ClearPDF(ctx context.Context, id int64) error {
	return s.SetPDF(ctx, id, "")
}

// MarkEnded flips the ended flag. The transition is one-way and idempotent.
func (s *Store) MarkEnded(ctx context.Context, id int64) error {
	return s.execExpectingRow(ctx, "UPDATE meetings SET ended = 1 WHERE id = ?", id)
}

// DeleteMeeting removes the meeting and its participants, photos, questions,
// and agenda items (with their alerts) in one transaction. Feedback rows are
// deliberately not part of the cascade.
func (s *Store) DeleteMeeting(ctx context.Context, id int64) error {
	return s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := s.helper.ExecTx(tx, "DELETE FROM participants WHERE meeting_id = ?", id); err != nil {
			return s.mapper.MapError(err)
		}
		if _, err := s.helper.ExecTx(tx, "DELETE FROM photos WHERE meeting_id = ?", id); err != nil {
			return s.mapper.MapError(err)
		}
		if _, err := s.helper.ExecTx(tx, "DELETE FROM questions WHERE meeting_id = ?", id); err != nil {
			return s.mapper.MapError(err)
		}
		if _, err := s.helper.ExecTx(tx,
			"DELETE FROM agenda_alerts WHERE agenda_id IN (SELECT id FROM agenda WHERE meeting_id = ?)", id); err != nil {
			return s.mapper.MapError(err)
		}
		if _, err := s.helper.ExecTx(tx, "DELETE FROM agenda WHERE meeting_id = ?", id); err != nil {
			return s.mapper.MapError(err)
		}
		result, err := s.helper.ExecTx(tx, "DELETE FROM meetings WHERE id = ?", id)
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
	})
}
