package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/event-assistant/internal/persistence"
)

// AddAgendaItem inserts an agenda entry and returns its generated id.
func (s *Store) AddAgendaItem(ctx context.Context, meetingID int64, title, startTime, endTime, description string) (int64, error) {
	if title == "" {
		return 0, persistence.ErrConstraintViolation
	}
	result, err := s.helper.Exec(ctx,
		"INSERT INTO agenda (meeting_id, title, start_time, end_time, description) VALUES (?, ?, ?, ?, ?)",
		meetingID, title, startTime, endTime, description,
	)
	if err != nil {
		return 0, s.mapper.MapError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated agenda item id: %w", err)
	}
	return id, nil
}

// GetAgendaItem retrieves one agenda entry by id.
func (s *Store) GetAgendaItem(ctx context.Context, id int64) (persistence.AgendaItem, error) {
	row := s.helper.QueryRow(ctx,
		"SELECT id, meeting_id, title, start_time, end_time, description FROM agenda WHERE id = ?", id)
	var item persistence.AgendaItem
	err := row.Scan(&item.ID, &item.MeetingID, &item.Title, &item.StartTime, &item.EndTime, &item.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.AgendaItem{}, persistence.ErrNotFound
		}
		return persistence.AgendaItem{}, s.mapper.MapError(err)
	}
	return item, nil
}

// ListAgenda returns a meeting's agenda ordered by start time, with the
// insertion id breaking ties.
func (s *Store) ListAgenda(ctx context.Context, meetingID int64) ([]persistence.AgendaItem, error) {
	rows, err := s.helper.Query(ctx,
		"SELECT id, meeting_id, title, start_time, end_time, description FROM agenda WHERE meeting_id = ? ORDER BY start_time, id",
		meetingID,
	)
	if err != nil {
		return nil, s.mapper.MapError(err)
	}
	defer rows.Close()

	var items []persistence.AgendaItem
	for rows.Next() {
		var item persistence.AgendaItem
		if err := rows.Scan(&item.ID, &item.MeetingID, &item.Title, &item.StartTime, &item.EndTime, &item.Description); err != nil {
			return nil, s.mapper.MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapper.MapError(err)
	}
	return items, nil
}

// UpdateAgendaTitle changes one entry's title.
func (s *Store) UpdateAgendaTitle(ctx context.Context, id int64, title string) error {
	return s.execExpectingRow(ctx, "UPDATE agenda SET title = ? WHERE id = ?", title, id)
}

// UpdateAgendaStartTime changes one entry's start time.
func (s *Store) UpdateAgendaStartTime(ctx context.Context, id int64, startTime string) error {
	return s.execExpectingRow(ctx, "UPDATE agenda SET start_time = ? WHERE id = ?", startTime, id)
}

// UpdateAgendaEndTime changes one entry's end time.
func (s *Store) UpdateAgendaEndTime(ctx context.Context, id int64, endTime string) error {
	return s.execExpectingRow(ctx, "UPDATE agenda SET end_time = ? WHERE id = ?", endTime, id)
}

// UpdateAgendaDescription changes one entry's description.
func (s *Store) UpdateAgendaDescription(ctx context.Context, id int64, description string) error {
	return s.execExpectingRow(ctx, "UPDATE agenda SET description = ? WHERE id = ?", description, id)
}

// DeleteAgendaItem removes one entry together with its alert subscriptions.
func (s *Store) DeleteAgendaItem(ctx context.Context, id int64) error {
	return s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := s.helper.ExecTx(tx, "DELETE FROM agenda_alerts WHERE agenda_id = ?", id); err != nil {
			return s.mapper.MapError(err)
		}
		result, err := s.helper.ExecTx(tx, "DELETE FROM agenda WHERE id = ?", id)
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

// ClearAgenda removes all entries of a meeting, alerts included.
func (s *Store) ClearAgenda(ctx context.Context, meetingID int64) error {
	return s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := s.helper.ExecTx(tx,
			"DELETE FROM agenda_alerts WHERE agenda_id IN (SELECT id FROM agenda WHERE meeting_id = ?)", meetingID); err != nil {
			return s.mapper.MapError(err)
		}
		if _, err := s.helper.ExecTx(tx, "DELETE FROM agenda WHERE meeting_id = ?", meetingID); err != nil {
			return s.mapper.MapError(err)
		}
		return nil
	})
}

// AddAgendaAlert subscribes a user to an agenda entry. Duplicate
// subscriptions are a no-op.
func (s *Store) AddAgendaAlert(ctx context.Context, agendaID, userID int64) error {
	_, err := s.helper.Exec(ctx,
		"INSERT OR IGNORE INTO agenda_alerts (agenda_id, user_id) VALUES (?, ?)",
		agendaID, userID,
	)
	if err != nil {
		return s.mapper.MapError(err)
	}
	return nil
}

// RemoveAgendaAlert drops a subscription. Removing one that does not exist
// is a no-op.
func (s *Store) RemoveAgendaAlert(ctx context.Context, agendaID, userID int64) error {
	_, err := s.helper.Exec(ctx,
		"DELETE FROM agenda_alerts WHERE agenda_id = ? AND user_id = ?",
		agendaID, userID,
	)
	if err != nil {
		return s.mapper.MapError(err)
	}
	return nil
}

// AgendaAlertExists reports whether a user is subscribed to an entry.
func (s *Store) AgendaAlertExists(ctx context.Context, agendaID, userID int64) (bool, error) {
	row := s.helper.QueryRow(ctx,
		"SELECT COUNT(*) FROM agenda_alerts WHERE agenda_id = ? AND user_id = ?",
		agendaID, userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, s.mapper.MapError(err)
	}
	return count > 0, nil
}

// ListAgendaAlertUsers returns the ids of users subscribed to an entry.
func (s *Store) ListAgendaAlertUsers(ctx context.Context, agendaID int64) ([]int64, error) {
	rows, err := s.helper.Query(ctx,
		"SELECT user_id FROM agenda_alerts WHERE agenda_id = ? ORDER BY user_id", agendaID)
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
