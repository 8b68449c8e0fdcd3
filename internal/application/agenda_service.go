package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/event-assistant/internal/persistence"
)

// AgendaService manages meeting programs and per-user session reminders.
type AgendaService struct {
	agenda persistence.AgendaRepository
}

// NewAgendaService wires dependencies for the agenda service.
func NewAgendaService(agenda persistence.AgendaRepository) *AgendaService {
	return &AgendaService{agenda: agenda}
}

// AddItem validates input and appends a program entry.
func (s *AgendaService) AddItem(ctx context.Context, meetingID int64, title, startTime, endTime, description string) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("AgendaService is nil")
	}
	if s.agenda == nil {
		return 0, fmt.Errorf("agenda repository not configured")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		vErr := &ValidationError{}
		vErr.add("title", "title must not be empty")
		return 0, vErr
	}

	return s.agenda.AddAgendaItem(ctx, meetingID, title,
		strings.TrimSpace(startTime), strings.TrimSpace(endTime), strings.TrimSpace(description))
}

// GetItem retrieves one program entry.
func (s *AgendaService) GetItem(ctx context.Context, id int64) (persistence.AgendaItem, error) {
	if s == nil {
		return persistence.AgendaItem{}, fmt.Errorf("AgendaService is nil")
	}

	item, err := s.agenda.GetAgendaItem(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return persistence.AgendaItem{}, ErrNotFound
		}
		return persistence.AgendaItem{}, err
	}
	return item, nil
}

// ListItems returns a meeting's program in schedule order.
func (s *AgendaService) ListItems(ctx context.Context, meetingID int64) ([]persistence.AgendaItem, error) {
	if s == nil {
		return nil, fmt.Errorf("AgendaService is nil")
	}
	return s.agenda.ListAgenda(ctx, meetingID)
}

// AgendaField names one of the editable program entry fields.
type AgendaField string

const (
	AgendaFieldTitle       AgendaField = "title"
	AgendaFieldStartTime   AgendaField = "start_time"
	AgendaFieldEndTime     AgendaField = "end_time"
	AgendaFieldDescription AgendaField = "description"
)

// UpdateItemField changes a single field of a program entry.
func (s *AgendaService) UpdateItemField(ctx context.Context, id int64, field AgendaField, value string) error {
	if s == nil {
		return fmt.Errorf("AgendaService is nil")
	}
	if s.agenda == nil {
		return fmt.Errorf("agenda repository not configured")
	}

	value = strings.TrimSpace(value)
	if field == AgendaFieldTitle && value == "" {
		vErr := &ValidationError{}
		vErr.add("title", "title must not be empty")
		return vErr
	}

	var err error
	switch field {
	case AgendaFieldTitle:
		err = s.agenda.UpdateAgendaTitle(ctx, id, value)
	case AgendaFieldStartTime:
		err = s.agenda.UpdateAgendaStartTime(ctx, id, value)
	case AgendaFieldEndTime:
		err = s.agenda.UpdateAgendaEndTime(ctx, id, value)
	case AgendaFieldDescription:
		err = s.agenda.UpdateAgendaDescription(ctx, id, value)
	default:
		return fmt.Errorf("unknown agenda field %q", field)
	}
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RemoveItem deletes one program entry and its reminders.
func (s *AgendaService) RemoveItem(ctx context.Context, id int64) error {
	if s == nil {
		return fmt.Errorf("AgendaService is nil")
	}
	if err := s.agenda.DeleteAgendaItem(ctx, id); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ClearItems deletes a meeting's whole program.
func (s *AgendaService) ClearItems(ctx context.Context, meetingID int64) error {
	if s == nil {
		return fmt.Errorf("AgendaService is nil")
	}
	return s.agenda.ClearAgenda(ctx, meetingID)
}

// ToggleAlert flips the user's reminder on a program entry and returns the
// new subscription state.
func (s *AgendaService) ToggleAlert(ctx context.Context, agendaID, userID int64) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("AgendaService is nil")
	}
	if s.agenda == nil {
		return false, fmt.Errorf("agenda repository not configured")
	}

	subscribed, err := s.agenda.AgendaAlertExists(ctx, agendaID, userID)
	if err != nil {
		return false, err
	}
	if subscribed {
		if err := s.agenda.RemoveAgendaAlert(ctx, agendaID, userID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.agenda.AddAgendaAlert(ctx, agendaID, userID); err != nil {
		return false, err
	}
	return true, nil
}

// IsAlertSet reports whether the user has a reminder on a program entry.
func (s *AgendaService) IsAlertSet(ctx context.Context, agendaID, userID int64) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("AgendaService is nil")
	}
	return s.agenda.AgendaAlertExists(ctx, agendaID, userID)
}

// ListAlertUsers returns the users subscribed to a program entry.
func (s *AgendaService) ListAlertUsers(ctx context.Context, agendaID int64) ([]int64, error) {
	if s == nil {
		return nil, fmt.Errorf("AgendaService is nil")
	}
	return s.agenda.ListAgendaAlertUsers(ctx, agendaID)
}
