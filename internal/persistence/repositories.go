package persistence

import "context"

// UserRepository exposes account and profile operations.
type UserRepository interface {
	// CreateUser registers a user on first contact. Creating an existing user
	// is a no-op.
	CreateUser(ctx context.Context, id int64, language string) error
	GetUser(ctx context.Context, id int64) (User, error)
	UpdateLanguage(ctx context.Context, id int64, language string) error
	// UpdateProfile writes all three profile fields in one statement.
	UpdateProfile(ctx context.Context, id int64, name, phone, company string) error
	SetAdmin(ctx context.Context, id int64, admin bool) error
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// MeetingRepository exposes CRUD and the read shapes for meetings.
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, name, location, date string) (int64, error)
	GetMeeting(ctx context.Context, id int64) (Meeting, error)
	// ListActiveMeetings returns meetings not yet ended, newest first.
	ListActiveMeetings(ctx context.Context) ([]Meeting, error)
	// ListEndedMeetings returns finished meetings, newest first.
	ListEndedMeetings(ctx context.Context) ([]Meeting, error)
	UpdateMeetingName(ctx context.Context, id int64, name string) error
	UpdateMeetingDate(ctx context.Context, id int64, date string) error
	UpdateMeetingLocation(ctx context.Context, id int64, location string) error
	// SetWifi writes network and password together; ClearWifi removes both.
	SetWifi(ctx context.Context, id int64, network, password string) error
	ClearWifi(ctx context.Context, id int64) error
	SetGeo(ctx context.Context, id int64, latitude, longitude float64) error
	ClearGeo(ctx context.Context, id int64) error
	SetPDF(ctx context.Context, id int64, fileID string) error
	ClearPDF(ctx context.Context, id int64) error
	// MarkEnded flips the ended flag. Idempotent; the flag never reverts.
	MarkEnded(ctx context.Context, id int64) error
	// DeleteMeeting removes the meeting together with its participants,
	// photos, questions, and agenda items in one transaction. Feedback rows
	// are intentionally left behind (matching the source system).
	DeleteMeeting(ctx context.Context, id int64) error
}

// AgendaRepository exposes agenda items and per-item alert subscriptions.
type AgendaRepository interface {
	AddAgendaItem(ctx context.Context, meetingID int64, title, startTime, endTime, description string) (int64, error)
	GetAgendaItem(ctx context.Context, id int64) (AgendaItem, error)
	// ListAgenda returns items ordered by start time then id.
	ListAgenda(ctx context.Context, meetingID int64) ([]AgendaItem, error)
	UpdateAgendaTitle(ctx context.Context, id int64, title string) error
	UpdateAgendaStartTime(ctx context.Context, id int64, startTime string) error
	UpdateAgendaEndTime(ctx context.Context, id int64, endTime string) error
	UpdateAgendaDescription(ctx context.Context, id int64, description string) error
	DeleteAgendaItem(ctx context.Context, id int64) error
	ClearAgenda(ctx context.Context, meetingID int64) error

	// AddAgendaAlert subscribes a user to an item reminder; duplicates are
	// no-ops. RemoveAgendaAlert of an absent row is also a no-op.
	AddAgendaAlert(ctx context.Context, agendaID, userID int64) error
	RemoveAgendaAlert(ctx context.Context, agendaID, userID int64) error
	AgendaAlertExists(ctx context.Context, agendaID, userID int64) (bool, error)
	ListAgendaAlertUsers(ctx context.Context, agendaID int64) ([]int64, error)
}

// ParticipantRepository tracks which users follow which meetings.
type ParticipantRepository interface {
	// AddParticipant subscribes a user; duplicate inserts are no-ops.
	AddParticipant(ctx context.Context, meetingID, userID int64) error
	RemoveParticipant(ctx context.Context, meetingID, userID int64) error
	IsParticipant(ctx context.Context, meetingID, userID int64) (bool, error)
	ListParticipantIDs(ctx context.Context, meetingID int64) ([]int64, error)
	// ListParticipants returns the joined user profiles for display.
	ListParticipants(ctx context.Context, meetingID int64) ([]User, error)
}

// QuestionRepository stores attendee questions.
type QuestionRepository interface {
	AddQuestion(ctx context.Context, meetingID, userID int64, text string) (int64, error)
	// ListQuestions returns questions newest first.
	ListQuestions(ctx context.Context, meetingID int64) ([]Question, error)
}

// PhotoRepository stores meeting photo references.
type PhotoRepository interface {
	AddPhoto(ctx context.Context, meetingID int64, fileID string) (int64, error)
	ListPhotos(ctx context.Context, meetingID int64) ([]Photo, error)
	ClearPhotos(ctx context.Context, meetingID int64) error
}

// FeedbackRepository stores satisfaction survey results.
type FeedbackRepository interface {
	AddFeedback(ctx context.Context, meetingID, userID int64, rating, comment string) (int64, error)
	// ListFeedback returns feedback rows newest first.
	ListFeedback(ctx context.Context, meetingID int64) ([]Feedback, error)
}
