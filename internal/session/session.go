// Package session tracks the per-user dialog a conversation is currently
// in. Each user has at most one active dialog; starting a new one replaces
// whatever was in progress.
package session

import "sync"

// State is one step of a multi-message dialog. Concrete states carry the
// answers collected so far.
type State interface {
	dialogState()
}

// ProfileFillStep enumerates the questions of the initial profile dialog.
type ProfileFillStep int

const (
	ProfileStepName ProfileFillStep = iota
	ProfileStepPhone
	ProfileStepCompany
)

// ProfileFill collects name, phone, and company in order.
type ProfileFill struct {
	Step  ProfileFillStep
	Name  string
	Phone string
}

// ProfileFieldEdit waits for a replacement value for one profile field.
type ProfileFieldEdit struct {
	Field string
}

// MeetingCreateStep enumerates the questions of the meeting creation dialog.
type MeetingCreateStep int

const (
	MeetingStepName MeetingCreateStep = iota
	MeetingStepLocation
	MeetingStepDate
)

// MeetingCreate collects the fields of a new meeting in order.
type MeetingCreate struct {
	Step     MeetingCreateStep
	Name     string
	Location string
}

// MeetingFieldEdit waits for a replacement value for one meeting field.
type MeetingFieldEdit struct {
	MeetingID int64
	Field     string
}

// WifiSetup collects network name then password for a meeting.
type WifiSetup struct {
	MeetingID int64
	Network   string
	HaveName  bool
}

// WifiFieldEdit waits for a replacement value for one WiFi field.
type WifiFieldEdit struct {
	MeetingID int64
	Field     string
}

// AgendaAddStep enumerates the questions of the agenda entry dialog.
type AgendaAddStep int

const (
	AgendaStepTitle AgendaAddStep = iota
	AgendaStepStart
	AgendaStepEnd
	AgendaStepDescription
)

// AgendaAdd collects a program entry field by field. The description step
// may be skipped.
type AgendaAdd struct {
	MeetingID int64
	Step      AgendaAddStep
	Title     string
	StartTime string
	EndTime   string
}

// AgendaFieldEdit waits for a replacement value for one field of a pinned
// program entry.
type AgendaFieldEdit struct {
	AgendaID  int64
	MeetingID int64
	Field     string
}

// PhotoUpload accepts venue photos until the user navigates away.
type PhotoUpload struct {
	MeetingID int64
}

// PDFUpload waits for a program document.
type PDFUpload struct {
	MeetingID int64
}

// GeoSet waits for a venue location pin.
type GeoSet struct {
	MeetingID int64
}

// QuestionAsk waits for a question to the organizers.
type QuestionAsk struct {
	MeetingID int64
}

// FeedbackComment waits for a free-text survey comment.
type FeedbackComment struct {
	MeetingID int64
}

// AdminLogin waits for the admin password.
type AdminLogin struct{}

// BroadcastScope selects who receives a composed announcement.
type BroadcastScope struct {
	All       bool
	MeetingID int64
}

// NotificationCompose waits for the announcement text.
type NotificationCompose struct {
	Scope BroadcastScope
}

func (ProfileFill) dialogState()         {}
func (ProfileFieldEdit) dialogState()    {}
func (MeetingCreate) dialogState()       {}
func (MeetingFieldEdit) dialogState()    {}
func (WifiSetup) dialogState()           {}
func (WifiFieldEdit) dialogState()       {}
func (AgendaAdd) dialogState()           {}
func (AgendaFieldEdit) dialogState()     {}
func (PhotoUpload) dialogState()         {}
func (PDFUpload) dialogState()           {}
func (GeoSet) dialogState()              {}
func (QuestionAsk) dialogState()         {}
func (FeedbackComment) dialogState()     {}
func (AdminLogin) dialogState()          {}
func (NotificationCompose) dialogState() {}

// Store keeps the active dialog state per user.
type Store interface {
	// Begin starts a dialog, replacing any dialog already in progress.
	Begin(userID int64, state State)
	// Current returns the active dialog state, or nil when the user is idle.
	Current(userID int64) State
	// Advance replaces the active dialog state with the next step.
	Advance(userID int64, state State)
	// Clear ends the active dialog.
	Clear(userID int64)
}

// MemoryStore is the in-process Store used by the bot.
type MemoryStore struct {
	mu     sync.RWMutex
	active map[int64]State
}

// NewMemoryStore creates an empty session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{active: make(map[int64]State)}
}

func (s *MemoryStore) Begin(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[userID] = state
}

func (s *MemoryStore) Current(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active[userID]
}

func (s *MemoryStore) Advance(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[userID] = state
}

func (s *MemoryStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
}
