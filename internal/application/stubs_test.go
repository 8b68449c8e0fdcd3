package application

import (
	"context"
	"sort"

	"github.com/example/event-assistant/internal/persistence"
)

// memStore is an in-memory stand-in for the persistence layer used by the
// service tests.
type memStore struct {
	users        map[int64]persistence.User
	meetings     map[int64]*persistence.Meeting
	agenda       map[int64]*persistence.AgendaItem
	alerts       map[[2]int64]bool
	participants map[[2]int64]bool
	questions    []persistence.Question
	photos       []persistence.Photo
	feedback     []persistence.Feedback
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[int64]persistence.User),
		meetings:     make(map[int64]*persistence.Meeting),
		agenda:       make(map[int64]*persistence.AgendaItem),
		alerts:       make(map[[2]int64]bool),
		participants: make(map[[2]int64]bool),
		nextID:       1,
	}
}

func (m *memStore) allocate() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *memStore) CreateUser(_ context.Context, id int64, language string) error {
	if _, ok := m.users[id]; ok {
		return nil
	}
	m.users[id] = persistence.User{ID: id, Language: language}
	return nil
}

func (m *memStore) GetUser(_ context.Context, id int64) (persistence.User, error) {
	user, ok := m.users[id]
	if !ok {
		return persistence.User{}, persistence.ErrNotFound
	}
	return user, nil
}

func (m *memStore) UpdateLanguage(_ context.Context, id int64, language string) error {
	user, ok := m.users[id]
	if !ok {
		return persistence.ErrNotFound
	}
	user.Language = language
	m.users[id] = user
	return nil
}

func (m *memStore) UpdateProfile(_ context.Context, id int64, name, phone, company string) error {
	user, ok := m.users[id]
	if !ok {
		return persistence.ErrNotFound
	}
	user.Name, user.Phone, user.Company = name, phone, company
	m.users[id] = user
	return nil
}

func (m *memStore) SetAdmin(_ context.Context, id int64, admin bool) error {
	user, ok := m.users[id]
	if !ok {
		return persistence.ErrNotFound
	}
	user.IsAdmin = admin
	m.users[id] = user
	return nil
}

func (m *memStore) ListUserIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) CreateMeeting(_ context.Context, name, location, date string) (int64, error) {
	id := m.allocate()
	m.meetings[id] = &persistence.Meeting{ID: id, Name: name, Location: location, Date: date}
	return id, nil
}

func (m *memStore) GetMeeting(_ context.Context, id int64) (persistence.Meeting, error) {
	meeting, ok := m.meetings[id]
	if !ok {
		return persistence.Meeting{}, persistence.ErrNotFound
	}
	return *meeting, nil
}

func (m *memStore) listMeetings(ended bool) []persistence.Meeting {
	var out []persistence.Meeting
	for _, meeting := range m.meetings {
		if meeting.Ended == ended {
			out = append(out, *meeting)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memStore) ListActiveMeetings(_ context.Context) ([]persistence.Meeting, error) {
	return m.listMeetings(false), nil
}

func (m *memStore) ListEndedMeetings(_ context.Context) ([]persistence.Meeting, error) {
	return m.listMeetings(true), nil
}

func (m *memStore) withMeeting(id int64, fn func(*persistence.Meeting)) error {
	meeting, ok := m.meetings[id]
	if !ok {
		return persistence.ErrNotFound
	}
	fn(meeting)
	return nil
}

func (m *memStore) UpdateMeetingName(_ context.Context, id int64, name string) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) { mt.Name = name })
}

func (m *memStore) UpdateMeetingDate(_ context.Context, id int64, date string) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) { mt.Date = date })
}

func (m *memStore) UpdateMeetingLocation(_ context.Context, id int64, location string) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) { mt.Location = location })
}

func (m *memStore) SetWifi(_ context.Context, id int64, network, password string) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) {
		mt.WifiNetwork, mt.WifiPassword = network, password
	})
}

func (m *memStore) ClearWifi(ctx context.Context, id int64) error {
	return m.SetWifi(ctx, id, "", "")
}

func (m *memStore) SetGeo(_ context.Context, id int64, latitude, longitude float64) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) {
		mt.Latitude, mt.Longitude = &latitude, &longitude
	})
}

func (m *memStore) ClearGeo(_ context.Context, id int64) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) {
		mt.Latitude, mt.Longitude = nil, nil
	})
}

func (m *memStore) SetPDF(_ context.Context, id int64, fileID string) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) { mt.PDFFileID = fileID })
}

func (m *memStore) ClearPDF(ctx context.Context, id int64) error {
	return m.SetPDF(ctx, id, "")
}

func (m *memStore) MarkEnded(_ context.Context, id int64) error {
	return m.withMeeting(id, func(mt *persistence.Meeting) { mt.Ended = true })
}

func (m *memStore) DeleteMeeting(_ context.Context, id int64) error {
	if _, ok := m.meetings[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(m.meetings, id)
	for key := range m.participants {
		if key[0] == id {
			delete(m.participants, key)
		}
	}
	for itemID, item := range m.agenda {
		if item.MeetingID == id {
			delete(m.agenda, itemID)
		}
	}
	return nil
}

func (m *memStore) AddAgendaItem(_ context.Context, meetingID int64, title, startTime, endTime, description string) (int64, error) {
	id := m.allocate()
	m.agenda[id] = &persistence.AgendaItem{
		ID: id, MeetingID: meetingID,
		Title: title, StartTime: startTime, EndTime: endTime, Description: description,
	}
	return id, nil
}

func (m *memStore) GetAgendaItem(_ context.Context, id int64) (persistence.AgendaItem, error) {
	item, ok := m.agenda[id]
	if !ok {
		return persistence.AgendaItem{}, persistence.ErrNotFound
	}
	return *item, nil
}

func (m *memStore) ListAgenda(_ context.Context, meetingID int64) ([]persistence.AgendaItem, error) {
	var out []persistence.AgendaItem
	for _, item := range m.agenda {
		if item.MeetingID == meetingID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) withAgendaItem(id int64, fn func(*persistence.AgendaItem)) error {
	item, ok := m.agenda[id]
	if !ok {
		return persistence.ErrNotFound
	}
	fn(item)
	return nil
}

func (m *memStore) UpdateAgendaTitle(_ context.Context, id int64, title string) error {
	return m.withAgendaItem(id, func(it *persistence.AgendaItem) { it.Title = title })
}

func (m *memStore) UpdateAgendaStartTime(_ context.Context, id int64, startTime string) error {
	return m.withAgendaItem(id, func(it *persistence.AgendaItem) { it.StartTime = startTime })
}

func (m *memStore) UpdateAgendaEndTime(_ context.Context, id int64, endTime string) error {
	return m.withAgendaItem(id, func(it *persistence.AgendaItem) { it.EndTime = endTime })
}

func (m *memStore) UpdateAgendaDescription(_ context.Context, id int64, description string) error {
	return m.withAgendaItem(id, func(it *persistence.AgendaItem) { it.Description = description })
}

func (m *memStore) DeleteAgendaItem(_ context.Context, id int64) error {
	if _, ok := m.agenda[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(m.agenda, id)
	for key := range m.alerts {
		if key[0] == id {
			delete(m.alerts, key)
		}
	}
	return nil
}

func (m *memStore) ClearAgenda(_ context.Context, meetingID int64) error {
	for id, item := range m.agenda {
		if item.MeetingID == meetingID {
			delete(m.agenda, id)
			for key := range m.alerts {
				if key[0] == id {
					delete(m.alerts, key)
				}
			}
		}
	}
	return nil
}

func (m *memStore) AddAgendaAlert(_ context.Context, agendaID, userID int64) error {
	m.alerts[[2]int64{agendaID, userID}] = true
	return nil
}

func (m *memStore) RemoveAgendaAlert(_ context.Context, agendaID, userID int64) error {
	delete(m.alerts, [2]int64{agendaID, userID})
	return nil
}

func (m *memStore) AgendaAlertExists(_ context.Context, agendaID, userID int64) (bool, error) {
	return m.alerts[[2]int64{agendaID, userID}], nil
}

func (m *memStore) ListAgendaAlertUsers(_ context.Context, agendaID int64) ([]int64, error) {
	var ids []int64
	for key := range m.alerts {
		if key[0] == agendaID {
			ids = append(ids, key[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) AddParticipant(_ context.Context, meetingID, userID int64) error {
	m.participants[[2]int64{meetingID, userID}] = true
	return nil
}

func (m *memStore) RemoveParticipant(_ context.Context, meetingID, userID int64) error {
	delete(m.participants, [2]int64{meetingID, userID})
	return nil
}

func (m *memStore) IsParticipant(_ context.Context, meetingID, userID int64) (bool, error) {
	return m.participants[[2]int64{meetingID, userID}], nil
}

func (m *memStore) ListParticipantIDs(_ context.Context, meetingID int64) ([]int64, error) {
	var ids []int64
	for key := range m.participants {
		if key[0] == meetingID {
			ids = append(ids, key[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memStore) ListParticipants(ctx context.Context, meetingID int64) ([]persistence.User, error) {
	ids, err := m.ListParticipantIDs(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	var users []persistence.User
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (m *memStore) AddQuestion(_ context.Context, meetingID, userID int64, text string) (int64, error) {
	id := m.allocate()
	m.questions = append(m.questions, persistence.Question{
		ID: id, MeetingID: meetingID, UserID: userID, Text: text,
	})
	return id, nil
}

func (m *memStore) ListQuestions(_ context.Context, meetingID int64) ([]persistence.Question, error) {
	var out []persistence.Question
	for i := len(m.questions) - 1; i >= 0; i-- {
		if m.questions[i].MeetingID == meetingID {
			out = append(out, m.questions[i])
		}
	}
	return out, nil
}

func (m *memStore) AddPhoto(_ context.Context, meetingID int64, fileID string) (int64, error) {
	id := m.allocate()
	m.photos = append(m.photos, persistence.Photo{ID: id, MeetingID: meetingID, FileID: fileID})
	return id, nil
}

func (m *memStore) ListPhotos(_ context.Context, meetingID int64) ([]persistence.Photo, error) {
	var out []persistence.Photo
	for _, photo := range m.photos {
		if photo.MeetingID == meetingID {
			out = append(out, photo)
		}
	}
	return out, nil
}

func (m *memStore) ClearPhotos(_ context.Context, meetingID int64) error {
	var kept []persistence.Photo
	for _, photo := range m.photos {
		if photo.MeetingID != meetingID {
			kept = append(kept, photo)
		}
	}
	m.photos = kept
	return nil
}

func (m *memStore) AddFeedback(_ context.Context, meetingID, userID int64, rating, comment string) (int64, error) {
	id := m.allocate()
	m.feedback = append(m.feedback, persistence.Feedback{
		ID: id, MeetingID: meetingID, UserID: userID, Rating: rating, Comment: comment,
	})
	return id, nil
}

func (m *memStore) ListFeedback(_ context.Context, meetingID int64) ([]persistence.Feedback, error) {
	var out []persistence.Feedback
	for i := len(m.feedback) - 1; i >= 0; i-- {
		if m.feedback[i].MeetingID == meetingID {
			out = append(out, m.feedback[i])
		}
	}
	return out, nil
}
