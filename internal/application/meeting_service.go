package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/event-assistant/internal/persistence"
)

// MeetingService manages the event catalog and its per-meeting attributes,
// venue photos included.
type MeetingService struct {
	meetings persistence.MeetingRepository
	photos   persistence.PhotoRepository
}

// NewMeetingService wires dependencies for the meeting service.
func NewMeetingService(meetings persistence.MeetingRepository, photos persistence.PhotoRepository) *MeetingService {
	return &MeetingService{meetings: meetings, photos: photos}
}

// CreateMeeting validates input and persists a new meeting.
func (s *MeetingService) CreateMeeting(ctx context.Context, name, location, date string) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("MeetingService is nil")
	}
	if s.meetings == nil {
		return 0, fmt.Errorf("meeting repository not configured")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		vErr := &ValidationError{}
		vErr.add("name", "name must not be empty")
		return 0, vErr
	}

	return s.meetings.CreateMeeting(ctx, name, strings.TrimSpace(location), strings.TrimSpace(date))
}

// GetMeeting retrieves one meeting.
func (s *MeetingService) GetMeeting(ctx context.Context, id int64) (persistence.Meeting, error) {
	if s == nil {
		return persistence.Meeting{}, fmt.Errorf("MeetingService is nil")
	}
	if s.meetings == nil {
		return persistence.Meeting{}, fmt.Errorf("meeting repository not configured")
	}

	meeting, err := s.meetings.GetMeeting(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return persistence.Meeting{}, ErrNotFound
		}
		return persistence.Meeting{}, err
	}
	return meeting, nil
}

// ListActiveMeetings returns meetings still open for attendees.
func (s *MeetingService) ListActiveMeetings(ctx context.Context) ([]persistence.Meeting, error) {
	if s == nil {
		return nil, fmt.Errorf("MeetingService is nil")
	}
	return s.meetings.ListActiveMeetings(ctx)
}

// ListEndedMeetings returns finished meetings for the review surfaces.
func (s *MeetingService) ListEndedMeetings(ctx context.Context) ([]persistence.Meeting, error) {
	if s == nil {
		return nil, fmt.Errorf("MeetingService is nil")
	}
	return s.meetings.ListEndedMeetings(ctx)
}

// MeetingField names one of the editable meeting fields.
type MeetingField string

const (
	MeetingFieldName     MeetingField = "name"
	MeetingFieldDate     MeetingField = "date"
	MeetingFieldLocation MeetingField = "location"
)

// UpdateMeetingField changes a single meeting field.
func (s *MeetingService) UpdateMeetingField(ctx context.Context, id int64, field MeetingField, value string) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	if s.meetings == nil {
		return fmt.Errorf("meeting repository not configured")
	}

	value = strings.TrimSpace(value)
	if field == MeetingFieldName && value == "" {
		vErr := &ValidationError{}
		vErr.add("name", "name must not be empty")
		return vErr
	}

	var err error
	switch field {
	case MeetingFieldName:
		err = s.meetings.UpdateMeetingName(ctx, id, value)
	case MeetingFieldDate:
		err = s.meetings.UpdateMeetingDate(ctx, id, value)
	case MeetingFieldLocation:
		err = s.meetings.UpdateMeetingLocation(ctx, id, value)
	default:
		return fmt.Errorf("unknown meeting field %q", field)
	}
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// SetWifi stores the network name and password together.
func (s *MeetingService) SetWifi(ctx context.Context, id int64, network, password string) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}

	network = strings.TrimSpace(network)
	password = strings.TrimSpace(password)
	vErr := &ValidationError{}
	if network == "" {
		vErr.add("network", "network must not be empty")
	}
	if password == "" {
		vErr.add("password", "password must not be empty")
	}
	if vErr.HasErrors() {
		return vErr
	}

	return s.mapNotFound(s.meetings.SetWifi(ctx, id, network, password))
}

// UpdateWifiNetwork changes only the network name, keeping the password.
func (s *MeetingService) UpdateWifiNetwork(ctx context.Context, id int64, network string) error {
	return s.updateWifiField(ctx, id, strings.TrimSpace(network), "")
}

// UpdateWifiPassword changes only the password, keeping the network name.
func (s *MeetingService) UpdateWifiPassword(ctx context.Context, id int64, password string) error {
	return s.updateWifiField(ctx, id, "", strings.TrimSpace(password))
}

func (s *MeetingService) updateWifiField(ctx context.Context, id int64, network, password string) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}

	meeting, err := s.meetings.GetMeeting(ctx, id)
	if err != nil {
		return s.mapNotFound(err)
	}
	if network == "" {
		network = meeting.WifiNetwork
	}
	if password == "" {
		password = meeting.WifiPassword
	}
	return s.mapNotFound(s.meetings.SetWifi(ctx, id, network, password))
}

// ClearWifi removes the stored connection details.
func (s *MeetingService) ClearWifi(ctx context.Context, id int64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	return s.mapNotFound(s.meetings.ClearWifi(ctx, id))
}

// SetGeo pins the venue location.
func (s *MeetingService) SetGeo(ctx context.Context, id int64, latitude, longitude float64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	return s.mapNotFound(s.meetings.SetGeo(ctx, id, latitude, longitude))
}

// ClearGeo removes the venue pin.
func (s *MeetingService) ClearGeo(ctx context.Context, id int64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	return s.mapNotFound(s.meetings.ClearGeo(ctx, id))
}

// AttachPDF stores the program document reference.
func (s *MeetingService) AttachPDF(ctx context.Context, id int64, fileID string) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	if strings.TrimSpace(fileID) == "" {
		vErr := &ValidationError{}
		vErr.add("file_id", "file id must not be empty")
		return vErr
	}
	return s.mapNotFound(s.meetings.SetPDF(ctx, id, fileID))
}

// ClearPDF removes the program document reference.
func (s *MeetingService) ClearPDF(ctx context.Context, id int64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	return s.mapNotFound(s.meetings.ClearPDF(ctx, id))
}

// FinishMeeting marks a meeting as ended. Finishing twice is harmless.
func (s *MeetingService) FinishMeeting(ctx context.Context, id int64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	return s.mapNotFound(s.meetings.MarkEnded(ctx, id))
}

// DeleteMeeting removes the meeting and its dependent records.
func (s *MeetingService) DeleteMeeting(ctx context.Context, id int64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	return s.mapNotFound(s.meetings.DeleteMeeting(ctx, id))
}

// AddPhoto stores one venue photo reference.
func (s *MeetingService) AddPhoto(ctx context.Context, meetingID int64, fileID string) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	if s.photos == nil {
		return fmt.Errorf("photo repository not configured")
	}
	if strings.TrimSpace(fileID) == "" {
		vErr := &ValidationError{}
		vErr.add("file_id", "file id must not be empty")
		return vErr
	}
	_, err := s.photos.AddPhoto(ctx, meetingID, fileID)
	return err
}

// ListPhotos returns the venue photos in upload order.
func (s *MeetingService) ListPhotos(ctx context.Context, meetingID int64) ([]persistence.Photo, error) {
	if s == nil {
		return nil, fmt.Errorf("MeetingService is nil")
	}
	if s.photos == nil {
		return nil, fmt.Errorf("photo repository not configured")
	}
	return s.photos.ListPhotos(ctx, meetingID)
}

// ClearPhotos removes all venue photos of a meeting.
func (s *MeetingService) ClearPhotos(ctx context.Context, meetingID int64) error {
	if s == nil {
		return fmt.Errorf("MeetingService is nil")
	}
	if s.photos == nil {
		return fmt.Errorf("photo repository not configured")
	}
	return s.photos.ClearPhotos(ctx, meetingID)
}

func (s *MeetingService) mapNotFound(err error) error {
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
