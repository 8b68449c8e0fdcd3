package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/event-assistant/internal/persistence"
)

// SupportedLanguages lists the interface languages users may pick.
var SupportedLanguages = []string{"en", "ru", "uz"}

// IsSupportedLanguage reports whether code is one of the interface languages.
func IsSupportedLanguage(code string) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}
	return false
}

// ProfileService manages user records and their contact profiles.
type ProfileService struct {
	users           persistence.UserRepository
	defaultLanguage string
}

// NewProfileService wires dependencies for the profile service.
func NewProfileService(users persistence.UserRepository, defaultLanguage string) *ProfileService {
	if !IsSupportedLanguage(defaultLanguage) {
		defaultLanguage = "en"
	}
	return &ProfileService{users: users, defaultLanguage: defaultLanguage}
}

// EnsureUser looks up the user and creates a record on first contact.
// The second return value reports whether a new record was created.
func (s *ProfileService) EnsureUser(ctx context.Context, userID int64) (persistence.User, bool, error) {
	if s == nil {
		return persistence.User{}, false, fmt.Errorf("ProfileService is nil")
	}
	if s.users == nil {
		return persistence.User{}, false, fmt.Errorf("user repository not configured")
	}

	user, err := s.users.GetUser(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, persistence.ErrNotFound) {
		return persistence.User{}, false, err
	}

	if err := s.users.CreateUser(ctx, userID, s.defaultLanguage); err != nil {
		return persistence.User{}, false, err
	}
	user, err = s.users.GetUser(ctx, userID)
	if err != nil {
		return persistence.User{}, false, err
	}
	return user, true, nil
}

// GetProfile retrieves a user record.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (persistence.User, error) {
	if s == nil {
		return persistence.User{}, fmt.Errorf("ProfileService is nil")
	}
	if s.users == nil {
		return persistence.User{}, fmt.Errorf("user repository not configured")
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return persistence.User{}, ErrNotFound
		}
		return persistence.User{}, err
	}
	return user, nil
}

// ListUserIDs returns the ids of every known user.
func (s *ProfileService) ListUserIDs(ctx context.Context) ([]int64, error) {
	if s == nil {
		return nil, fmt.Errorf("ProfileService is nil")
	}
	if s.users == nil {
		return nil, fmt.Errorf("user repository not configured")
	}
	return s.users.ListUserIDs(ctx)
}

// SaveProfile validates and stores all three profile fields at once.
func (s *ProfileService) SaveProfile(ctx context.Context, userID int64, name, phone, company string) error {
	if s == nil {
		return fmt.Errorf("ProfileService is nil")
	}
	if s.users == nil {
		return fmt.Errorf("user repository not configured")
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	company = strings.TrimSpace(company)

	vErr := &ValidationError{}
	if name == "" {
		vErr.add("name", "name must not be empty")
	}
	if phone == "" {
		vErr.add("phone", "phone must not be empty")
	}
	if company == "" {
		vErr.add("company", "company must not be empty")
	}
	if vErr.HasErrors() {
		return vErr
	}

	if err := s.users.UpdateProfile(ctx, userID, name, phone, company); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ProfileField names one of the editable profile fields.
type ProfileField string

const (
	ProfileFieldName    ProfileField = "name"
	ProfileFieldPhone   ProfileField = "phone"
	ProfileFieldCompany ProfileField = "company"
)

// UpdateProfileField changes a single field, leaving the others as stored.
func (s *ProfileService) UpdateProfileField(ctx context.Context, userID int64, field ProfileField, value string) error {
	if s == nil {
		return fmt.Errorf("ProfileService is nil")
	}
	if s.users == nil {
		return fmt.Errorf("user repository not configured")
	}

	value = strings.TrimSpace(value)
	if value == "" {
		vErr := &ValidationError{}
		vErr.add(string(field), "value must not be empty")
		return vErr
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	name, phone, company := user.Name, user.Phone, user.Company
	switch field {
	case ProfileFieldName:
		name = value
	case ProfileFieldPhone:
		phone = value
	case ProfileFieldCompany:
		company = value
	default:
		return fmt.Errorf("unknown profile field %q", field)
	}

	return s.users.UpdateProfile(ctx, userID, name, phone, company)
}

// SetLanguage stores the user's interface language.
func (s *ProfileService) SetLanguage(ctx context.Context, userID int64, language string) error {
	if s == nil {
		return fmt.Errorf("ProfileService is nil")
	}
	if s.users == nil {
		return fmt.Errorf("user repository not configured")
	}
	if !IsSupportedLanguage(language) {
		vErr := &ValidationError{}
		vErr.add("language", "unsupported language code")
		return vErr
	}

	if err := s.users.UpdateLanguage(ctx, userID, language); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
