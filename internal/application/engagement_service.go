package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/event-assistant/internal/persistence"
)

// EngagementService covers attendee-facing interactions: registrations,
// questions to speakers, and post-event surveys.
type EngagementService struct {
	users        persistence.UserRepository
	participants persistence.ParticipantRepository
	questions    persistence.QuestionRepository
	feedback     persistence.FeedbackRepository
}

// NewEngagementService wires dependencies for the engagement service.
func NewEngagementService(
	users persistence.UserRepository,
	participants persistence.ParticipantRepository,
	questions persistence.QuestionRepository,
	feedback persistence.FeedbackRepository,
) *EngagementService {
	return &EngagementService{
		users:        users,
		participants: participants,
		questions:    questions,
		feedback:     feedback,
	}
}

// Follow registers the user for a meeting. Users without a complete profile
// are rejected with ErrProfileIncomplete and no registration is written.
func (s *EngagementService) Follow(ctx context.Context, meetingID, userID int64) error {
	if s == nil {
		return fmt.Errorf("EngagementService is nil")
	}
	if s.users == nil || s.participants == nil {
		return fmt.Errorf("repositories not configured")
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !user.HasCompleteProfile() {
		return ErrProfileIncomplete
	}

	return s.participants.AddParticipant(ctx, meetingID, userID)
}

// Unfollow withdraws the user's registration.
func (s *EngagementService) Unfollow(ctx context.Context, meetingID, userID int64) error {
	if s == nil {
		return fmt.Errorf("EngagementService is nil")
	}
	return s.participants.RemoveParticipant(ctx, meetingID, userID)
}

// IsFollowing reports whether the user is registered for a meeting.
func (s *EngagementService) IsFollowing(ctx context.Context, meetingID, userID int64) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("EngagementService is nil")
	}
	return s.participants.IsParticipant(ctx, meetingID, userID)
}

// ListParticipants returns the registered attendees with profile fields.
func (s *EngagementService) ListParticipants(ctx context.Context, meetingID int64) ([]persistence.User, error) {
	if s == nil {
		return nil, fmt.Errorf("EngagementService is nil")
	}
	return s.participants.ListParticipants(ctx, meetingID)
}

// ListParticipantIDs returns the ids of everyone registered for a meeting.
func (s *EngagementService) ListParticipantIDs(ctx context.Context, meetingID int64) ([]int64, error) {
	if s == nil {
		return nil, fmt.Errorf("EngagementService is nil")
	}
	return s.participants.ListParticipantIDs(ctx, meetingID)
}

// AskQuestion records an attendee question for the organizers.
func (s *EngagementService) AskQuestion(ctx context.Context, meetingID, userID int64, text string) error {
	if s == nil {
		return fmt.Errorf("EngagementService is nil")
	}
	if s.questions == nil {
		return fmt.Errorf("question repository not configured")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		vErr := &ValidationError{}
		vErr.add("text", "question must not be empty")
		return vErr
	}

	_, err := s.questions.AddQuestion(ctx, meetingID, userID, text)
	return err
}

// ListQuestions returns a meeting's questions, newest first.
func (s *EngagementService) ListQuestions(ctx context.Context, meetingID int64) ([]persistence.Question, error) {
	if s == nil {
		return nil, fmt.Errorf("EngagementService is nil")
	}
	return s.questions.ListQuestions(ctx, meetingID)
}

// AddRating records a survey rating without a comment.
func (s *EngagementService) AddRating(ctx context.Context, meetingID, userID int64, rating string) error {
	if s == nil {
		return fmt.Errorf("EngagementService is nil")
	}
	if s.feedback == nil {
		return fmt.Errorf("feedback repository not configured")
	}

	switch rating {
	case persistence.RatingGood, persistence.RatingNeutral, persistence.RatingBad:
	default:
		vErr := &ValidationError{}
		vErr.add("rating", "unknown rating value")
		return vErr
	}

	_, err := s.feedback.AddFeedback(ctx, meetingID, userID, rating, "")
	return err
}

// AddComment records a free-text survey comment without a rating.
func (s *EngagementService) AddComment(ctx context.Context, meetingID, userID int64, comment string) error {
	if s == nil {
		return fmt.Errorf("EngagementService is nil")
	}
	if s.feedback == nil {
		return fmt.Errorf("feedback repository not configured")
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		vErr := &ValidationError{}
		vErr.add("comment", "comment must not be empty")
		return vErr
	}

	_, err := s.feedback.AddFeedback(ctx, meetingID, userID, "", comment)
	return err
}

// FeedbackSummary aggregates survey responses for one meeting.
type FeedbackSummary struct {
	Good     int
	Neutral  int
	Bad      int
	Comments []persistence.Feedback
}

// SummarizeFeedback tallies ratings and collects commented responses.
func (s *EngagementService) SummarizeFeedback(ctx context.Context, meetingID int64) (FeedbackSummary, error) {
	if s == nil {
		return FeedbackSummary{}, fmt.Errorf("EngagementService is nil")
	}
	if s.feedback == nil {
		return FeedbackSummary{}, fmt.Errorf("feedback repository not configured")
	}

	entries, err := s.feedback.ListFeedback(ctx, meetingID)
	if err != nil {
		return FeedbackSummary{}, err
	}

	var summary FeedbackSummary
	for _, entry := range entries {
		switch entry.Rating {
		case persistence.RatingGood:
			summary.Good++
		case persistence.RatingNeutral:
			summary.Neutral++
		case persistence.RatingBad:
			summary.Bad++
		}
		if entry.Comment != "" {
			summary.Comments = append(summary.Comments, entry)
		}
	}
	return summary, nil
}
