package persistence

import "time"

// User represents an attendee account keyed by the chat platform identity.
// Name, Phone, and Company are empty until the profile flow fills them in.
type User struct {
	ID       int64
	Language string
	Name     string
	Phone    string
	Company  string
	IsAdmin  bool
}

// HasCompleteProfile reports whether every profile field has been provided.
func (u User) HasCompleteProfile() bool {
	return u.Name != "" && u.Phone != "" && u.Company != ""
}

// Meeting represents an event entry. Date is deliberately free text: the
// original data carries values like "12-14 May" that no calendar type fits.
// Latitude and Longitude are set and cleared together.
type Meeting struct {
	ID           int64
	Name         string
	Location     string
	Date         string
	WifiNetwork  string
	WifiPassword string
	Latitude     *float64
	Longitude    *float64
	PDFFileID    string
	Ended        bool
}

// HasGeo reports whether a venue location pin has been set.
func (m Meeting) HasGeo() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// AgendaItem is one agenda entry of a meeting. Start and end times are free
// text; listing order is lexicographic by StartTime with ID as tie-breaker.
type AgendaItem struct {
	ID          int64
	MeetingID   int64
	Title       string
	StartTime   string
	EndTime     string
	Description string
}

// Question is an attendee question for a meeting. Append-only.
type Question struct {
	ID        int64
	MeetingID int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}

// Photo references an uploaded photo by its opaque transport file id.
type Photo struct {
	ID        int64
	MeetingID int64
	FileID    string
}

// Feedback is a single satisfaction event for a meeting. Rating and Comment
// arrive through independent flows, so a user may accumulate several rows per
// meeting; that multiplicity is intentional.
type Feedback struct {
	ID        int64
	MeetingID int64
	UserID    int64
	Rating    string
	Comment   string
	CreatedAt time.Time
}

// Rating values recorded by the satisfaction survey.
const (
	RatingGood    = "good"
	RatingNeutral = "neutral"
	RatingBad     = "bad"
)
