// Package bot implements the conversational engine: it decodes incoming
// updates, tracks per-user dialogs, and renders menus. It is independent of
// any particular chat transport.
package bot

import "context"

// UpdateKind classifies an incoming update by its payload.
type UpdateKind int

const (
	KindCommand UpdateKind = iota
	KindText
	KindCallback
	KindPhoto
	KindDocument
	KindLocation
	KindContact
)

// Update is one normalized incoming event from the chat transport.
type Update struct {
	UserID    int64
	ChatID    int64
	MessageID int

	Kind    UpdateKind
	Command string
	Text    string

	CallbackID   string
	CallbackData string

	PhotoFileID string

	DocumentFileID string
	DocumentMIME   string
	DocumentName   string

	Latitude  float64
	Longitude float64

	ContactPhone string
}

// Button is one inline keyboard button.
type Button struct {
	Label string
	Data  string
}

// InlineMenu is a grid of buttons attached to a message.
type InlineMenu struct {
	Rows [][]Button
}

// ReplyButton is one button of the persistent reply keyboard.
type ReplyButton struct {
	Label          string
	RequestContact bool
}

// ReplyMenu replaces the user's input keyboard.
type ReplyMenu struct {
	Rows    [][]ReplyButton
	OneTime bool
}

// Message is an outgoing chat message with an optional keyboard.
type Message struct {
	ChatID int64
	Text   string
	Inline *InlineMenu
	Reply  *ReplyMenu
	// RemoveReply hides the reply keyboard alongside this message.
	RemoveReply bool
}

// Messenger sends messages through the chat transport.
type Messenger interface {
	SendMessage(ctx context.Context, msg Message) error
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, menu *InlineMenu) error
	SendPhoto(ctx context.Context, chatID int64, fileID, caption string) error
	SendDocument(ctx context.Context, chatID int64, fileID, caption string) error
	SendLocation(ctx context.Context, chatID int64, latitude, longitude float64) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}
