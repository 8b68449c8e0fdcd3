package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/event-assistant/internal/bot"
)

func message(from int64) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 7,
		From:      &tgbotapi.User{ID: from},
		Chat:      &tgbotapi.Chat{ID: from},
	}
}

func TestConvertCommand(t *testing.T) {
	t.Parallel()

	m := message(1)
	m.Text = "/start"
	m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}

	update, ok := convert(tgbotapi.Update{Message: m})
	if !ok {
		t.Fatal("expected update")
	}
	if update.Kind != bot.KindCommand || update.Command != "start" {
		t.Errorf("got kind=%v command=%q, want command start", update.Kind, update.Command)
	}
}

func TestConvertContact(t *testing.T) {
	t.Parallel()

	m := message(1)
	m.Contact = &tgbotapi.Contact{PhoneNumber: "+100"}

	update, ok := convert(tgbotapi.Update{Message: m})
	if !ok {
		t.Fatal("expected update")
	}
	if update.Kind != bot.KindContact || update.ContactPhone != "+100" {
		t.Errorf("got kind=%v phone=%q", update.Kind, update.ContactPhone)
	}
}

func TestConvertPhotoPicksLargestRendition(t *testing.T) {
	t.Parallel()

	m := message(1)
	m.Photo = []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "medium"}, {FileID: "large"}}

	update, ok := convert(tgbotapi.Update{Message: m})
	if !ok {
		t.Fatal("expected update")
	}
	if update.Kind != bot.KindPhoto || update.PhotoFileID != "large" {
		t.Errorf("got kind=%v file=%q, want large", update.Kind, update.PhotoFileID)
	}
}

func TestConvertCallback(t *testing.T) {
	t.Parallel()

	raw := tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb1",
		From:    &tgbotapi.User{ID: 5},
		Data:    "meeting_3",
		Message: message(5),
	}}

	update, ok := convert(raw)
	if !ok {
		t.Fatal("expected update")
	}
	if update.Kind != bot.KindCallback || update.CallbackData != "meeting_3" || update.MessageID != 7 {
		t.Errorf("got %+v", update)
	}
}

func TestConvertDropsEmptyUpdate(t *testing.T) {
	t.Parallel()

	if _, ok := convert(tgbotapi.Update{}); ok {
		t.Error("update without payload should be dropped")
	}
	if _, ok := convert(tgbotapi.Update{Message: message(1)}); ok {
		t.Error("message without content should be dropped")
	}
}
