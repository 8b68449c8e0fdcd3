// Package telegram adapts the Telegram Bot API to the engine's
// transport-neutral messenger and update types.
package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/event-assistant/internal/bot"
	"github.com/example/event-assistant/internal/logging"
)

// Adapter implements bot.Messenger on top of the Telegram Bot API and
// converts incoming Telegram updates into engine updates.
type Adapter struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

func New(token string, logger *slog.Logger) (*Adapter, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Adapter{api: api, logger: logging.Component(context.Background(), logger, "telegram")}, nil
}

// Username returns the bot account name reported by Telegram.
func (a *Adapter) Username() string {
	return a.api.Self.UserName
}

func (a *Adapter) SendMessage(ctx context.Context, msg bot.Message) error {
	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	switch {
	case msg.Inline != nil:
		out.ReplyMarkup = inlineMarkup(msg.Inline)
	case msg.Reply != nil:
		out.ReplyMarkup = replyMarkup(msg.Reply)
	case msg.RemoveReply:
		out.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}
	_, err := a.api.Send(out)
	return err
}

func (a *Adapter) EditMessage(ctx context.Context, chatID int64, messageID int, text string, menu *bot.InlineMenu) error {
	if menu == nil {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
		_, err := a.api.Send(edit)
		return err
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, inlineMarkup(menu))
	_, err := a.api.Send(edit)
	return err
}

func (a *Adapter) SendPhoto(ctx context.Context, chatID int64, fileID, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	_, err := a.api.Send(photo)
	return err
}

func (a *Adapter) SendDocument(ctx context.Context, chatID int64, fileID, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileID(fileID))
	doc.Caption = caption
	_, err := a.api.Send(doc)
	return err
}

func (a *Adapter) SendLocation(ctx context.Context, chatID int64, latitude, longitude float64) error {
	_, err := a.api.Send(tgbotapi.NewLocation(chatID, latitude, longitude))
	return err
}

func (a *Adapter) AnswerCallback(ctx context.Context, callbackID, text string) error {
	_, err := a.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

func inlineMarkup(menu *bot.InlineMenu) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(menu.Rows))
	for _, row := range menu.Rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func replyMarkup(menu *bot.ReplyMenu) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(menu.Rows))
	for _, row := range menu.Rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, b := range row {
			if b.RequestContact {
				buttons = append(buttons, tgbotapi.NewKeyboardButtonContact(b.Label))
				continue
			}
			buttons = append(buttons, tgbotapi.NewKeyboardButton(b.Label))
		}
		rows = append(rows, buttons)
	}
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.OneTimeKeyboard = menu.OneTime
	return markup
}

// Run pulls updates from Telegram and feeds them to the handler until the
// context is cancelled. Each update is handled before the next is read, so
// a user's dialog steps are processed in order.
func (a *Adapter) Run(ctx context.Context, handle func(ctx context.Context, update bot.Update)) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := a.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stopping update stream")
			a.api.StopReceivingUpdates()
			return
		case raw, ok := <-updates:
			if !ok {
				a.logger.Info("update stream closed")
				return
			}
			update, ok := convert(raw)
			if !ok {
				continue
			}
			handle(ctx, update)
		}
	}
}

// convert maps a raw Telegram update onto the engine's update type. Updates
// with no actionable payload are dropped.
func convert(raw tgbotapi.Update) (bot.Update, bool) {
	if q := raw.CallbackQuery; q != nil {
		update := bot.Update{
			Kind:         bot.KindCallback,
			UserID:       q.From.ID,
			CallbackID:   q.ID,
			CallbackData: q.Data,
		}
		if q.Message != nil {
			update.ChatID = q.Message.Chat.ID
			update.MessageID = q.Message.MessageID
		}
		return update, true
	}

	m := raw.Message
	if m == nil || m.From == nil {
		return bot.Update{}, false
	}
	update := bot.Update{
		UserID:    m.From.ID,
		ChatID:    m.Chat.ID,
		MessageID: m.MessageID,
	}

	switch {
	case m.IsCommand():
		update.Kind = bot.KindCommand
		update.Command = m.Command()
	case m.Contact != nil:
		update.Kind = bot.KindContact
		update.ContactPhone = m.Contact.PhoneNumber
	case len(m.Photo) > 0:
		update.Kind = bot.KindPhoto
		// The last entry is the largest rendition.
		update.PhotoFileID = m.Photo[len(m.Photo)-1].FileID
	case m.Document != nil:
		update.Kind = bot.KindDocument
		update.DocumentFileID = m.Document.FileID
		update.DocumentMIME = m.Document.MimeType
		update.DocumentName = m.Document.FileName
	case m.Location != nil:
		update.Kind = bot.KindLocation
		update.Latitude = m.Location.Latitude
		update.Longitude = m.Location.Longitude
	case m.Text != "":
		update.Kind = bot.KindText
		update.Text = m.Text
	default:
		return bot.Update{}, false
	}
	return update, true
}
