package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/event-assistant/internal/application"
	"github.com/example/event-assistant/internal/broadcast"
	"github.com/example/event-assistant/internal/logging"
	"github.com/example/event-assistant/internal/persistence"
	"github.com/example/event-assistant/internal/session"
	"github.com/example/event-assistant/internal/texts"
)

// Engine routes incoming updates to command, dialog, and button handlers.
type Engine struct {
	messenger  Messenger
	sessions   session.Store
	profiles   *application.ProfileService
	meetings   *application.MeetingService
	agenda     *application.AgendaService
	engagement *application.EngagementService
	auth       *application.AuthService
	dispatcher *broadcast.Dispatcher
	logger     *slog.Logger
}

// NewEngine wires the conversational engine.
func NewEngine(
	messenger Messenger,
	sessions session.Store,
	profiles *application.ProfileService,
	meetings *application.MeetingService,
	agenda *application.AgendaService,
	engagement *application.EngagementService,
	auth *application.AuthService,
	dispatcher *broadcast.Dispatcher,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		messenger:  messenger,
		sessions:   sessions,
		profiles:   profiles,
		meetings:   meetings,
		agenda:     agenda,
		engagement: engagement,
		auth:       auth,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleUpdate processes one update. Handler errors are logged and answered
// with a generic error message; they never propagate to the consume loop.
func (e *Engine) HandleUpdate(ctx context.Context, update Update) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = e.logger
	}
	logger = logger.With("user_id", update.UserID, "kind", int(update.Kind))
	ctx = logging.ContextWithLogger(ctx, logger)

	// A panicking handler must not take down the consume loop.
	lang := "en"
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "update handler panicked", "panic", r)
			e.send(ctx, update.ChatID, texts.Text(lang, "error_generic"), nil)
		}
	}()

	user, created, err := e.profiles.EnsureUser(ctx, update.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve user", "error", err)
		return
	}
	lang = user.Language

	if err := e.route(ctx, user, created, update); err != nil {
		logger.ErrorContext(ctx, "update handling failed", "error", err, "error_kind", application.ErrorKind(err))
		key := "error_generic"
		if errors.Is(err, application.ErrNotFound) {
			key = "not_found"
		}
		e.send(ctx, update.ChatID, texts.Text(user.Language, key), nil)
	}
}

func (e *Engine) route(ctx context.Context, user persistence.User, created bool, update Update) error {
	switch update.Kind {
	case KindCommand:
		return e.handleCommand(ctx, user, created, update)
	case KindCallback:
		return e.handleCallback(ctx, user, update)
	default:
		if state := e.sessions.Current(user.ID); state != nil {
			return e.handleDialog(ctx, user, state, update)
		}
		if update.Kind == KindText {
			return e.handleMenuText(ctx, user, update)
		}
		return nil
	}
}

func (e *Engine) handleCommand(ctx context.Context, user persistence.User, created bool, update Update) error {
	switch update.Command {
	case "start":
		e.sessions.Clear(user.ID)
		if created {
			return e.send(ctx, update.ChatID, texts.Text(user.Language, "choose_language"), languageMenu())
		}
		return e.sendReply(ctx, update.ChatID, texts.Text(user.Language, "welcome"), mainReplyMenu(user.Language))
	case "admin":
		e.sessions.Clear(user.ID)
		if user.IsAdmin {
			return e.send(ctx, update.ChatID, texts.Text(user.Language, "admin_menu"), adminMenu(user.Language))
		}
		e.sessions.Begin(user.ID, session.AdminLogin{})
		return e.send(ctx, update.ChatID, texts.Text(user.Language, "admin_password"), nil)
	default:
		return nil
	}
}

// handleMenuText matches reply keyboard labels. It only runs when no dialog
// is active, so dialog answers are never mistaken for menu presses.
func (e *Engine) handleMenuText(ctx context.Context, user persistence.User, update Update) error {
	lang := user.Language
	switch update.Text {
	case texts.Text(lang, "menu_select_meeting"):
		return e.showMeetings(ctx, user, update.ChatID, 0)
	case texts.Text(lang, "menu_my_profile"):
		return e.showProfile(ctx, user, update.ChatID)
	case texts.Text(lang, "menu_change_language"):
		return e.send(ctx, update.ChatID, texts.Text(lang, "choose_language"), languageMenu())
	default:
		return nil
	}
}

func (e *Engine) showMeetings(ctx context.Context, user persistence.User, chatID int64, messageID int) error {
	active, err := e.meetings.ListActiveMeetings(ctx)
	if err != nil {
		return err
	}
	ended, err := e.meetings.ListEndedMeetings(ctx)
	if err != nil {
		return err
	}

	text := texts.Text(user.Language, "meetings_list")
	if len(active) == 0 && len(ended) == 0 {
		text = texts.Text(user.Language, "no_meetings")
	}
	return e.render(ctx, chatID, messageID, text, meetingsMenu(user.Language, active, ended))
}

func (e *Engine) showProfile(ctx context.Context, user persistence.User, chatID int64) error {
	return e.send(ctx, chatID, renderProfile(user.Language, user), profileMenu(user.Language, user.HasCompleteProfile()))
}

func (e *Engine) showMeeting(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	meeting, err := e.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	following, err := e.engagement.IsFollowing(ctx, meetingID, user.ID)
	if err != nil {
		return err
	}
	return e.render(ctx, chatID, messageID, renderMeetingDetails(user.Language, meeting), meetingMenu(user.Language, meeting, following))
}

func (e *Engine) handleCallback(ctx context.Context, user persistence.User, update Update) error {
	action, err := DecodeAction(update.CallbackData)
	if err != nil {
		return e.answer(ctx, update.CallbackID, texts.Text(user.Language, "unknown_action"))
	}

	if isAdminAction(action.Kind) && !user.IsAdmin {
		return e.answer(ctx, update.CallbackID, texts.Text(user.Language, "unknown_action"))
	}

	if err := e.answer(ctx, update.CallbackID, ""); err != nil {
		return err
	}

	// Pressing any button abandons a half-finished dialog. The skip button
	// is the exception: the agenda dialog itself consumes it.
	if action.Kind != ActionSkipAgendaDescription {
		e.sessions.Clear(user.ID)
	}

	if isAdminAction(action.Kind) {
		return e.handleAdminAction(ctx, user, update, action)
	}
	return e.handleUserAction(ctx, user, update, action)
}

func (e *Engine) handleUserAction(ctx context.Context, user persistence.User, update Update, action Action) error {
	lang := user.Language
	chatID := update.ChatID

	switch action.Kind {
	case ActionSetLanguage:
		if err := e.profiles.SetLanguage(ctx, user.ID, action.Value); err != nil {
			return err
		}
		return e.sendReply(ctx, chatID, texts.Text(action.Value, "language_saved"), mainReplyMenu(action.Value))

	case ActionBackMain:
		e.sessions.Clear(user.ID)
		return e.sendReply(ctx, chatID, texts.Text(lang, "main_menu"), mainReplyMenu(lang))

	case ActionBackMeetings:
		e.sessions.Clear(user.ID)
		return e.showMeetings(ctx, user, chatID, update.MessageID)

	case ActionFillProfile:
		e.sessions.Begin(user.ID, session.ProfileFill{Step: session.ProfileStepName})
		return e.send(ctx, chatID, texts.Text(lang, "ask_name"), nil)

	case ActionEditProfile:
		return e.render(ctx, chatID, update.MessageID, renderProfile(lang, user), editProfileMenu(lang))

	case ActionEditName:
		e.sessions.Begin(user.ID, session.ProfileFieldEdit{Field: string(application.ProfileFieldName)})
		return e.send(ctx, chatID, texts.Text(lang, "ask_new_value"), nil)

	case ActionEditPhone:
		e.sessions.Begin(user.ID, session.ProfileFieldEdit{Field: string(application.ProfileFieldPhone)})
		return e.sendReply(ctx, chatID, texts.Text(lang, "ask_new_value"), contactReplyMenu(lang))

	case ActionEditCompany:
		e.sessions.Begin(user.ID, session.ProfileFieldEdit{Field: string(application.ProfileFieldCompany)})
		return e.send(ctx, chatID, texts.Text(lang, "ask_new_value"), nil)

	case ActionOpenMeeting:
		e.sessions.Clear(user.ID)
		return e.showMeeting(ctx, user, chatID, update.MessageID, action.MeetingID)

	case ActionShowAgenda:
		items, err := e.agenda.ListItems(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, update.MessageID, renderAgenda(lang, items), agendaMenu(lang, action.MeetingID, items))

	case ActionOpenAgendaItem:
		item, err := e.agenda.GetItem(ctx, action.AgendaID)
		if err != nil {
			return err
		}
		alertOn, err := e.agenda.IsAlertSet(ctx, action.AgendaID, user.ID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, update.MessageID, renderAgendaItem(item), agendaItemMenu(lang, action.AgendaID, action.MeetingID, alertOn))

	case ActionToggleAgendaAlert:
		nowOn, err := e.agenda.ToggleAlert(ctx, action.AgendaID, user.ID)
		if err != nil {
			return err
		}
		item, err := e.agenda.GetItem(ctx, action.AgendaID)
		if err != nil {
			return err
		}
		key := "alert_off"
		if nowOn {
			key = "alert_on"
		}
		text := renderAgendaItem(item) + "\n\n" + texts.Text(lang, key)
		return e.render(ctx, chatID, update.MessageID, text, agendaItemMenu(lang, action.AgendaID, action.MeetingID, nowOn))

	case ActionShowWifi:
		meeting, err := e.meetings.GetMeeting(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		text := texts.Text(lang, "wifi_none")
		if meeting.WifiNetwork != "" || meeting.WifiPassword != "" {
			text = texts.Text(lang, "wifi_info", meeting.WifiNetwork, meeting.WifiPassword)
		}
		back := &InlineMenu{Rows: [][]Button{{backBtn(lang, fmt.Sprintf("meeting_%d", action.MeetingID))}}}
		return e.render(ctx, chatID, update.MessageID, text, back)

	case ActionShowPDF:
		meeting, err := e.meetings.GetMeeting(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		if meeting.PDFFileID == "" {
			return e.send(ctx, chatID, texts.Text(lang, "pdf_none"), nil)
		}
		return e.messenger.SendDocument(ctx, chatID, meeting.PDFFileID, meeting.Name)

	case ActionShowPhotos:
		return e.sendMeetingPhotos(ctx, user, chatID, action.MeetingID)

	case ActionShowMap:
		meeting, err := e.meetings.GetMeeting(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		if !meeting.HasGeo() {
			return e.send(ctx, chatID, texts.Text(lang, "geo_none"), nil)
		}
		return e.messenger.SendLocation(ctx, chatID, *meeting.Latitude, *meeting.Longitude)

	case ActionShowPeople:
		people, err := e.engagement.ListParticipants(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		back := &InlineMenu{Rows: [][]Button{{backBtn(lang, fmt.Sprintf("meeting_%d", action.MeetingID))}}}
		return e.render(ctx, chatID, update.MessageID, renderPeople(lang, people), back)

	case ActionAskQuestion:
		e.sessions.Begin(user.ID, session.QuestionAsk{MeetingID: action.MeetingID})
		return e.send(ctx, chatID, texts.Text(lang, "ask_question"), nil)

	case ActionFollow:
		err := e.engagement.Follow(ctx, action.MeetingID, user.ID)
		if errors.Is(err, application.ErrProfileIncomplete) {
			e.sessions.Begin(user.ID, session.ProfileFill{Step: session.ProfileStepName})
			if sendErr := e.send(ctx, chatID, texts.Text(lang, "profile_incomplete"), nil); sendErr != nil {
				return sendErr
			}
			return e.send(ctx, chatID, texts.Text(lang, "ask_name"), nil)
		}
		if err != nil {
			return err
		}
		if err := e.send(ctx, chatID, texts.Text(lang, "followed"), nil); err != nil {
			return err
		}
		return e.showMeeting(ctx, user, chatID, update.MessageID, action.MeetingID)

	case ActionUnfollow:
		if err := e.engagement.Unfollow(ctx, action.MeetingID, user.ID); err != nil {
			return err
		}
		if err := e.send(ctx, chatID, texts.Text(lang, "unfollowed"), nil); err != nil {
			return err
		}
		return e.showMeeting(ctx, user, chatID, update.MessageID, action.MeetingID)

	case ActionRate:
		if err := e.engagement.AddRating(ctx, action.MeetingID, user.ID, action.Value); err != nil {
			return err
		}
		return e.render(ctx, chatID, update.MessageID,
			texts.Text(lang, "ask_feedback_comment"), commentOfferMenu(lang, action.MeetingID))

	case ActionFeedbackYes:
		e.sessions.Begin(user.ID, session.FeedbackComment{MeetingID: action.MeetingID})
		return e.send(ctx, chatID, texts.Text(lang, "ask_comment_text"), nil)

	case ActionFeedbackNo:
		e.sessions.Clear(user.ID)
		return e.render(ctx, chatID, update.MessageID, texts.Text(lang, "feedback_saved"), nil)

	case ActionViewFinished:
		meeting, err := e.meetings.GetMeeting(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, update.MessageID,
			renderMeetingDetails(lang, meeting), finishedMeetingMenu(lang, action.MeetingID))

	case ActionBackSurvey:
		meeting, err := e.meetings.GetMeeting(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, update.MessageID,
			texts.Text(lang, "survey_prompt", meeting.Name), satisfactionMenu(lang, action.MeetingID))
	}
	return nil
}

func (e *Engine) sendMeetingPhotos(ctx context.Context, user persistence.User, chatID, meetingID int64) error {
	photos, err := e.meetings.ListPhotos(ctx, meetingID)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		return e.send(ctx, chatID, texts.Text(user.Language, "photos_none"), nil)
	}
	for _, photo := range photos {
		if err := e.messenger.SendPhoto(ctx, chatID, photo.FileID, ""); err != nil {
			return err
		}
	}
	return nil
}

// answer acknowledges a button press so the client stops its spinner.
func (e *Engine) answer(ctx context.Context, callbackID, text string) error {
	if callbackID == "" {
		return nil
	}
	return e.messenger.AnswerCallback(ctx, callbackID, text)
}

func (e *Engine) send(ctx context.Context, chatID int64, text string, menu *InlineMenu) error {
	return e.messenger.SendMessage(ctx, Message{ChatID: chatID, Text: text, Inline: menu})
}

func (e *Engine) sendReply(ctx context.Context, chatID int64, text string, reply *ReplyMenu) error {
	return e.messenger.SendMessage(ctx, Message{ChatID: chatID, Text: text, Reply: reply})
}

// render edits the message a button came from when possible, otherwise
// sends a fresh message.
func (e *Engine) render(ctx context.Context, chatID int64, messageID int, text string, menu *InlineMenu) error {
	if messageID != 0 {
		if err := e.messenger.EditMessage(ctx, chatID, messageID, text, menu); err == nil {
			return nil
		}
	}
	return e.send(ctx, chatID, text, menu)
}
