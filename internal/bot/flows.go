package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/example/event-assistant/internal/application"
	"github.com/example/event-assistant/internal/persistence"
	"github.com/example/event-assistant/internal/session"
	"github.com/example/event-assistant/internal/texts"
)

// handleDialog feeds an incoming update into the user's active dialog.
// Input of the wrong modality leaves the dialog where it was.
func (e *Engine) handleDialog(ctx context.Context, user persistence.User, state session.State, update Update) error {
	switch st := state.(type) {
	case session.ProfileFill:
		return e.dialogProfileFill(ctx, user, st, update)
	case session.ProfileFieldEdit:
		return e.dialogProfileFieldEdit(ctx, user, st, update)
	case session.MeetingCreate:
		return e.dialogMeetingCreate(ctx, user, st, update)
	case session.MeetingFieldEdit:
		return e.dialogMeetingFieldEdit(ctx, user, st, update)
	case session.WifiSetup:
		return e.dialogWifiSetup(ctx, user, st, update)
	case session.WifiFieldEdit:
		return e.dialogWifiFieldEdit(ctx, user, st, update)
	case session.AgendaAdd:
		return e.dialogAgendaAdd(ctx, user, st, update)
	case session.AgendaFieldEdit:
		return e.dialogAgendaFieldEdit(ctx, user, st, update)
	case session.PhotoUpload:
		return e.dialogPhotoUpload(ctx, user, st, update)
	case session.PDFUpload:
		return e.dialogPDFUpload(ctx, user, st, update)
	case session.GeoSet:
		return e.dialogGeoSet(ctx, user, st, update)
	case session.QuestionAsk:
		return e.dialogQuestionAsk(ctx, user, st, update)
	case session.FeedbackComment:
		return e.dialogFeedbackComment(ctx, user, st, update)
	case session.AdminLogin:
		return e.dialogAdminLogin(ctx, user, update)
	case session.NotificationCompose:
		return e.dialogNotificationCompose(ctx, user, st, update)
	}
	e.sessions.Clear(user.ID)
	return e.send(ctx, update.ChatID, texts.Text(user.Language, "invalid_input"), nil)
}

func (e *Engine) rejectInput(ctx context.Context, user persistence.User, chatID int64) error {
	return e.send(ctx, chatID, texts.Text(user.Language, "invalid_input"), nil)
}

func textInput(update Update) (string, bool) {
	if update.Kind != KindText {
		return "", false
	}
	text := strings.TrimSpace(update.Text)
	return text, text != ""
}

func (e *Engine) dialogProfileFill(ctx context.Context, user persistence.User, st session.ProfileFill, update Update) error {
	lang := user.Language
	switch st.Step {
	case session.ProfileStepName:
		name, ok := textInput(update)
		if !ok {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		e.sessions.Advance(user.ID, session.ProfileFill{Step: session.ProfileStepPhone, Name: name})
		return e.sendReply(ctx, update.ChatID, texts.Text(lang, "ask_phone"), contactReplyMenu(lang))

	case session.ProfileStepPhone:
		phone := update.ContactPhone
		if phone == "" {
			var ok bool
			phone, ok = textInput(update)
			if !ok {
				return e.rejectInput(ctx, user, update.ChatID)
			}
		}
		e.sessions.Advance(user.ID, session.ProfileFill{Step: session.ProfileStepCompany, Name: st.Name, Phone: phone})
		return e.messenger.SendMessage(ctx, Message{
			ChatID:      update.ChatID,
			Text:        texts.Text(lang, "ask_company"),
			RemoveReply: true,
		})

	case session.ProfileStepCompany:
		company, ok := textInput(update)
		if !ok {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		if err := e.profiles.SaveProfile(ctx, user.ID, st.Name, st.Phone, company); err != nil {
			var verr *application.ValidationError
			if errors.As(err, &verr) {
				return e.rejectInput(ctx, user, update.ChatID)
			}
			return err
		}
		e.sessions.Clear(user.ID)
		return e.sendReply(ctx, update.ChatID, texts.Text(lang, "profile_saved"), mainReplyMenu(lang))
	}
	return e.rejectInput(ctx, user, update.ChatID)
}

func (e *Engine) dialogProfileFieldEdit(ctx context.Context, user persistence.User, st session.ProfileFieldEdit, update Update) error {
	value := update.ContactPhone
	if value == "" || st.Field != string(application.ProfileFieldPhone) {
		var ok bool
		value, ok = textInput(update)
		if !ok {
			return e.rejectInput(ctx, user, update.ChatID)
		}
	}
	if err := e.profiles.UpdateProfileField(ctx, user.ID, application.ProfileField(st.Field), value); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)

	updated, err := e.profiles.GetProfile(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := e.sendReply(ctx, update.ChatID, texts.Text(user.Language, "value_updated"), mainReplyMenu(user.Language)); err != nil {
		return err
	}
	return e.showProfile(ctx, updated, update.ChatID)
}

func (e *Engine) dialogMeetingCreate(ctx context.Context, user persistence.User, st session.MeetingCreate, update Update) error {
	lang := user.Language
	value, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}

	switch st.Step {
	case session.MeetingStepName:
		e.sessions.Advance(user.ID, session.MeetingCreate{Step: session.MeetingStepLocation, Name: value})
		return e.send(ctx, update.ChatID, texts.Text(lang, "ask_meeting_location"), nil)

	case session.MeetingStepLocation:
		e.sessions.Advance(user.ID, session.MeetingCreate{Step: session.MeetingStepDate, Name: st.Name, Location: value})
		return e.send(ctx, update.ChatID, texts.Text(lang, "ask_meeting_date"), nil)

	case session.MeetingStepDate:
		id, err := e.meetings.CreateMeeting(ctx, st.Name, st.Location, value)
		if err != nil {
			var verr *application.ValidationError
			if errors.As(err, &verr) {
				return e.rejectInput(ctx, user, update.ChatID)
			}
			return err
		}
		e.sessions.Clear(user.ID)
		if err := e.send(ctx, update.ChatID, texts.Text(lang, "meeting_created"), nil); err != nil {
			return err
		}
		return e.showAdminMeeting(ctx, user, update.ChatID, 0, id)
	}
	return e.rejectInput(ctx, user, update.ChatID)
}

func (e *Engine) dialogMeetingFieldEdit(ctx context.Context, user persistence.User, st session.MeetingFieldEdit, update Update) error {
	value, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err := e.meetings.UpdateMeetingField(ctx, st.MeetingID, application.MeetingField(st.Field), value); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)
	if err := e.send(ctx, update.ChatID, texts.Text(user.Language, "value_updated"), nil); err != nil {
		return err
	}
	return e.showAdminMeeting(ctx, user, update.ChatID, 0, st.MeetingID)
}

func (e *Engine) dialogWifiSetup(ctx context.Context, user persistence.User, st session.WifiSetup, update Update) error {
	value, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}

	if !st.HaveName {
		e.sessions.Advance(user.ID, session.WifiSetup{MeetingID: st.MeetingID, Network: value, HaveName: true})
		return e.send(ctx, update.ChatID, texts.Text(user.Language, "ask_wifi_password"), nil)
	}

	if err := e.meetings.SetWifi(ctx, st.MeetingID, st.Network, value); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)
	if err := e.send(ctx, update.ChatID, texts.Text(user.Language, "wifi_saved"), nil); err != nil {
		return err
	}
	return e.showAdminWifi(ctx, user, update.ChatID, 0, st.MeetingID)
}

func (e *Engine) dialogWifiFieldEdit(ctx context.Context, user persistence.User, st session.WifiFieldEdit, update Update) error {
	value, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}

	var err error
	switch st.Field {
	case "network":
		err = e.meetings.UpdateWifiNetwork(ctx, st.MeetingID, value)
	case "password":
		err = e.meetings.UpdateWifiPassword(ctx, st.MeetingID, value)
	default:
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)
	if err := e.send(ctx, update.ChatID, texts.Text(user.Language, "wifi_saved"), nil); err != nil {
		return err
	}
	return e.showAdminWifi(ctx, user, update.ChatID, 0, st.MeetingID)
}

func (e *Engine) dialogAgendaAdd(ctx context.Context, user persistence.User, st session.AgendaAdd, update Update) error {
	lang := user.Language
	value, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}

	switch st.Step {
	case session.AgendaStepTitle:
		st.Title = value
		st.Step = session.AgendaStepStart
		e.sessions.Advance(user.ID, st)
		return e.send(ctx, update.ChatID, texts.Text(lang, "ask_agenda_start"), nil)

	case session.AgendaStepStart:
		st.StartTime = value
		st.Step = session.AgendaStepEnd
		e.sessions.Advance(user.ID, st)
		return e.send(ctx, update.ChatID, texts.Text(lang, "ask_agenda_end"), nil)

	case session.AgendaStepEnd:
		st.EndTime = value
		st.Step = session.AgendaStepDescription
		e.sessions.Advance(user.ID, st)
		return e.send(ctx, update.ChatID, texts.Text(lang, "ask_agenda_desc"), skipMenu(lang))

	case session.AgendaStepDescription:
		return e.completeAgendaAdd(ctx, user, update.ChatID, st, value)
	}
	return e.rejectInput(ctx, user, update.ChatID)
}

func (e *Engine) completeAgendaAdd(ctx context.Context, user persistence.User, chatID int64, st session.AgendaAdd, description string) error {
	if _, err := e.agenda.AddItem(ctx, st.MeetingID, st.Title, st.StartTime, st.EndTime, description); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, chatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)
	if err := e.send(ctx, chatID, texts.Text(user.Language, "agenda_item_saved"), nil); err != nil {
		return err
	}
	return e.showAdminAgenda(ctx, user, chatID, 0, st.MeetingID)
}

func (e *Engine) dialogAgendaFieldEdit(ctx context.Context, user persistence.User, st session.AgendaFieldEdit, update Update) error {
	value, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err := e.agenda.UpdateItemField(ctx, st.AgendaID, application.AgendaField(st.Field), value); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)

	item, err := e.agenda.GetItem(ctx, st.AgendaID)
	if err != nil {
		return err
	}
	if err := e.send(ctx, update.ChatID, texts.Text(user.Language, "value_updated"), nil); err != nil {
		return err
	}
	return e.send(ctx, update.ChatID, renderAgendaItem(item), adminAgendaItemMenu(user.Language, st.AgendaID, st.MeetingID))
}

// dialogPhotoUpload commits each photo as it arrives; the dialog stays
// open so the admin can keep sending more.
func (e *Engine) dialogPhotoUpload(ctx context.Context, user persistence.User, st session.PhotoUpload, update Update) error {
	if update.Kind != KindPhoto || update.PhotoFileID == "" {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err := e.meetings.AddPhoto(ctx, st.MeetingID, update.PhotoFileID); err != nil {
		return err
	}
	return e.send(ctx, update.ChatID, texts.Text(user.Language, "photo_saved"), nil)
}

func isPDFDocument(mime, name string) bool {
	return mime == "application/pdf" || strings.HasSuffix(strings.ToLower(name), ".pdf")
}

func (e *Engine) dialogPDFUpload(ctx context.Context, user persistence.User, st session.PDFUpload, update Update) error {
	if update.Kind != KindDocument || update.DocumentFileID == "" {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if !isPDFDocument(update.DocumentMIME, update.DocumentName) {
		return e.send(ctx, update.ChatID, texts.Text(user.Language, "pdf_invalid"), nil)
	}
	if err := e.meetings.AttachPDF(ctx, st.MeetingID, update.DocumentFileID); err != nil {
		return err
	}
	e.sessions.Clear(user.ID)
	if err := e.send(ctx, update.ChatID, texts.Text(user.Language, "pdf_saved"), nil); err != nil {
		return err
	}
	return e.showAdminPDF(ctx, user, update.ChatID, 0, st.MeetingID)
}

func (e *Engine) dialogGeoSet(ctx context.Context, user persistence.User, st session.GeoSet, update Update) error {
	if update.Kind != KindLocation {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err := e.meetings.SetGeo(ctx, st.MeetingID, update.Latitude, update.Longitude); err != nil {
		return err
	}
	e.sessions.Clear(user.ID)
	if err := e.send(ctx, update.ChatID, texts.Text(user.Language, "geo_saved"), nil); err != nil {
		return err
	}
	return e.showAdminGeo(ctx, user, update.ChatID, 0, st.MeetingID)
}

func (e *Engine) dialogQuestionAsk(ctx context.Context, user persistence.User, st session.QuestionAsk, update Update) error {
	text, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err := e.engagement.AskQuestion(ctx, st.MeetingID, user.ID, text); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)
	return e.send(ctx, update.ChatID, texts.Text(user.Language, "question_saved"), nil)
}

func (e *Engine) dialogFeedbackComment(ctx context.Context, user persistence.User, st session.FeedbackComment, update Update) error {
	text, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	if err := e.engagement.AddComment(ctx, st.MeetingID, user.ID, text); err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			return e.rejectInput(ctx, user, update.ChatID)
		}
		return err
	}
	e.sessions.Clear(user.ID)
	return e.send(ctx, update.ChatID, texts.Text(user.Language, "feedback_saved"), nil)
}

func (e *Engine) dialogAdminLogin(ctx context.Context, user persistence.User, update Update) error {
	password, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	e.sessions.Clear(user.ID)

	if err := e.auth.Login(ctx, user.ID, password); err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			return e.send(ctx, update.ChatID, texts.Text(user.Language, "admin_denied"), nil)
		}
		return err
	}
	return e.send(ctx, update.ChatID, texts.Text(user.Language, "admin_granted"), adminMenu(user.Language))
}

func (e *Engine) dialogNotificationCompose(ctx context.Context, user persistence.User, st session.NotificationCompose, update Update) error {
	text, ok := textInput(update)
	if !ok {
		return e.rejectInput(ctx, user, update.ChatID)
	}
	e.sessions.Clear(user.ID)
	return e.sendAnnouncement(ctx, user, update.ChatID, st.Scope, text)
}
