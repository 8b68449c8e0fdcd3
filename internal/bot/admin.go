package bot

import (
	"context"
	"fmt"

	"github.com/example/event-assistant/internal/persistence"
	"github.com/example/event-assistant/internal/session"
	"github.com/example/event-assistant/internal/texts"
)

// isAdminAction reports whether an action is restricted to administrators.
func isAdminAction(kind ActionKind) bool {
	switch kind {
	case ActionSetLanguage, ActionBackMain, ActionBackMeetings,
		ActionFillProfile, ActionEditProfile, ActionEditName, ActionEditPhone, ActionEditCompany,
		ActionOpenMeeting, ActionShowAgenda, ActionOpenAgendaItem, ActionToggleAgendaAlert,
		ActionShowWifi, ActionShowPDF, ActionAskQuestion, ActionShowPeople, ActionShowPhotos,
		ActionShowMap, ActionFollow, ActionUnfollow,
		ActionRate, ActionFeedbackYes, ActionFeedbackNo, ActionViewFinished, ActionBackSurvey:
		return false
	}
	return true
}

func (e *Engine) handleAdminAction(ctx context.Context, user persistence.User, update Update, action Action) error {
	lang := user.Language
	chatID := update.ChatID
	messageID := update.MessageID

	switch action.Kind {
	case ActionBackAdmin:
		e.sessions.Clear(user.ID)
		return e.render(ctx, chatID, messageID, texts.Text(lang, "admin_menu"), adminMenu(lang))

	case ActionAdminExit:
		if err := e.auth.Logout(ctx, user.ID); err != nil {
			return err
		}
		e.sessions.Clear(user.ID)
		return e.sendReply(ctx, chatID, texts.Text(lang, "admin_exit"), mainReplyMenu(lang))

	case ActionAdminAddMeeting:
		e.sessions.Begin(user.ID, session.MeetingCreate{Step: session.MeetingStepName})
		return e.send(ctx, chatID, texts.Text(lang, "ask_meeting_name"), nil)

	case ActionAdminManage:
		return e.showManageList(ctx, user, chatID, messageID)

	case ActionAdminOpenMeeting:
		return e.showAdminMeeting(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminEditName:
		return e.beginMeetingFieldEdit(ctx, user, chatID, action.MeetingID, "name")
	case ActionAdminEditDate:
		return e.beginMeetingFieldEdit(ctx, user, chatID, action.MeetingID, "date")
	case ActionAdminEditLocation:
		return e.beginMeetingFieldEdit(ctx, user, chatID, action.MeetingID, "location")

	case ActionAdminQuestions:
		meetings, err := e.allMeetings(ctx)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, messageID, texts.Text(lang, "btn_questions"),
			adminMeetingsMenu(lang, "admin_questions_meeting_", meetings))

	case ActionAdminQuestionsMeeting:
		questions, err := e.engagement.ListQuestions(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		back := &InlineMenu{Rows: [][]Button{{backBtn(lang, "admin_questions")}}}
		return e.render(ctx, chatID, messageID, renderQuestions(lang, questions), back)

	case ActionAdminFeedbackMain:
		ended, err := e.meetings.ListEndedMeetings(ctx)
		if err != nil {
			return err
		}
		text := texts.Text(lang, "finished_meetings")
		if len(ended) == 0 {
			text = texts.Text(lang, "no_finished_meetings")
		}
		return e.render(ctx, chatID, messageID, text,
			adminMeetingsMenu(lang, "admin_feedback_view_", ended))

	case ActionAdminFeedbackView:
		summary, err := e.engagement.SummarizeFeedback(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		back := &InlineMenu{Rows: [][]Button{{backBtn(lang, "admin_feedback_main")}}}
		return e.render(ctx, chatID, messageID, renderFeedbackSummary(lang, summary), back)

	case ActionAdminFinish, ActionFinishConfirm:
		menu := confirmMenu(lang,
			fmt.Sprintf("finish_yes_%d", action.MeetingID),
			fmt.Sprintf("admin_meeting_%d", action.MeetingID))
		return e.render(ctx, chatID, messageID, texts.Text(lang, "confirm_finish"), menu)

	case ActionFinishYes:
		return e.finishMeeting(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminWifi:
		return e.showAdminWifi(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminWifiEdit:
		meeting, err := e.meetings.GetMeeting(ctx, action.MeetingID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, messageID,
			texts.Text(lang, "wifi_info", meeting.WifiNetwork, meeting.WifiPassword),
			adminWifiEditMenu(lang, action.MeetingID))

	case ActionAdminWifiEditName:
		e.sessions.Begin(user.ID, session.WifiFieldEdit{MeetingID: action.MeetingID, Field: "network"})
		return e.send(ctx, chatID, texts.Text(lang, "ask_wifi_network"), nil)

	case ActionAdminWifiEditPassword:
		e.sessions.Begin(user.ID, session.WifiFieldEdit{MeetingID: action.MeetingID, Field: "password"})
		return e.send(ctx, chatID, texts.Text(lang, "ask_wifi_password"), nil)

	case ActionAdminWifiClear:
		if err := e.meetings.ClearWifi(ctx, action.MeetingID); err != nil {
			return err
		}
		return e.showAdminWifi(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAddWifi:
		e.sessions.Begin(user.ID, session.WifiSetup{MeetingID: action.MeetingID})
		return e.send(ctx, chatID, texts.Text(lang, "ask_wifi_network"), nil)

	case ActionAdminPhotos:
		return e.showAdminPhotos(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminPhotosAdd, ActionAddPhotos:
		e.sessions.Begin(user.ID, session.PhotoUpload{MeetingID: action.MeetingID})
		return e.send(ctx, chatID, texts.Text(lang, "ask_photo"), nil)

	case ActionAdminPhotosClear:
		if err := e.meetings.ClearPhotos(ctx, action.MeetingID); err != nil {
			return err
		}
		return e.showAdminPhotos(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminPDF:
		return e.showAdminPDF(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminPDFAdd, ActionAdminPDFEdit:
		e.sessions.Begin(user.ID, session.PDFUpload{MeetingID: action.MeetingID})
		return e.send(ctx, chatID, texts.Text(lang, "ask_pdf"), nil)

	case ActionAdminPDFClear:
		menu := confirmMenu(lang,
			fmt.Sprintf("admin_pdf_delete_confirm_yes_%d", action.MeetingID),
			fmt.Sprintf("admin_pdf_%d", action.MeetingID))
		return e.render(ctx, chatID, messageID, texts.Text(lang, "confirm_delete"), menu)

	case ActionAdminPDFDeleteConfirm:
		if err := e.meetings.ClearPDF(ctx, action.MeetingID); err != nil {
			return err
		}
		return e.showAdminPDF(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminGeo:
		return e.showAdminGeo(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminGeoEdit, ActionAddGeo:
		e.sessions.Begin(user.ID, session.GeoSet{MeetingID: action.MeetingID})
		return e.send(ctx, chatID, texts.Text(lang, "ask_geo"), nil)

	case ActionAdminGeoClear:
		if err := e.meetings.ClearGeo(ctx, action.MeetingID); err != nil {
			return err
		}
		return e.showAdminGeo(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminAgenda:
		return e.showAdminAgenda(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminAgendaAdd:
		e.sessions.Begin(user.ID, session.AgendaAdd{MeetingID: action.MeetingID, Step: session.AgendaStepTitle})
		return e.send(ctx, chatID, texts.Text(lang, "ask_agenda_title"), nil)

	case ActionAdminAgendaClear:
		if err := e.agenda.ClearItems(ctx, action.MeetingID); err != nil {
			return err
		}
		return e.showAdminAgenda(ctx, user, chatID, messageID, action.MeetingID)

	case ActionAdminAgendaItem:
		item, err := e.agenda.GetItem(ctx, action.AgendaID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, messageID, renderAgendaItem(item),
			adminAgendaItemMenu(lang, action.AgendaID, action.MeetingID))

	case ActionAdminAgendaItemEdit:
		item, err := e.agenda.GetItem(ctx, action.AgendaID)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, messageID, renderAgendaItem(item),
			adminAgendaItemEditMenu(lang, action.AgendaID, action.MeetingID))

	case ActionAdminAgendaItemEditTitle:
		return e.beginAgendaFieldEdit(ctx, user, chatID, action, "title")
	case ActionAdminAgendaItemEditStart:
		return e.beginAgendaFieldEdit(ctx, user, chatID, action, "start_time")
	case ActionAdminAgendaItemEditEnd:
		return e.beginAgendaFieldEdit(ctx, user, chatID, action, "end_time")
	case ActionAdminAgendaItemEditDesc:
		return e.beginAgendaFieldEdit(ctx, user, chatID, action, "description")

	case ActionAdminAgendaItemDelete:
		pair := fmt.Sprintf("%d_%d", action.AgendaID, action.MeetingID)
		menu := confirmMenu(lang, "admin_agenda_item_delete_confirm_"+pair, "admin_agenda_item_"+pair)
		return e.render(ctx, chatID, messageID, texts.Text(lang, "confirm_delete"), menu)

	case ActionAdminAgendaItemDeleteConfirm:
		if err := e.agenda.RemoveItem(ctx, action.AgendaID); err != nil {
			return err
		}
		if err := e.send(ctx, chatID, texts.Text(lang, "agenda_item_deleted"), nil); err != nil {
			return err
		}
		return e.showAdminAgenda(ctx, user, chatID, 0, action.MeetingID)

	case ActionAdminAgendaItemPeople:
		return e.showAgendaItemPeople(ctx, user, chatID, messageID, action)

	case ActionAdminDelete:
		menu := confirmMenu(lang,
			fmt.Sprintf("delete_meeting_%d", action.MeetingID),
			fmt.Sprintf("admin_meeting_%d", action.MeetingID))
		return e.render(ctx, chatID, messageID, texts.Text(lang, "confirm_delete"), menu)

	case ActionConfirmDelete, ActionDeleteMeeting:
		if err := e.meetings.DeleteMeeting(ctx, action.MeetingID); err != nil {
			return err
		}
		if err := e.send(ctx, chatID, texts.Text(lang, "meeting_deleted"), nil); err != nil {
			return err
		}
		return e.showManageList(ctx, user, chatID, 0)

	case ActionAdminNotify:
		active, err := e.meetings.ListActiveMeetings(ctx)
		if err != nil {
			return err
		}
		return e.render(ctx, chatID, messageID, texts.Text(lang, "notify_scope"), notifyScopeMenu(lang, active))

	case ActionNotifyAll:
		e.sessions.Begin(user.ID, session.NotificationCompose{Scope: session.BroadcastScope{All: true}})
		return e.send(ctx, chatID, texts.Text(lang, "ask_notification"), nil)

	case ActionNotifyMeeting:
		e.sessions.Begin(user.ID, session.NotificationCompose{Scope: session.BroadcastScope{MeetingID: action.MeetingID}})
		return e.send(ctx, chatID, texts.Text(lang, "ask_notification"), nil)

	case ActionNotifyNone:
		e.sessions.Clear(user.ID)
		return e.render(ctx, chatID, messageID, texts.Text(lang, "admin_menu"), adminMenu(lang))

	case ActionSkipAgendaDescription:
		state, ok := e.sessions.Current(user.ID).(session.AgendaAdd)
		if !ok || state.Step != session.AgendaStepDescription {
			return e.send(ctx, chatID, texts.Text(lang, "invalid_input"), nil)
		}
		return e.completeAgendaAdd(ctx, user, chatID, state, "")
	}
	return nil
}

func (e *Engine) beginMeetingFieldEdit(ctx context.Context, user persistence.User, chatID, meetingID int64, field string) error {
	e.sessions.Begin(user.ID, session.MeetingFieldEdit{MeetingID: meetingID, Field: field})
	return e.send(ctx, chatID, texts.Text(user.Language, "ask_new_value"), nil)
}

func (e *Engine) beginAgendaFieldEdit(ctx context.Context, user persistence.User, chatID int64, action Action, field string) error {
	e.sessions.Begin(user.ID, session.AgendaFieldEdit{
		AgendaID:  action.AgendaID,
		MeetingID: action.MeetingID,
		Field:     field,
	})
	return e.send(ctx, chatID, texts.Text(user.Language, "ask_new_value"), nil)
}

func (e *Engine) allMeetings(ctx context.Context) ([]persistence.Meeting, error) {
	active, err := e.meetings.ListActiveMeetings(ctx)
	if err != nil {
		return nil, err
	}
	ended, err := e.meetings.ListEndedMeetings(ctx)
	if err != nil {
		return nil, err
	}
	return append(active, ended...), nil
}

func (e *Engine) showManageList(ctx context.Context, user persistence.User, chatID int64, messageID int) error {
	meetings, err := e.allMeetings(ctx)
	if err != nil {
		return err
	}
	text := texts.Text(user.Language, "meetings_list")
	if len(meetings) == 0 {
		text = texts.Text(user.Language, "no_meetings")
	}
	return e.render(ctx, chatID, messageID, text, adminMeetingsMenu(user.Language, "admin_meeting_", meetings))
}

func (e *Engine) showAdminMeeting(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	meeting, err := e.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	return e.render(ctx, chatID, messageID,
		renderMeetingDetails(user.Language, meeting), adminMeetingMenu(user.Language, meetingID))
}

func (e *Engine) showAdminWifi(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	meeting, err := e.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	text := texts.Text(user.Language, "wifi_none")
	if meeting.WifiNetwork != "" || meeting.WifiPassword != "" {
		text = texts.Text(user.Language, "wifi_info", meeting.WifiNetwork, meeting.WifiPassword)
	}
	return e.render(ctx, chatID, messageID, text, adminWifiMenu(user.Language, meeting))
}

func (e *Engine) showAdminPhotos(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	photos, err := e.meetings.ListPhotos(ctx, meetingID)
	if err != nil {
		return err
	}
	text := texts.Text(user.Language, "photos_none")
	if len(photos) > 0 {
		text = fmt.Sprintf("%s (%d)", texts.Text(user.Language, "btn_photos"), len(photos))
	}
	return e.render(ctx, chatID, messageID, text, adminPhotosMenu(user.Language, meetingID, len(photos) > 0))
}

func (e *Engine) showAdminPDF(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	meeting, err := e.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	text := texts.Text(user.Language, "pdf_none")
	if meeting.PDFFileID != "" {
		text = texts.Text(user.Language, "btn_pdf")
	}
	return e.render(ctx, chatID, messageID, text, adminPDFMenu(user.Language, meeting))
}

func (e *Engine) showAdminGeo(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	meeting, err := e.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	text := texts.Text(user.Language, "geo_none")
	if meeting.HasGeo() {
		text = texts.Text(user.Language, "btn_map")
	}
	return e.render(ctx, chatID, messageID, text, adminGeoMenu(user.Language, meeting))
}

func (e *Engine) showAdminAgenda(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	items, err := e.agenda.ListItems(ctx, meetingID)
	if err != nil {
		return err
	}
	return e.render(ctx, chatID, messageID,
		renderAgenda(user.Language, items), adminAgendaMenu(user.Language, meetingID, items))
}

func (e *Engine) showAgendaItemPeople(ctx context.Context, user persistence.User, chatID int64, messageID int, action Action) error {
	userIDs, err := e.agenda.ListAlertUsers(ctx, action.AgendaID)
	if err != nil {
		return err
	}
	var people []persistence.User
	for _, id := range userIDs {
		person, err := e.profiles.GetProfile(ctx, id)
		if err != nil {
			continue
		}
		people = append(people, person)
	}
	pair := fmt.Sprintf("%d_%d", action.AgendaID, action.MeetingID)
	back := &InlineMenu{Rows: [][]Button{{backBtn(user.Language, "admin_agenda_item_" + pair)}}}
	return e.render(ctx, chatID, messageID, renderPeople(user.Language, people), back)
}

// finishMeeting marks the meeting ended and sends the satisfaction survey
// to everyone registered, each in their own language.
func (e *Engine) finishMeeting(ctx context.Context, user persistence.User, chatID int64, messageID int, meetingID int64) error {
	meeting, err := e.meetings.GetMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	if err := e.meetings.FinishMeeting(ctx, meetingID); err != nil {
		return err
	}

	recipients, err := e.engagement.ListParticipantIDs(ctx, meetingID)
	if err != nil {
		return err
	}
	report := e.dispatcher.Dispatch(ctx, recipients, func(ctx context.Context, recipientID int64) error {
		recipient, err := e.profiles.GetProfile(ctx, recipientID)
		if err != nil {
			return err
		}
		return e.messenger.SendMessage(ctx, Message{
			ChatID: recipientID,
			Text:   texts.Text(recipient.Language, "survey_prompt", meeting.Name),
			Inline: satisfactionMenu(recipient.Language, meetingID),
		})
	})

	if err := e.send(ctx, chatID, texts.Text(user.Language, "meeting_finished"), nil); err != nil {
		return err
	}
	summary := texts.Text(user.Language, "notification_sent", report.Succeeded, report.Attempted)
	if err := e.send(ctx, chatID, summary, nil); err != nil {
		return err
	}
	return e.showManageList(ctx, user, chatID, messageID)
}

// sendAnnouncement delivers composed notification text to the selected
// audience and reports the delivery counts back to the admin.
func (e *Engine) sendAnnouncement(ctx context.Context, user persistence.User, chatID int64, scope session.BroadcastScope, text string) error {
	var recipients []int64
	var err error
	if scope.All {
		recipients, err = e.profiles.ListUserIDs(ctx)
	} else {
		recipients, err = e.engagement.ListParticipantIDs(ctx, scope.MeetingID)
	}
	if err != nil {
		return err
	}

	report := e.dispatcher.Dispatch(ctx, recipients, func(ctx context.Context, recipientID int64) error {
		return e.messenger.SendMessage(ctx, Message{ChatID: recipientID, Text: text})
	})

	summary := texts.Text(user.Language, "notification_sent", report.Succeeded, report.Attempted)
	if err := e.send(ctx, chatID, summary, nil); err != nil {
		return err
	}
	return e.send(ctx, chatID, texts.Text(user.Language, "admin_menu"), adminMenu(user.Language))
}
