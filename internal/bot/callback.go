package bot

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownAction is returned when callback data does not decode to any
// known button action.
var ErrUnknownAction = errors.New("bot: unknown callback action")

// ActionKind identifies a button action.
type ActionKind int

const (
	ActionSetLanguage ActionKind = iota
	ActionBackMain
	ActionBackMeetings
	ActionBackAdmin
	ActionAdminExit

	ActionFillProfile
	ActionEditProfile
	ActionEditName
	ActionEditPhone
	ActionEditCompany

	ActionOpenMeeting
	ActionShowAgenda
	ActionOpenAgendaItem
	ActionToggleAgendaAlert
	ActionSkipAgendaDescription
	ActionShowWifi
	ActionShowPDF
	ActionAskQuestion
	ActionShowPeople
	ActionShowPhotos
	ActionShowMap
	ActionFollow
	ActionUnfollow

	ActionRate
	ActionFeedbackYes
	ActionFeedbackNo
	ActionViewFinished
	ActionBackSurvey

	ActionAdminAddMeeting
	ActionAdminManage
	ActionAdminFeedbackMain
	ActionAdminFeedbackView
	ActionAdminOpenMeeting
	ActionAdminEditName
	ActionAdminEditDate
	ActionAdminEditLocation
	ActionAdminQuestions
	ActionAdminQuestionsMeeting
	ActionAdminFinish
	ActionFinishConfirm
	ActionFinishYes

	ActionAdminWifi
	ActionAdminWifiEdit
	ActionAdminWifiEditName
	ActionAdminWifiEditPassword
	ActionAdminWifiClear
	ActionAddWifi

	ActionAdminPhotos
	ActionAdminPhotosAdd
	ActionAdminPhotosClear
	ActionAddPhotos

	ActionAdminPDF
	ActionAdminPDFAdd
	ActionAdminPDFEdit
	ActionAdminPDFClear
	ActionAdminPDFDeleteConfirm

	ActionAdminGeo
	ActionAdminGeoEdit
	ActionAdminGeoClear
	ActionAddGeo

	ActionAdminAgenda
	ActionAdminAgendaAdd
	ActionAdminAgendaClear
	ActionAdminAgendaItem
	ActionAdminAgendaItemEdit
	ActionAdminAgendaItemEditTitle
	ActionAdminAgendaItemEditStart
	ActionAdminAgendaItemEditEnd
	ActionAdminAgendaItemEditDesc
	ActionAdminAgendaItemDelete
	ActionAdminAgendaItemDeleteConfirm
	ActionAdminAgendaItemPeople

	ActionAdminDelete
	ActionConfirmDelete
	ActionDeleteMeeting

	ActionAdminNotify
	ActionNotifyAll
	ActionNotifyMeeting
	ActionNotifyNone
)

// Action is a decoded button press. Which payload fields are set depends on
// the kind: meeting-scoped actions carry MeetingID, agenda-scoped actions
// carry AgendaID and MeetingID, language and rating actions carry Value.
type Action struct {
	Kind      ActionKind
	MeetingID int64
	AgendaID  int64
	Value     string
}

// payloadForm describes how the text after a rule's prefix is interpreted.
type payloadForm int

const (
	payloadNone payloadForm = iota
	payloadMeetingID
	payloadAgendaPair
	payloadLanguage
	payloadRating
)

type decodeRule struct {
	prefix  string
	kind    ActionKind
	payload payloadForm
}

// decodeRules maps callback data prefixes to actions. The table is sorted
// by descending prefix length before use so the most specific prefix wins.
var decodeRules = []decodeRule{
	{"lang_", ActionSetLanguage, payloadLanguage},
	{"back_main", ActionBackMain, payloadNone},
	{"back_meetings", ActionBackMeetings, payloadNone},
	{"back_admin", ActionBackAdmin, payloadNone},
	{"admin_exit", ActionAdminExit, payloadNone},

	{"fill_profile", ActionFillProfile, payloadNone},
	{"edit_profile", ActionEditProfile, payloadNone},
	{"edit_name", ActionEditName, payloadNone},
	{"edit_phone", ActionEditPhone, payloadNone},
	{"edit_company", ActionEditCompany, payloadNone},

	{"meeting_", ActionOpenMeeting, payloadMeetingID},
	{"agenda_", ActionShowAgenda, payloadMeetingID},
	{"agenda_item_", ActionOpenAgendaItem, payloadAgendaPair},
	{"agenda_alert_toggle_", ActionToggleAgendaAlert, payloadAgendaPair},
	{"agenda_skip_desc", ActionSkipAgendaDescription, payloadNone},
	{"wifi_", ActionShowWifi, payloadMeetingID},
	{"pdf_", ActionShowPDF, payloadMeetingID},
	{"qna_", ActionAskQuestion, payloadMeetingID},
	{"people_", ActionShowPeople, payloadMeetingID},
	{"photos_", ActionShowPhotos, payloadMeetingID},
	{"map_", ActionShowMap, payloadMeetingID},
	{"follow_", ActionFollow, payloadMeetingID},
	{"unfollow_", ActionUnfollow, payloadMeetingID},

	{"rate_", ActionRate, payloadRating},
	{"feedback_yes_", ActionFeedbackYes, payloadMeetingID},
	{"feedback_no_", ActionFeedbackNo, payloadMeetingID},
	{"view_finished_", ActionViewFinished, payloadMeetingID},
	{"back_survey_", ActionBackSurvey, payloadMeetingID},

	{"admin_add_meeting", ActionAdminAddMeeting, payloadNone},
	{"admin_manage", ActionAdminManage, payloadNone},
	{"admin_feedback_main", ActionAdminFeedbackMain, payloadNone},
	{"admin_feedback_view_", ActionAdminFeedbackView, payloadMeetingID},
	{"admin_meeting_", ActionAdminOpenMeeting, payloadMeetingID},
	{"admin_edit_name_", ActionAdminEditName, payloadMeetingID},
	{"admin_edit_date_", ActionAdminEditDate, payloadMeetingID},
	{"admin_edit_location_", ActionAdminEditLocation, payloadMeetingID},
	{"admin_questions", ActionAdminQuestions, payloadNone},
	{"admin_questions_meeting_", ActionAdminQuestionsMeeting, payloadMeetingID},
	{"admin_finish_", ActionAdminFinish, payloadMeetingID},
	{"finish_confirm_", ActionFinishConfirm, payloadMeetingID},
	{"finish_yes_", ActionFinishYes, payloadMeetingID},

	{"admin_wifi_", ActionAdminWifi, payloadMeetingID},
	{"admin_wifi_edit_", ActionAdminWifiEdit, payloadMeetingID},
	{"admin_wifi_edit_name_", ActionAdminWifiEditName, payloadMeetingID},
	{"admin_wifi_edit_password_", ActionAdminWifiEditPassword, payloadMeetingID},
	{"admin_wifi_clear_", ActionAdminWifiClear, payloadMeetingID},
	{"add_wifi_", ActionAddWifi, payloadMeetingID},

	{"admin_photos_", ActionAdminPhotos, payloadMeetingID},
	{"admin_photos_add_", ActionAdminPhotosAdd, payloadMeetingID},
	{"admin_photos_clear_", ActionAdminPhotosClear, payloadMeetingID},
	{"add_photos_", ActionAddPhotos, payloadMeetingID},

	{"admin_pdf_", ActionAdminPDF, payloadMeetingID},
	{"admin_pdf_add_", ActionAdminPDFAdd, payloadMeetingID},
	{"admin_pdf_edit_", ActionAdminPDFEdit, payloadMeetingID},
	{"admin_pdf_clear_", ActionAdminPDFClear, payloadMeetingID},
	{"admin_pdf_delete_confirm_yes_", ActionAdminPDFDeleteConfirm, payloadMeetingID},

	{"admin_geo_", ActionAdminGeo, payloadMeetingID},
	{"admin_geo_edit_", ActionAdminGeoEdit, payloadMeetingID},
	{"admin_geo_clear_", ActionAdminGeoClear, payloadMeetingID},
	{"add_geo_", ActionAddGeo, payloadMeetingID},

	{"admin_agenda_", ActionAdminAgenda, payloadMeetingID},
	{"admin_agenda_add_", ActionAdminAgendaAdd, payloadMeetingID},
	{"admin_agenda_clear_", ActionAdminAgendaClear, payloadMeetingID},
	{"admin_agenda_item_", ActionAdminAgendaItem, payloadAgendaPair},
	{"admin_agenda_item_edit_", ActionAdminAgendaItemEdit, payloadAgendaPair},
	{"admin_agenda_item_edit_title_", ActionAdminAgendaItemEditTitle, payloadAgendaPair},
	{"admin_agenda_item_edit_start_", ActionAdminAgendaItemEditStart, payloadAgendaPair},
	{"admin_agenda_item_edit_end_", ActionAdminAgendaItemEditEnd, payloadAgendaPair},
	{"admin_agenda_item_edit_desc_", ActionAdminAgendaItemEditDesc, payloadAgendaPair},
	{"admin_agenda_item_delete_", ActionAdminAgendaItemDelete, payloadAgendaPair},
	{"admin_agenda_item_delete_confirm_", ActionAdminAgendaItemDeleteConfirm, payloadAgendaPair},
	{"admin_agenda_item_people_", ActionAdminAgendaItemPeople, payloadAgendaPair},

	{"admin_delete_", ActionAdminDelete, payloadMeetingID},
	{"confirm_delete_", ActionConfirmDelete, payloadMeetingID},
	{"delete_meeting_", ActionDeleteMeeting, payloadMeetingID},

	{"admin_notify", ActionAdminNotify, payloadNone},
	{"notify_all", ActionNotifyAll, payloadNone},
	{"notify_meeting_", ActionNotifyMeeting, payloadMeetingID},
	{"notify_none", ActionNotifyNone, payloadNone},
}

var orderedRules = func() []decodeRule {
	rules := make([]decodeRule, len(decodeRules))
	copy(rules, decodeRules)
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].prefix) > len(rules[j].prefix)
	})
	return rules
}()

// DecodeAction parses callback data into an Action using the rule table.
func DecodeAction(data string) (Action, error) {
	for _, rule := range orderedRules {
		if !strings.HasPrefix(data, rule.prefix) {
			continue
		}
		rest := data[len(rule.prefix):]
		action, ok := decodePayload(rule, rest)
		if !ok {
			continue
		}
		return action, nil
	}
	return Action{}, ErrUnknownAction
}

func decodePayload(rule decodeRule, rest string) (Action, bool) {
	action := Action{Kind: rule.kind}
	switch rule.payload {
	case payloadNone:
		if rest != "" {
			return Action{}, false
		}
	case payloadMeetingID:
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Action{}, false
		}
		action.MeetingID = id
	case payloadAgendaPair:
		agendaPart, meetingPart, ok := strings.Cut(rest, "_")
		if !ok {
			return Action{}, false
		}
		agendaID, err := strconv.ParseInt(agendaPart, 10, 64)
		if err != nil {
			return Action{}, false
		}
		meetingID, err := strconv.ParseInt(meetingPart, 10, 64)
		if err != nil {
			return Action{}, false
		}
		action.AgendaID = agendaID
		action.MeetingID = meetingID
	case payloadLanguage:
		switch rest {
		case "en", "ru", "uz":
			action.Value = rest
		default:
			return Action{}, false
		}
	case payloadRating:
		idPart, rating, ok := strings.Cut(rest, "_")
		if !ok {
			return Action{}, false
		}
		id, err := strconv.ParseInt(idPart, 10, 64)
		if err != nil {
			return Action{}, false
		}
		switch rating {
		case "good", "neutral", "bad":
		default:
			return Action{}, false
		}
		action.MeetingID = id
		action.Value = rating
	}
	return action, true
}
