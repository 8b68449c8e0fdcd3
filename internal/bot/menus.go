package bot

import (
	"fmt"

	"github.com/example/event-assistant/internal/persistence"
	"github.com/example/event-assistant/internal/texts"
)

func btn(lang, key, data string) Button {
	return Button{Label: texts.Text(lang, key), Data: data}
}

func backBtn(lang, data string) Button {
	return btn(lang, "btn_back", data)
}

func languageMenu() *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{{Label: "English", Data: "lang_en"}},
		{{Label: "Русский", Data: "lang_ru"}},
		{{Label: "O'zbekcha", Data: "lang_uz"}},
	}}
}

func mainReplyMenu(lang string) *ReplyMenu {
	return &ReplyMenu{Rows: [][]ReplyButton{
		{{Label: texts.Text(lang, "menu_select_meeting")}},
		{{Label: texts.Text(lang, "menu_my_profile")}},
		{{Label: texts.Text(lang, "menu_change_language")}},
	}}
}

func contactReplyMenu(lang string) *ReplyMenu {
	return &ReplyMenu{
		Rows:    [][]ReplyButton{{{Label: texts.Text(lang, "btn_share_contact"), RequestContact: true}}},
		OneTime: true,
	}
}

func meetingsMenu(lang string, active, ended []persistence.Meeting) *InlineMenu {
	menu := &InlineMenu{}
	for _, meeting := range active {
		menu.Rows = append(menu.Rows, []Button{
			{Label: meeting.Name, Data: fmt.Sprintf("meeting_%d", meeting.ID)},
		})
	}
	for _, meeting := range ended {
		menu.Rows = append(menu.Rows, []Button{
			{Label: meeting.Name, Data: fmt.Sprintf("view_finished_%d", meeting.ID)},
		})
	}
	menu.Rows = append(menu.Rows, []Button{backBtn(lang, "back_main")})
	return menu
}

func meetingMenu(lang string, meeting persistence.Meeting, following bool) *InlineMenu {
	id := meeting.ID
	followData := fmt.Sprintf("follow_%d", id)
	followKey := "btn_follow"
	if following {
		followData = fmt.Sprintf("unfollow_%d", id)
		followKey = "btn_unfollow"
	}
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_agenda", fmt.Sprintf("agenda_%d", id)), btn(lang, "btn_wifi", fmt.Sprintf("wifi_%d", id))},
		{btn(lang, "btn_pdf", fmt.Sprintf("pdf_%d", id)), btn(lang, "btn_photos", fmt.Sprintf("photos_%d", id))},
		{btn(lang, "btn_map", fmt.Sprintf("map_%d", id)), btn(lang, "btn_people", fmt.Sprintf("people_%d", id))},
		{btn(lang, "btn_ask_question", fmt.Sprintf("qna_%d", id))},
		{btn(lang, followKey, followData)},
		{backBtn(lang, "back_meetings")},
	}}
}

func agendaMenu(lang string, meetingID int64, items []persistence.AgendaItem) *InlineMenu {
	menu := &InlineMenu{}
	for _, item := range items {
		label := fmt.Sprintf("%s  %s", item.StartTime, item.Title)
		menu.Rows = append(menu.Rows, []Button{
			{Label: label, Data: fmt.Sprintf("agenda_item_%d_%d", item.ID, meetingID)},
		})
	}
	menu.Rows = append(menu.Rows, []Button{backBtn(lang, fmt.Sprintf("meeting_%d", meetingID))})
	return menu
}

func agendaItemMenu(lang string, agendaID, meetingID int64, alertOn bool) *InlineMenu {
	alertKey := "alert_off"
	if alertOn {
		alertKey = "alert_on"
	}
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, alertKey, fmt.Sprintf("agenda_alert_toggle_%d_%d", agendaID, meetingID))},
		{backBtn(lang, fmt.Sprintf("agenda_%d", meetingID))},
	}}
}

func profileMenu(lang string, complete bool) *InlineMenu {
	if !complete {
		return &InlineMenu{Rows: [][]Button{
			{btn(lang, "btn_fill_profile", "fill_profile")},
			{backBtn(lang, "back_main")},
		}}
	}
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit_profile", "edit_profile")},
		{backBtn(lang, "back_main")},
	}}
}

func editProfileMenu(lang string) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit_name", "edit_name")},
		{btn(lang, "btn_edit_phone", "edit_phone")},
		{btn(lang, "btn_edit_company", "edit_company")},
		{backBtn(lang, "back_main")},
	}}
}

func satisfactionMenu(lang string, meetingID int64) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{
			btn(lang, "btn_rate_good", fmt.Sprintf("rate_%d_good", meetingID)),
			btn(lang, "btn_rate_neutral", fmt.Sprintf("rate_%d_neutral", meetingID)),
			btn(lang, "btn_rate_bad", fmt.Sprintf("rate_%d_bad", meetingID)),
		},
	}}
}

func commentOfferMenu(lang string, meetingID int64) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{
			btn(lang, "btn_yes", fmt.Sprintf("feedback_yes_%d", meetingID)),
			btn(lang, "btn_no", fmt.Sprintf("feedback_no_%d", meetingID)),
		},
	}}
}

func finishedMeetingMenu(lang string, meetingID int64) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_feedback", fmt.Sprintf("back_survey_%d", meetingID))},
		{backBtn(lang, "back_meetings")},
	}}
}

func adminMenu(lang string) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_add_meeting", "admin_add_meeting")},
		{btn(lang, "btn_manage", "admin_manage")},
		{btn(lang, "btn_questions", "admin_questions")},
		{btn(lang, "btn_feedback", "admin_feedback_main")},
		{btn(lang, "btn_notify", "admin_notify")},
		{btn(lang, "btn_exit_admin", "admin_exit")},
	}}
}

func adminMeetingsMenu(lang, prefix string, meetings []persistence.Meeting) *InlineMenu {
	menu := &InlineMenu{}
	for _, meeting := range meetings {
		menu.Rows = append(menu.Rows, []Button{
			{Label: meeting.Name, Data: fmt.Sprintf("%s%d", prefix, meeting.ID)},
		})
	}
	menu.Rows = append(menu.Rows, []Button{backBtn(lang, "back_admin")})
	return menu
}

func adminMeetingMenu(lang string, meetingID int64) *InlineMenu {
	id := meetingID
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit_name", fmt.Sprintf("admin_edit_name_%d", id)), btn(lang, "btn_edit_date", fmt.Sprintf("admin_edit_date_%d", id))},
		{btn(lang, "btn_edit_location", fmt.Sprintf("admin_edit_location_%d", id)), btn(lang, "btn_wifi", fmt.Sprintf("admin_wifi_%d", id))},
		{btn(lang, "btn_agenda", fmt.Sprintf("admin_agenda_%d", id)), btn(lang, "btn_photos", fmt.Sprintf("admin_photos_%d", id))},
		{btn(lang, "btn_pdf", fmt.Sprintf("admin_pdf_%d", id)), btn(lang, "btn_map", fmt.Sprintf("admin_geo_%d", id))},
		{btn(lang, "btn_finish", fmt.Sprintf("admin_finish_%d", id))},
		{btn(lang, "btn_delete", fmt.Sprintf("admin_delete_%d", id))},
		{backBtn(lang, "admin_manage")},
	}}
}

func adminWifiMenu(lang string, meeting persistence.Meeting) *InlineMenu {
	id := meeting.ID
	if meeting.WifiNetwork == "" && meeting.WifiPassword == "" {
		return &InlineMenu{Rows: [][]Button{
			{btn(lang, "btn_add", fmt.Sprintf("add_wifi_%d", id))},
			{backBtn(lang, fmt.Sprintf("admin_meeting_%d", id))},
		}}
	}
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit", fmt.Sprintf("admin_wifi_edit_%d", id))},
		{btn(lang, "btn_clear", fmt.Sprintf("admin_wifi_clear_%d", id))},
		{backBtn(lang, fmt.Sprintf("admin_meeting_%d", id))},
	}}
}

func adminWifiEditMenu(lang string, meetingID int64) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_wifi_network", fmt.Sprintf("admin_wifi_edit_name_%d", meetingID))},
		{btn(lang, "btn_wifi_password", fmt.Sprintf("admin_wifi_edit_password_%d", meetingID))},
		{backBtn(lang, fmt.Sprintf("admin_wifi_%d", meetingID))},
	}}
}

func adminPhotosMenu(lang string, meetingID int64, havePhotos bool) *InlineMenu {
	menu := &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_add", fmt.Sprintf("admin_photos_add_%d", meetingID))},
	}}
	if havePhotos {
		menu.Rows = append(menu.Rows, []Button{btn(lang, "btn_clear", fmt.Sprintf("admin_photos_clear_%d", meetingID))})
	}
	menu.Rows = append(menu.Rows, []Button{backBtn(lang, fmt.Sprintf("admin_meeting_%d", meetingID))})
	return menu
}

func adminPDFMenu(lang string, meeting persistence.Meeting) *InlineMenu {
	id := meeting.ID
	if meeting.PDFFileID == "" {
		return &InlineMenu{Rows: [][]Button{
			{btn(lang, "btn_add", fmt.Sprintf("admin_pdf_add_%d", id))},
			{backBtn(lang, fmt.Sprintf("admin_meeting_%d", id))},
		}}
	}
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit", fmt.Sprintf("admin_pdf_edit_%d", id))},
		{btn(lang, "btn_clear", fmt.Sprintf("admin_pdf_clear_%d", id))},
		{backBtn(lang, fmt.Sprintf("admin_meeting_%d", id))},
	}}
}

func adminGeoMenu(lang string, meeting persistence.Meeting) *InlineMenu {
	id := meeting.ID
	if !meeting.HasGeo() {
		return &InlineMenu{Rows: [][]Button{
			{btn(lang, "btn_add", fmt.Sprintf("add_geo_%d", id))},
			{backBtn(lang, fmt.Sprintf("admin_meeting_%d", id))},
		}}
	}
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit", fmt.Sprintf("admin_geo_edit_%d", id))},
		{btn(lang, "btn_clear", fmt.Sprintf("admin_geo_clear_%d", id))},
		{backBtn(lang, fmt.Sprintf("admin_meeting_%d", id))},
	}}
}

func adminAgendaMenu(lang string, meetingID int64, items []persistence.AgendaItem) *InlineMenu {
	menu := &InlineMenu{}
	for _, item := range items {
		label := fmt.Sprintf("%s  %s", item.StartTime, item.Title)
		menu.Rows = append(menu.Rows, []Button{
			{Label: label, Data: fmt.Sprintf("admin_agenda_item_%d_%d", item.ID, meetingID)},
		})
	}
	menu.Rows = append(menu.Rows, []Button{btn(lang, "btn_add", fmt.Sprintf("admin_agenda_add_%d", meetingID))})
	if len(items) > 0 {
		menu.Rows = append(menu.Rows, []Button{btn(lang, "btn_clear", fmt.Sprintf("admin_agenda_clear_%d", meetingID))})
	}
	menu.Rows = append(menu.Rows, []Button{backBtn(lang, fmt.Sprintf("admin_meeting_%d", meetingID))})
	return menu
}

func adminAgendaItemMenu(lang string, agendaID, meetingID int64) *InlineMenu {
	pair := fmt.Sprintf("%d_%d", agendaID, meetingID)
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit", "admin_agenda_item_edit_"+pair)},
		{btn(lang, "btn_people", "admin_agenda_item_people_"+pair)},
		{btn(lang, "btn_delete", "admin_agenda_item_delete_"+pair)},
		{backBtn(lang, fmt.Sprintf("admin_agenda_%d", meetingID))},
	}}
}

func adminAgendaItemEditMenu(lang string, agendaID, meetingID int64) *InlineMenu {
	pair := fmt.Sprintf("%d_%d", agendaID, meetingID)
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_edit_title", "admin_agenda_item_edit_title_"+pair)},
		{btn(lang, "btn_edit_start", "admin_agenda_item_edit_start_"+pair)},
		{btn(lang, "btn_edit_end", "admin_agenda_item_edit_end_"+pair)},
		{btn(lang, "btn_edit_desc", "admin_agenda_item_edit_desc_"+pair)},
		{backBtn(lang, "admin_agenda_item_"+pair)},
	}}
}

func confirmMenu(lang, yesData, noData string) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_yes", yesData), btn(lang, "btn_no", noData)},
	}}
}

func skipMenu(lang string) *InlineMenu {
	return &InlineMenu{Rows: [][]Button{
		{btn(lang, "btn_skip", "agenda_skip_desc")},
	}}
}

func notifyScopeMenu(lang string, meetings []persistence.Meeting) *InlineMenu {
	menu := &InlineMenu{Rows: [][]Button{
		{btn(lang, "notify_scope_all", "notify_all")},
	}}
	for _, meeting := range meetings {
		menu.Rows = append(menu.Rows, []Button{
			{Label: meeting.Name, Data: fmt.Sprintf("notify_meeting_%d", meeting.ID)},
		})
	}
	menu.Rows = append(menu.Rows, []Button{btn(lang, "notify_scope_none", "notify_none")})
	return menu
}
