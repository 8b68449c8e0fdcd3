package bot

import (
	"errors"
	"testing"
)

func TestDecodeAction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		data string
		want Action
	}{
		{"lang_ru", Action{Kind: ActionSetLanguage, Value: "ru"}},
		{"back_main", Action{Kind: ActionBackMain}},
		{"back_admin", Action{Kind: ActionBackAdmin}},
		{"fill_profile", Action{Kind: ActionFillProfile}},
		{"meeting_42", Action{Kind: ActionOpenMeeting, MeetingID: 42}},
		{"agenda_7", Action{Kind: ActionShowAgenda, MeetingID: 7}},
		{"agenda_item_3_9", Action{Kind: ActionOpenAgendaItem, AgendaID: 3, MeetingID: 9}},
		{"agenda_alert_toggle_3_9", Action{Kind: ActionToggleAgendaAlert, AgendaID: 3, MeetingID: 9}},
		{"rate_5_good", Action{Kind: ActionRate, MeetingID: 5, Value: "good"}},
		{"feedback_yes_5", Action{Kind: ActionFeedbackYes, MeetingID: 5}},
		{"follow_12", Action{Kind: ActionFollow, MeetingID: 12}},
		{"unfollow_12", Action{Kind: ActionUnfollow, MeetingID: 12}},
		{"admin_meeting_4", Action{Kind: ActionAdminOpenMeeting, MeetingID: 4}},
		{"admin_agenda_item_edit_title_3_9", Action{Kind: ActionAdminAgendaItemEditTitle, AgendaID: 3, MeetingID: 9}},
		{"admin_agenda_item_edit_3_9", Action{Kind: ActionAdminAgendaItemEdit, AgendaID: 3, MeetingID: 9}},
		{"admin_agenda_item_delete_confirm_3_9", Action{Kind: ActionAdminAgendaItemDeleteConfirm, AgendaID: 3, MeetingID: 9}},
		{"admin_pdf_delete_confirm_yes_4", Action{Kind: ActionAdminPDFDeleteConfirm, MeetingID: 4}},
		{"delete_meeting_8", Action{Kind: ActionDeleteMeeting, MeetingID: 8}},
		{"finish_yes_8", Action{Kind: ActionFinishYes, MeetingID: 8}},
		{"admin_notify", Action{Kind: ActionAdminNotify}},
		{"notify_all", Action{Kind: ActionNotifyAll}},
		{"notify_meeting_6", Action{Kind: ActionNotifyMeeting, MeetingID: 6}},
		{"agenda_skip_desc", Action{Kind: ActionSkipAgendaDescription}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.data, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeAction(tc.data)
			if err != nil {
				t.Fatalf("DecodeAction(%q) failed: %v", tc.data, err)
			}
			if got != tc.want {
				t.Errorf("DecodeAction(%q) = %+v, want %+v", tc.data, got, tc.want)
			}
		})
	}
}

func TestDecodeActionRejectsMalformedData(t *testing.T) {
	t.Parallel()

	for _, data := range []string{
		"",
		"bogus",
		"meeting_",
		"meeting_abc",
		"agenda_item_3",
		"lang_de",
		"rate_5_awesome",
		"back_main_extra",
	} {
		data := data
		t.Run(data, func(t *testing.T) {
			t.Parallel()
			if _, err := DecodeAction(data); !errors.Is(err, ErrUnknownAction) {
				t.Errorf("DecodeAction(%q) error = %v, want ErrUnknownAction", data, err)
			}
		})
	}
}

func TestDecodeActionPrefersLongestPrefix(t *testing.T) {
	t.Parallel()

	// agenda_item_ must win over agenda_ even though both match.
	got, err := DecodeAction("agenda_item_1_2")
	if err != nil {
		t.Fatalf("DecodeAction failed: %v", err)
	}
	if got.Kind != ActionOpenAgendaItem {
		t.Errorf("Kind = %v, want ActionOpenAgendaItem", got.Kind)
	}
}
