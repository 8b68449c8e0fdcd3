package application

import (
	"context"
	"errors"
	"testing"
)

func TestMeetingService_CreateMeeting(t *testing.T) {
	t.Parallel()

	t.Run("persists meetings with trimmed fields", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		svc := NewMeetingService(store, store)

		id, err := svc.CreateMeeting(context.Background(), " GoConf ", " Hall A ", "2026-09-12")
		if err != nil {
			t.Fatalf("CreateMeeting failed: %v", err)
		}
		meeting, err := store.GetMeeting(context.Background(), id)
		if err != nil {
			t.Fatalf("failed to get meeting: %v", err)
		}
		if meeting.Name != "GoConf" || meeting.Location != "Hall A" {
			t.Errorf("unexpected meeting: %+v", meeting)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		svc := NewMeetingService(newMemStore(), nil)
		_, err := svc.CreateMeeting(context.Background(), "  ", "Hall A", "2026-09-12")

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestMeetingService_UpdateMeetingField(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewMeetingService(store, store)
	id, err := svc.CreateMeeting(context.Background(), "GoConf", "Hall A", "2026-09-12")
	if err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}

	if err := svc.UpdateMeetingField(context.Background(), id, MeetingFieldLocation, "Hall B"); err != nil {
		t.Fatalf("UpdateMeetingField failed: %v", err)
	}
	meeting, err := store.GetMeeting(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to get meeting: %v", err)
	}
	if meeting.Location != "Hall B" || meeting.Name != "GoConf" {
		t.Errorf("unexpected meeting after update: %+v", meeting)
	}

	if err := svc.UpdateMeetingField(context.Background(), id, MeetingFieldName, ""); err == nil {
		t.Error("expected validation error for empty name")
	}
	if err := svc.UpdateMeetingField(context.Background(), 999, MeetingFieldDate, "later"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMeetingService_Wifi(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewMeetingService(store, store)
	id, err := svc.CreateMeeting(context.Background(), "GoConf", "", "")
	if err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}

	if err := svc.SetWifi(context.Background(), id, "ConfNet", "s3cret"); err != nil {
		t.Fatalf("SetWifi failed: %v", err)
	}

	// Editing one field keeps the other.
	if err := svc.UpdateWifiPassword(context.Background(), id, "rotated"); err != nil {
		t.Fatalf("UpdateWifiPassword failed: %v", err)
	}
	meeting, err := store.GetMeeting(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to get meeting: %v", err)
	}
	if meeting.WifiNetwork != "ConfNet" || meeting.WifiPassword != "rotated" {
		t.Errorf("unexpected wifi fields: %+v", meeting)
	}

	if err := svc.UpdateWifiNetwork(context.Background(), id, "ConfNet5G"); err != nil {
		t.Fatalf("UpdateWifiNetwork failed: %v", err)
	}
	meeting, err = store.GetMeeting(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to re-get meeting: %v", err)
	}
	if meeting.WifiNetwork != "ConfNet5G" || meeting.WifiPassword != "rotated" {
		t.Errorf("unexpected wifi fields after network edit: %+v", meeting)
	}

	var vErr *ValidationError
	if err := svc.SetWifi(context.Background(), id, "", "pw"); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for empty network, got %v", err)
	}

	if err := svc.ClearWifi(context.Background(), id); err != nil {
		t.Fatalf("ClearWifi failed: %v", err)
	}
	meeting, err = store.GetMeeting(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to re-get meeting: %v", err)
	}
	if meeting.WifiNetwork != "" || meeting.WifiPassword != "" {
		t.Errorf("expected wifi cleared, got %+v", meeting)
	}
}

func TestMeetingService_FinishMeeting(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewMeetingService(store, store)
	id, err := svc.CreateMeeting(context.Background(), "GoConf", "", "")
	if err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}

	if err := svc.FinishMeeting(context.Background(), id); err != nil {
		t.Fatalf("FinishMeeting failed: %v", err)
	}
	if err := svc.FinishMeeting(context.Background(), id); err != nil {
		t.Fatalf("second FinishMeeting should succeed: %v", err)
	}

	ended, err := svc.ListEndedMeetings(context.Background())
	if err != nil {
		t.Fatalf("ListEndedMeetings failed: %v", err)
	}
	if len(ended) != 1 || ended[0].ID != id {
		t.Errorf("expected meeting in ended list, got %+v", ended)
	}
}

func TestMeetingService_AttachPDF(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewMeetingService(store, store)
	id, err := svc.CreateMeeting(context.Background(), "GoConf", "", "")
	if err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}

	if err := svc.AttachPDF(context.Background(), id, "file-abc"); err != nil {
		t.Fatalf("AttachPDF failed: %v", err)
	}
	var vErr *ValidationError
	if err := svc.AttachPDF(context.Background(), id, " "); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for blank file id, got %v", err)
	}
}
