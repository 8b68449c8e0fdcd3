package application

import (
	"context"
	"errors"
	"testing"
)

func TestAgendaService_AddItem(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewAgendaService(store)

	id, err := svc.AddItem(context.Background(), 1, " Keynote ", "09:00", "10:00", "")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	item, err := svc.GetItem(context.Background(), id)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.Title != "Keynote" {
		t.Errorf("expected trimmed title, got %q", item.Title)
	}

	var vErr *ValidationError
	if _, err := svc.AddItem(context.Background(), 1, " ", "09:00", "", ""); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for blank title, got %v", err)
	}
}

func TestAgendaService_UpdateItemField(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewAgendaService(store)
	id, err := svc.AddItem(context.Background(), 1, "Keynote", "09:00", "10:00", "")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.UpdateItemField(context.Background(), id, AgendaFieldStartTime, "09:30"); err != nil {
		t.Fatalf("UpdateItemField failed: %v", err)
	}
	item, err := svc.GetItem(context.Background(), id)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.StartTime != "09:30" || item.Title != "Keynote" {
		t.Errorf("unexpected item after update: %+v", item)
	}

	if err := svc.UpdateItemField(context.Background(), id, AgendaFieldTitle, ""); err == nil {
		t.Error("expected validation error for empty title")
	}
	if err := svc.UpdateItemField(context.Background(), 999, AgendaFieldEndTime, "11:00"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAgendaService_ToggleAlert(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewAgendaService(store)
	id, err := svc.AddItem(context.Background(), 1, "Keynote", "09:00", "10:00", "")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	on, err := svc.ToggleAlert(context.Background(), id, 100)
	if err != nil {
		t.Fatalf("ToggleAlert failed: %v", err)
	}
	if !on {
		t.Error("expected first toggle to subscribe")
	}

	on, err = svc.ToggleAlert(context.Background(), id, 100)
	if err != nil {
		t.Fatalf("second ToggleAlert failed: %v", err)
	}
	if on {
		t.Error("expected second toggle to unsubscribe")
	}

	set, err := svc.IsAlertSet(context.Background(), id, 100)
	if err != nil {
		t.Fatalf("IsAlertSet failed: %v", err)
	}
	if set {
		t.Error("expected no subscription after round trip")
	}
}

func TestAgendaService_RemoveItem(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewAgendaService(store)
	id, err := svc.AddItem(context.Background(), 1, "Keynote", "09:00", "10:00", "")
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.RemoveItem(context.Background(), id); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if _, err := svc.GetItem(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
	if err := svc.RemoveItem(context.Background(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound removing twice, got %v", err)
	}
}
