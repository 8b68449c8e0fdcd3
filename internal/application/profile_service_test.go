package application

import (
	"context"
	"errors"
	"testing"
)

func TestProfileService_EnsureUser(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewProfileService(store, "en")

	user, created, err := svc.EnsureUser(context.Background(), 100)
	if err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	if !created {
		t.Error("expected first contact to create a record")
	}
	if user.Language != "en" {
		t.Errorf("expected default language en, got %q", user.Language)
	}

	_, created, err = svc.EnsureUser(context.Background(), 100)
	if err != nil {
		t.Fatalf("second EnsureUser failed: %v", err)
	}
	if created {
		t.Error("expected existing record to be reused")
	}
}

func TestProfileService_SaveProfile(t *testing.T) {
	t.Parallel()

	t.Run("stores all fields", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		svc := NewProfileService(store, "en")
		if _, _, err := svc.EnsureUser(context.Background(), 100); err != nil {
			t.Fatalf("EnsureUser failed: %v", err)
		}

		if err := svc.SaveProfile(context.Background(), 100, " Alice ", "+15550100", "Acme"); err != nil {
			t.Fatalf("SaveProfile failed: %v", err)
		}
		user, err := store.GetUser(context.Background(), 100)
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if user.Name != "Alice" || user.Phone != "+15550100" || user.Company != "Acme" {
			t.Errorf("unexpected profile: %+v", user)
		}
	})

	t.Run("rejects empty fields with validation error", func(t *testing.T) {
		t.Parallel()

		svc := NewProfileService(newMemStore(), "en")
		err := svc.SaveProfile(context.Background(), 100, "", "+15550100", "")

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := vErr.FieldErrors["name"]; !ok {
			t.Error("expected name field error")
		}
		if _, ok := vErr.FieldErrors["company"]; !ok {
			t.Error("expected company field error")
		}
		if _, ok := vErr.FieldErrors["phone"]; ok {
			t.Error("did not expect phone field error")
		}
	})
}

func TestProfileService_UpdateProfileField(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewProfileService(store, "en")
	if _, _, err := svc.EnsureUser(context.Background(), 100); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	if err := svc.SaveProfile(context.Background(), 100, "Alice", "+15550100", "Acme"); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	if err := svc.UpdateProfileField(context.Background(), 100, ProfileFieldCompany, "Globex"); err != nil {
		t.Fatalf("UpdateProfileField failed: %v", err)
	}

	user, err := store.GetUser(context.Background(), 100)
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	// Only the requested field changes.
	if user.Company != "Globex" {
		t.Errorf("expected company Globex, got %q", user.Company)
	}
	if user.Name != "Alice" || user.Phone != "+15550100" {
		t.Errorf("expected other fields untouched, got %+v", user)
	}

	if err := svc.UpdateProfileField(context.Background(), 100, ProfileFieldName, "  "); err == nil {
		t.Error("expected validation error for blank value")
	}
	if err := svc.UpdateProfileField(context.Background(), 999, ProfileFieldName, "Bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestProfileService_SetLanguage(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := NewProfileService(store, "en")
	if _, _, err := svc.EnsureUser(context.Background(), 100); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	if err := svc.SetLanguage(context.Background(), 100, "ru"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	user, err := store.GetUser(context.Background(), 100)
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if user.Language != "ru" {
		t.Errorf("expected language ru, got %q", user.Language)
	}

	var vErr *ValidationError
	if err := svc.SetLanguage(context.Background(), 100, "fr"); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for unsupported language, got %v", err)
	}
}
