package broadcast

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcher_ToleratesIndividualFailures(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(time.Second, nil)
	failing := errors.New("blocked")

	report := d.Dispatch(context.Background(), []int64{100, 200, 300}, func(_ context.Context, userID int64) error {
		if userID == 200 {
			return failing
		}
		return nil
	})

	if report.Attempted != 3 {
		t.Errorf("expected 3 attempted, got %d", report.Attempted)
	}
	if report.Succeeded != 2 {
		t.Errorf("expected 2 succeeded, got %d", report.Succeeded)
	}
	if len(report.Failures) != 1 || report.Failures[0].UserID != 200 {
		t.Fatalf("unexpected failures: %+v", report.Failures)
	}
	if !errors.Is(report.Failures[0].Err, failing) {
		t.Errorf("expected recorded error, got %v", report.Failures[0].Err)
	}
	if report.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a non-zero dispatch id")
	}
}

func TestDispatcher_EmptyRecipientList(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(0, nil)
	report := d.Dispatch(context.Background(), nil, func(context.Context, int64) error {
		t.Fatal("send should not be called")
		return nil
	})

	if report.Attempted != 0 || report.Succeeded != 0 || len(report.Failures) != 0 {
		t.Errorf("unexpected report for empty list: %+v", report)
	}
}

func TestDispatcher_CancelledContextStopsRun(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(0, nil)
	ctx, cancel := context.WithCancel(context.Background())

	var delivered []int64
	report := d.Dispatch(ctx, []int64{100, 200, 300}, func(_ context.Context, userID int64) error {
		delivered = append(delivered, userID)
		if userID == 100 {
			cancel()
		}
		return nil
	})

	if len(delivered) != 1 {
		t.Fatalf("expected run to stop after cancellation, delivered %v", delivered)
	}
	if report.Succeeded != 1 {
		t.Errorf("expected 1 succeeded, got %d", report.Succeeded)
	}
	if len(report.Failures) != 2 {
		t.Errorf("expected remaining recipients reported as failures, got %+v", report.Failures)
	}
}
