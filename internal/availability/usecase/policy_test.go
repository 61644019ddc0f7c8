package usecase

import (
	"context"
	"errors"
	"testing"

	"mobile-recovery-booking/internal/availability"
	"mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/internal/model"
	"mobile-recovery-booking/pkg/gcalendar"
)

func slotByStart(t *testing.T, out availability.BookableSlotsOutput, start string) availability.BookableSlot {
	t.Helper()
	for _, s := range out.Slots {
		if s.Start == start {
			return s
		}
	}
	t.Fatalf("slot %s missing from output", start)
	return availability.BookableSlot{}
}

func TestBookableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Date", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)
		_, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "tomorrow"})
		if !errors.Is(err, availability.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Upstream Failure Propagates", func(t *testing.T) {
		events := &mockEvents{listFunc: func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			return nil, errors.New("boom")
		}}
		uc := newTestUseCase(t, events, &mockRepo{}, nil)
		_, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-20"})
		if !errors.Is(err, availability.ErrUpstreamFetch) {
			t.Fatalf("expected ErrUpstreamFetch, got %v", err)
		}
	})

	t.Run("Open Date Within Horizon", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-20"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if out.DateUnavailable {
			t.Fatal("open date reported unavailable")
		}
		if len(out.Slots) != 20 {
			t.Fatalf("expected 20 bookable starts, got %d", len(out.Slots))
		}
		for _, s := range out.Slots {
			if !s.Available {
				t.Errorf("slot %s unexpectedly unavailable", s.Start)
			}
		}
		if last := out.Slots[len(out.Slots)-1]; last.Start != "17:30" {
			t.Errorf("last bookable start = %s, want 17:30", last.Start)
		}
	})

	t.Run("Lead Time Cuts Early Slots", func(t *testing.T) {
		// Clock at 2024-06-10 09:00, 48 h lead: slots on 06-12 before
		// 09:00 are too soon, 09:00 onward are bookable.
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-12"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if slotByStart(t, out, "08:00").Available {
			t.Error("08:00 within lead time but marked available")
		}
		if slotByStart(t, out, "08:30").Available {
			t.Error("08:30 within lead time but marked available")
		}
		if !slotByStart(t, out, "09:00").Available {
			t.Error("09:00 meets the lead time but marked unavailable")
		}
		if out.DateUnavailable {
			t.Error("date has bookable slots but reported unavailable")
		}
	})

	t.Run("Entire Date Within Lead Time", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-11"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if !out.DateUnavailable {
			t.Error("next-day date inside 48 h lead reported bookable")
		}
	})

	t.Run("Beyond Lookahead Horizon", func(t *testing.T) {
		// Horizon is 2024-07-10 with a 30-day lookahead from 06-10.
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-07-11"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if !out.DateUnavailable {
			t.Error("date past the lookahead horizon reported bookable")
		}

		edge, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-07-10"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if edge.DateUnavailable {
			t.Error("horizon date itself should still be bookable")
		}
	})

	t.Run("All Day Block Closes Date", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListBlocksOptions) ([]model.ManualBlock, error) {
			return []model.ManualBlock{{BlockDate: "2024-06-20", IsAllDay: true}}, nil
		}}
		uc := newTestUseCase(t, &mockEvents{}, repo, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-20"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if !out.DateUnavailable {
			t.Error("all-day blocked date reported bookable")
		}
		for _, s := range out.Slots {
			if s.Available {
				t.Errorf("slot %s available on an all-day blocked date", s.Start)
			}
		}
	})

	t.Run("Every Slot Blocked Promotes To Full Day", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListBlocksOptions) ([]model.ManualBlock, error) {
			return []model.ManualBlock{{BlockDate: "2024-06-20", StartTime: "08:00", EndTime: "18:00"}}, nil
		}}
		uc := newTestUseCase(t, &mockEvents{}, repo, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-20"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if !out.DateUnavailable {
			t.Error("fully slot-blocked date not promoted to unavailable")
		}
	})

	t.Run("Partial Block Leaves Other Slots Open", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListBlocksOptions) ([]model.ManualBlock, error) {
			return []model.ManualBlock{{BlockDate: "2024-06-20", StartTime: "10:00", EndTime: "12:00"}}, nil
		}}
		uc := newTestUseCase(t, &mockEvents{}, repo, nil)

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-20"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		for _, blocked := range []string{"10:00", "10:30", "11:00", "11:30"} {
			if slotByStart(t, out, blocked).Available {
				t.Errorf("slot %s inside the block marked available", blocked)
			}
		}
		if !slotByStart(t, out, "09:30").Available {
			t.Error("09:30 outside the block marked unavailable")
		}
		if !slotByStart(t, out, "12:00").Available {
			t.Error("12:00 at the block end marked unavailable")
		}
		if out.DateUnavailable {
			t.Error("partially blocked date reported fully unavailable")
		}
	})

	t.Run("Twelve Hour Display Labels", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)
		uc.cfg.TwelveHour = true

		out, err := uc.BookableSlots(ctx, availability.BookableSlotsInput{Date: "2024-06-20"})
		if err != nil {
			t.Fatalf("BookableSlots: %v", err)
		}
		if got := slotByStart(t, out, "08:00").Display; got != "8:00 AM" {
			t.Errorf("display for 08:00 = %q, want %q", got, "8:00 AM")
		}
		if got := slotByStart(t, out, "14:30").Display; got != "2:30 PM" {
			t.Errorf("display for 14:30 = %q, want %q", got, "2:30 PM")
		}
	})
}
