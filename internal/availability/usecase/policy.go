package usecase

import (
	"context"
	"time"

	"mobile-recovery-booking/internal/availability"
	"mobile-recovery-booking/internal/model"
	"mobile-recovery-booking/pkg/slotgrid"
)

func (uc *implUseCase) BookableSlots(ctx context.Context, input availability.BookableSlotsInput) (availability.BookableSlotsOutput, error) {
	loc := uc.engine.Location()

	day, err := time.ParseInLocation(model.DateKeyFormat, input.Date, loc)
	if err != nil {
		return availability.BookableSlotsOutput{}, availability.ErrInvalidDate
	}

	snap, err := uc.Query(ctx, availability.QueryInput{StartDate: input.Date, EndDate: input.Date})
	if err != nil {
		return availability.BookableSlotsOutput{}, err
	}

	blocked := make(map[string]struct{}, len(snap.UnavailableTimes[input.Date]))
	for _, slot := range snap.UnavailableTimes[input.Date] {
		blocked[slot] = struct{}{}
	}

	dateBlocked := false
	for _, d := range snap.UnavailableDates {
		if d == input.Date {
			dateBlocked = true
			break
		}
	}
	// A date whose every bookable start is individually blocked is as
	// unavailable as an all-day block.
	if !dateBlocked {
		dateBlocked = true
		for _, slot := range slotgrid.BookableStarts() {
			if _, ok := blocked[slot]; !ok {
				dateBlocked = false
				break
			}
		}
	}

	now := uc.now().In(loc)
	earliest := now.Add(uc.cfg.LeadTime)
	horizon := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, uc.cfg.LookaheadDays)
	withinHorizon := !day.After(horizon)

	slots := make([]availability.BookableSlot, 0, len(slotgrid.BookableStarts()))
	anyAvailable := false
	for _, slot := range slotgrid.BookableStarts() {
		minute, err := slotgrid.ToMinutes(slot)
		if err != nil {
			continue
		}
		startsAt := time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, loc)

		_, slotBlocked := blocked[slot]
		open := !dateBlocked && !slotBlocked && withinHorizon && !startsAt.Before(earliest)
		if open {
			anyAvailable = true
		}

		slots = append(slots, availability.BookableSlot{
			Start:     slot,
			Display:   slotgrid.Display(slot, uc.cfg.TwelveHour),
			Available: open,
		})
	}

	return availability.BookableSlotsOutput{
		Date:            input.Date,
		DateUnavailable: !anyAvailable,
		Slots:           slots,
		GeneratedAt:     snap.GeneratedAt,
		SnapshotSeq:     snap.SnapshotSeq,
	}, nil
}
