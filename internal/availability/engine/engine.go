// Package engine computes per-day booking availability from external
// calendar busy periods and operator-entered manual blocks. The computation
// is pure: no I/O, no retries, no mutation of inputs, deterministic for
// identical inputs.
package engine

import (
	"fmt"
	"time"

	"mobile-recovery-booking/internal/model"
	"mobile-recovery-booking/pkg/slotgrid"
)

// fullDayThreshold is the timed-event duration at and above which an event
// blocks whole calendar dates instead of individual slots.
const fullDayThreshold = 24 * time.Hour

// Engine performs availability computations in a fixed business time zone.
// All slot arithmetic and date keys use this zone regardless of the zone an
// event or caller carries.
type Engine struct {
	loc *time.Location
}

// New creates an Engine for the given IANA business time zone.
func New(businessTimeZone string) (*Engine, error) {
	loc, err := time.LoadLocation(businessTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid business time zone %q: %w", businessTimeZone, err)
	}
	return &Engine{loc: loc}, nil
}

// Location returns the engine's business time zone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Compute merges calendar events and manual blocks into the set of fully
// blocked dates and the per-date sets of blocked 30-minute slot starts.
//
// Malformed records are skipped, never fatal: one corrupt event must not
// deny availability entirely.
func (e *Engine) Compute(rangeStart, rangeEnd time.Time, events []Event, blocks []model.ManualBlock) Result {
	res := newResult()

	winStart := e.startOfDay(rangeStart)
	winEnd := e.startOfDay(rangeEnd)

	for _, ev := range events {
		switch {
		case ev.Kind == KindAllDay:
			start, end, ok := e.allDayRange(ev)
			if !ok {
				continue
			}
			e.blockDateRange(res, start, end, winStart, winEnd)

		case ev.Kind == KindTimed:
			if ev.Start.IsZero() || ev.End.IsZero() {
				continue
			}
			if ev.End.Sub(ev.Start) >= fullDayThreshold {
				e.blockDateRange(res, e.startOfDay(ev.Start), e.startOfDay(ev.End), winStart, winEnd)
				continue
			}
			e.blockOverlappingSlots(res, ev)
		}
	}

	for _, b := range blocks {
		if _, err := time.ParseInLocation(model.DateKeyFormat, b.BlockDate, e.loc); err != nil {
			continue
		}
		if b.IsAllDay {
			res.blockDate(b.BlockDate)
			continue
		}
		e.blockManualWindow(res, b)
	}

	return res
}

// allDayRange resolves an all-day event's endpoints to start-of-day instants
// in the business zone. A missing end date collapses to the start date.
func (e *Engine) allDayRange(ev Event) (start, end time.Time, ok bool) {
	start, err := time.ParseInLocation(model.DateKeyFormat, ev.StartDate, e.loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end = start
	if ev.EndDate != "" {
		if parsed, err := time.ParseInLocation(model.DateKeyFormat, ev.EndDate, e.loc); err == nil {
			end = parsed
		}
	}
	if end.Before(start) {
		end = start
	}
	return start, end, true
}

// blockDateRange walks calendar dates from start to end INCLUSIVE, adding
// each date key. The inclusive end matches the reference behavior even
// though upstream calendar APIs commonly report exclusive end dates; see
// the trailing-day note in the repository design doc. The walk is clamped
// to the query window so a corrupt range cannot run away.
func (e *Engine) blockDateRange(res Result, start, end, winStart, winEnd time.Time) {
	if start.Before(winStart) {
		start = winStart
	}
	if end.After(winEnd) {
		end = winEnd
	}
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		res.blockDate(cur.Format(model.DateKeyFormat))
	}
}

// blockOverlappingSlots marks every grid slot whose [slotStart, slotStart+30m)
// interval strictly overlaps the event's busy interval, expressed in minutes
// since midnight of the event's business-local start date. An event spanning
// midnight is only checked against that single date: spillover into the next
// business day is outside business hours anyway and is not modeled.
func (e *Engine) blockOverlappingSlots(res Result, ev Event) {
	localStart := ev.Start.In(e.loc)
	localEnd := ev.End.In(e.loc)

	date := localStart.Format(model.DateKeyFormat)
	evStart := localStart.Hour()*60 + localStart.Minute()
	evEnd := localEnd.Hour()*60 + localEnd.Minute()

	for m := slotgrid.OpenMinute; m <= slotgrid.CloseMinute; m += slotgrid.StepMinutes {
		slotEnd := m + slotgrid.StepMinutes
		if m < evEnd && slotEnd > evStart {
			res.blockTime(date, slotgrid.FromMinutes(m))
		}
	}
}

// blockManualWindow marks the slots covered by a partial manual block. The
// start time rounds DOWN to the slot boundary, so a block starting 09:15
// claims the whole 09:00 slot; the end time itself is never included. The
// over-blocking is accepted at 30-minute scheduling granularity.
func (e *Engine) blockManualWindow(res Result, b model.ManualBlock) {
	startMin, err := slotgrid.ToMinutes(b.StartTime)
	if err != nil {
		return
	}
	endMin, err := slotgrid.ToMinutes(b.EndTime)
	if err != nil {
		return
	}
	if startMin >= endMin {
		return
	}

	for cur := slotgrid.FloorToSlot(startMin); cur < endMin; cur += slotgrid.StepMinutes {
		res.blockTime(b.BlockDate, slotgrid.FromMinutes(cur))
	}
}

func (e *Engine) startOfDay(t time.Time) time.Time {
	t = t.In(e.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.loc)
}
