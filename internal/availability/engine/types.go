package engine

import (
	"sort"
	"time"
)

// EventKind discriminates the two calendar event shapes. Upstream calendar
// APIs report either a bare date (all-day) or a zoned instant (timed) per
// endpoint; modeling the shape explicitly removes any "which field is set"
// ambiguity at the computation site.
type EventKind int

const (
	// KindTimed is a busy period with genuine start/end instants.
	KindTimed EventKind = iota
	// KindAllDay is a busy period spanning whole calendar dates.
	KindAllDay
)

// Event is a read-only snapshot of one external busy period.
type Event struct {
	Kind EventKind

	// All-day endpoints: bare calendar dates (YYYY-MM-DD), end inclusive
	// per the walk semantics in Compute.
	StartDate string
	EndDate   string

	// Timed endpoints: zoned instants, end exclusive.
	Start time.Time
	End   time.Time
}

// NewAllDayEvent builds an all-day Event. An empty endDate is treated as a
// single-date event by Compute.
func NewAllDayEvent(startDate, endDate string) Event {
	return Event{Kind: KindAllDay, StartDate: startDate, EndDate: endDate}
}

// NewTimedEvent builds a timed Event.
func NewTimedEvent(start, end time.Time) Event {
	return Event{Kind: KindTimed, Start: start, End: end}
}

// Result is the ephemeral availability computation output. A date present in
// UnavailableDates need not also appear in UnavailableTimes; callers check
// both. Dates whose every slot is individually blocked are NOT promoted into
// UnavailableDates here; the booking policy layer applies that normalization
// itself.
type Result struct {
	// UnavailableDates holds fully blocked business-local date keys.
	UnavailableDates map[string]struct{}

	// UnavailableTimes maps a date key to the set of blocked "HH:MM"
	// slot-start strings.
	UnavailableTimes map[string]map[string]struct{}
}

func newResult() Result {
	return Result{
		UnavailableDates: make(map[string]struct{}),
		UnavailableTimes: make(map[string]map[string]struct{}),
	}
}

func (r Result) blockDate(date string) {
	r.UnavailableDates[date] = struct{}{}
}

func (r Result) blockTime(date, slot string) {
	times, ok := r.UnavailableTimes[date]
	if !ok {
		times = make(map[string]struct{})
		r.UnavailableTimes[date] = times
	}
	times[slot] = struct{}{}
}

// DateBlocked reports whether the date is fully blocked.
func (r Result) DateBlocked(date string) bool {
	_, ok := r.UnavailableDates[date]
	return ok
}

// TimeBlocked reports whether the given slot on the given date is blocked.
func (r Result) TimeBlocked(date, slot string) bool {
	_, ok := r.UnavailableTimes[date][slot]
	return ok
}

// Dates returns the fully blocked date keys in ascending order.
func (r Result) Dates() []string {
	dates := make([]string, 0, len(r.UnavailableDates))
	for d := range r.UnavailableDates {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// TimesFor returns the blocked slot starts for a date in ascending order.
func (r Result) TimesFor(date string) []string {
	set := r.UnavailableTimes[date]
	times := make([]string, 0, len(set))
	for t := range set {
		times = append(times, t)
	}
	sort.Strings(times)
	return times
}

// DatesWithTimes returns every date key carrying blocked slots, ascending.
func (r Result) DatesWithTimes() []string {
	dates := make([]string, 0, len(r.UnavailableTimes))
	for d := range r.UnavailableTimes {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
