package availability

import "time"

// QueryInput is a business-local date range, both endpoints inclusive,
// YYYY-MM-DD.
type QueryInput struct {
	StartDate string
	EndDate   string
}

// QueryOutput is an availability snapshot. SnapshotSeq increases with every
// fresh computation so pollers can discard responses that arrive out of order.
type QueryOutput struct {
	UnavailableDates []string
	UnavailableTimes map[string][]string
	GeneratedAt      time.Time
	SnapshotSeq      uint64
}

// BookableSlotsInput names one business-local date, YYYY-MM-DD.
type BookableSlotsInput struct {
	Date string
}

// BookableSlot is one clickable 30-minute session start.
type BookableSlot struct {
	Start     string // HH:MM in the business zone
	Display   string // operator-facing label, e.g. "8:30 AM"
	Available bool
}

// BookableSlotsOutput carries the policy-filtered slot list for one date.
// DateUnavailable is true when no slot on the date can be booked, whether
// from blocks covering every slot or from lead-time/lookahead policy.
type BookableSlotsOutput struct {
	Date            string
	DateUnavailable bool
	Slots           []BookableSlot
	GeneratedAt     time.Time
	SnapshotSeq     uint64
}
