package model

import "time"

// DateKeyFormat is the business-local calendar date key (YYYY-MM-DD).
const DateKeyFormat = "2006-01-02"

// TimeOfDayFormat is the operator-entered time-of-day format (HH:MM).
const TimeOfDayFormat = "15:04"

// ManualBlock is an operator-entered unavailability record, distinct from
// externally synced calendar events. When IsAllDay is false both StartTime
// and EndTime are set and StartTime < EndTime.
type ManualBlock struct {
	ID        string
	BlockDate string // business-local calendar date, YYYY-MM-DD
	IsAllDay  bool
	StartTime string // HH:MM, empty when IsAllDay
	EndTime   string // HH:MM, empty when IsAllDay
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
