package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar busy event.
// Exactly one endpoint shape is populated: all-day events carry bare
// StartDate/EndDate calendar dates, timed events carry StartTime/EndTime
// instants. AllDay discriminates the two.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string

	AllDay bool

	// All-day endpoints (YYYY-MM-DD). Google reports the end date exclusive.
	StartDate string
	EndDate   string

	// Timed endpoints with zone offsets preserved.
	StartTime time.Time
	EndTime   time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are expanded into single instances over [TimeMin, TimeMax).
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
