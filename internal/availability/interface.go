package availability

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Query merges calendar events and manual blocks over a date range into
	// the unavailable dates and per-date blocked slot starts.
	Query(ctx context.Context, input QueryInput) (QueryOutput, error)

	// BookableSlots applies booking policy (minimum lead time, lookahead
	// horizon, full-block promotion) to one date's slot grid.
	BookableSlots(ctx context.Context, input BookableSlotsInput) (BookableSlotsOutput, error)
}
