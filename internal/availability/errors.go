package availability

import "errors"

var (
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrUpstreamFetch    = errors.New("failed to fetch upstream availability sources")
)
