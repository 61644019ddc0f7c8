package block

import "errors"

var (
	ErrBlockNotFound     = errors.New("manual block not found")
	ErrInvalidBlockDate  = errors.New("block date must be YYYY-MM-DD")
	ErrMissingTimeWindow = errors.New("start and end times are required for partial blocks")
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
	ErrInvalidTimeOfDay  = errors.New("times must be HH:MM")
)
