package http

import (
	"mobile-recovery-booking/internal/block"
	pkgErrors "mobile-recovery-booking/pkg/errors"
)

var errWrongParams = pkgErrors.NewHTTPError(400, "wrong params")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case block.ErrBlockNotFound:
		return pkgErrors.NewHTTPError(404, "block not found")
	case block.ErrInvalidBlockDate:
		return pkgErrors.NewHTTPError(400, "invalid block date")
	case block.ErrMissingTimeWindow:
		return pkgErrors.NewHTTPError(400, "start and end time are required for partial blocks")
	case block.ErrInvalidTimeWindow:
		return pkgErrors.NewHTTPError(400, "start time must be before end time")
	case block.ErrInvalidTimeOfDay:
		return pkgErrors.NewHTTPError(400, "times must be HH:MM")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
