package http

import (
	"mobile-recovery-booking/internal/availability"
	pkgErrors "mobile-recovery-booking/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case availability.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "dates must be YYYY-MM-DD")
	case availability.ErrInvalidDateRange:
		return pkgErrors.NewHTTPError(400, "start date must not be after end date")
	case availability.ErrUpstreamFetch:
		return pkgErrors.NewHTTPError(502, "availability sources are temporarily unreachable")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
