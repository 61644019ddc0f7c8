package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mobile-recovery-booking/internal/availability"
	"mobile-recovery-booking/pkg/response"
)

// Query godoc
// @Summary     Query availability over a date range
// @Description Merges external calendar busy events and operator blocks into the unavailable dates and blocked 30-minute slot starts.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       start_date query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param       end_date   query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream sources unreachable"
// @Router      /api/v1/availability [GET]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Query(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		if errors.Is(err, availability.ErrUpstreamFetch) {
			response.Error(c, h.mapError(err), degradedData())
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// BookableSlots godoc
// @Summary     List bookable slots for one date
// @Description Applies booking policy (minimum lead time, lookahead horizon, full-block promotion) to the 30-minute slot grid of a single date.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       date query string true "Business-local date (YYYY-MM-DD)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream sources unreachable"
// @Router      /api/v1/availability/slots [GET]
func (h *handler) BookableSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BookableSlots(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BookableSlots: %v", err)
		if errors.Is(err, availability.ErrUpstreamFetch) {
			response.Error(c, h.mapError(err), degradedData())
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSlotsResp(output))
}
