package http

import (
	"time"

	"mobile-recovery-booking/internal/availability"
)

// --- Request DTOs ---

type queryReq struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"required,datetime=2006-01-02"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() availability.QueryInput {
	return availability.QueryInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type slotsReq struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (r slotsReq) validate() error { return nil }

func (r slotsReq) toInput() availability.BookableSlotsInput {
	return availability.BookableSlotsInput{Date: r.Date}
}

// --- Response DTOs ---

type queryResp struct {
	UnavailableDates []string            `json:"unavailable_dates"`
	UnavailableTimes map[string][]string `json:"unavailable_times"`
	GeneratedAt      string              `json:"generated_at"`
	SnapshotSeq      uint64              `json:"snapshot_seq"`
}

func (h *handler) newQueryResp(out availability.QueryOutput) queryResp {
	dates := out.UnavailableDates
	if dates == nil {
		dates = []string{}
	}
	times := out.UnavailableTimes
	if times == nil {
		times = map[string][]string{}
	}
	return queryResp{
		UnavailableDates: dates,
		UnavailableTimes: times,
		GeneratedAt:      out.GeneratedAt.UTC().Format(time.RFC3339),
		SnapshotSeq:      out.SnapshotSeq,
	}
}

type slotResp struct {
	Start     string `json:"start"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

type slotsResp struct {
	Date            string     `json:"date"`
	DateUnavailable bool       `json:"date_unavailable"`
	Slots           []slotResp `json:"slots"`
	GeneratedAt     string     `json:"generated_at"`
	SnapshotSeq     uint64     `json:"snapshot_seq"`
}

func (h *handler) newSlotsResp(out availability.BookableSlotsOutput) slotsResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotResp{
			Start:     s.Start,
			Display:   s.Display,
			Available: s.Available,
		}
	}
	return slotsResp{
		Date:            out.Date,
		DateUnavailable: out.DateUnavailable,
		Slots:           slots,
		GeneratedAt:     out.GeneratedAt.UTC().Format(time.RFC3339),
		SnapshotSeq:     out.SnapshotSeq,
	}
}

// degradedData is the payload attached to an upstream-failure error response.
// The unavailability sets are explicitly empty rather than omitted so clients
// can tell "nothing blocked" from "we could not find out".
func degradedData() map[string]interface{} {
	return map[string]interface{}{
		"unavailable_dates": []string{},
		"unavailable_times": map[string][]string{},
		"degraded":          true,
	}
}
