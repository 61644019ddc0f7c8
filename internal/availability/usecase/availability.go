package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mobile-recovery-booking/internal/availability"
	"mobile-recovery-booking/internal/availability/engine"
	"mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/internal/model"
	"mobile-recovery-booking/pkg/gcalendar"
)

// snapshot is the Redis representation of one computed QueryOutput.
type snapshot struct {
	UnavailableDates []string            `json:"unavailable_dates"`
	UnavailableTimes map[string][]string `json:"unavailable_times"`
	GeneratedAt      time.Time           `json:"generated_at"`
	SnapshotSeq      uint64              `json:"snapshot_seq"`
}

func (s snapshot) toOutput() availability.QueryOutput {
	if s.UnavailableDates == nil {
		s.UnavailableDates = []string{}
	}
	if s.UnavailableTimes == nil {
		s.UnavailableTimes = map[string][]string{}
	}
	return availability.QueryOutput{
		UnavailableDates: s.UnavailableDates,
		UnavailableTimes: s.UnavailableTimes,
		GeneratedAt:      s.GeneratedAt,
		SnapshotSeq:      s.SnapshotSeq,
	}
}

func cacheKey(startDate, endDate string) string {
	return fmt.Sprintf("availability:%s:%s", startDate, endDate)
}

func (uc *implUseCase) Query(ctx context.Context, input availability.QueryInput) (availability.QueryOutput, error) {
	loc := uc.engine.Location()

	start, err := time.ParseInLocation(model.DateKeyFormat, input.StartDate, loc)
	if err != nil {
		return availability.QueryOutput{}, availability.ErrInvalidDate
	}
	end, err := time.ParseInLocation(model.DateKeyFormat, input.EndDate, loc)
	if err != nil {
		return availability.QueryOutput{}, availability.ErrInvalidDate
	}
	if end.Before(start) {
		return availability.QueryOutput{}, availability.ErrInvalidDateRange
	}

	key := cacheKey(input.StartDate, input.EndDate)
	if uc.cache != nil {
		raw, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.l.Warnf(ctx, "availability.Query: cache get: %v", err)
		} else if ok {
			var snap snapshot
			if err := json.Unmarshal([]byte(raw), &snap); err != nil {
				uc.l.Warnf(ctx, "availability.Query: corrupt cache entry %s: %v", key, err)
			} else {
				return snap.toOutput(), nil
			}
		}
	}

	output, err := uc.compute(ctx, start, end)
	if err != nil {
		return availability.QueryOutput{}, err
	}

	if uc.cache != nil {
		snap := snapshot{
			UnavailableDates: output.UnavailableDates,
			UnavailableTimes: output.UnavailableTimes,
			GeneratedAt:      output.GeneratedAt,
			SnapshotSeq:      output.SnapshotSeq,
		}
		if err := uc.cache.Set(ctx, key, snap, uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "availability.Query: cache set: %v", err)
		}
	}

	return output, nil
}

// compute fetches both upstream sources and runs the engine over the window.
// A failure of either source degrades the whole query: returning a partial
// picture could let clients book over real busy periods.
func (uc *implUseCase) compute(ctx context.Context, start, end time.Time) (availability.QueryOutput, error) {
	events, err := uc.events.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    start,
		TimeMax:    end.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Errorf(ctx, "availability.compute: list events: %v", err)
		return availability.QueryOutput{}, availability.ErrUpstreamFetch
	}

	blocks, err := uc.repo.ListBlocks(ctx, repository.ListBlocksOptions{
		FromDate: start.Format(model.DateKeyFormat),
		ToDate:   end.Format(model.DateKeyFormat),
	})
	if err != nil {
		uc.l.Errorf(ctx, "availability.compute: list blocks: %v", err)
		return availability.QueryOutput{}, availability.ErrUpstreamFetch
	}

	res := uc.engine.Compute(start, end, mapEvents(events), blocks)

	times := make(map[string][]string)
	for _, d := range res.DatesWithTimes() {
		times[d] = res.TimesFor(d)
	}

	return availability.QueryOutput{
		UnavailableDates: res.Dates(),
		UnavailableTimes: times,
		GeneratedAt:      uc.now().UTC(),
		SnapshotSeq:      uc.seq.Add(1),
	}, nil
}

func mapEvents(events []gcalendar.Event) []engine.Event {
	out := make([]engine.Event, 0, len(events))
	for _, ev := range events {
		if ev.AllDay {
			out = append(out, engine.NewAllDayEvent(ev.StartDate, ev.EndDate))
			continue
		}
		out = append(out, engine.NewTimedEvent(ev.StartTime, ev.EndTime))
	}
	return out
}
