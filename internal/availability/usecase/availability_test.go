package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mobile-recovery-booking/internal/availability"
	"mobile-recovery-booking/internal/availability/engine"
	"mobile-recovery-booking/internal/block/repository"
	"mobile-recovery-booking/internal/model"
	"mobile-recovery-booking/pkg/cache"
	"mobile-recovery-booking/pkg/gcalendar"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockEvents struct {
	listFunc func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	calls    int
}

func (m *mockEvents) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.calls++
	if m.listFunc != nil {
		return m.listFunc(req)
	}
	return nil, nil
}

type mockRepo struct {
	listFunc func(opt repository.ListBlocksOptions) ([]model.ManualBlock, error)
}

func (m *mockRepo) CreateBlock(ctx context.Context, opt repository.CreateBlockOptions) (model.ManualBlock, error) {
	return model.ManualBlock{}, nil
}

func (m *mockRepo) GetOneBlock(ctx context.Context, opt repository.GetOneBlockOptions) (model.ManualBlock, error) {
	return model.ManualBlock{}, nil
}

func (m *mockRepo) ListBlocks(ctx context.Context, opt repository.ListBlocksOptions) ([]model.ManualBlock, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateBlock(ctx context.Context, opt repository.UpdateBlockOptions) (model.ManualBlock, error) {
	return model.ManualBlock{}, nil
}

func (m *mockRepo) DeleteBlock(ctx context.Context, id string) error {
	return nil
}

type mockCache struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = string(b)
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newTestUseCase(t *testing.T, events *mockEvents, repo *mockRepo, c *mockCache) *implUseCase {
	t.Helper()
	eng, err := engine.New("America/New_York")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	cfg := Config{
		CalendarID:    "primary",
		CacheTTL:      15 * time.Second,
		LeadTime:      48 * time.Hour,
		LookaheadDays: 30,
	}
	var cc cache.Cache
	if c != nil {
		cc = c
	}
	uc := New(&mockLogger{}, events, repo, cc, eng, cfg)
	// Fixed clock: Monday 2024-06-10 09:00 business time.
	uc.now = func() time.Time {
		return time.Date(2024, 6, 10, 9, 0, 0, 0, eng.Location())
	}
	return uc
}

func containsStr(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Start Date", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)
		_, err := uc.Query(ctx, availability.QueryInput{StartDate: "June 1", EndDate: "2024-06-30"})
		if !errors.Is(err, availability.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("Inverted Range", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)
		_, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-30", EndDate: "2024-06-01"})
		if !errors.Is(err, availability.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("Events Source Failure", func(t *testing.T) {
		events := &mockEvents{listFunc: func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			return nil, errors.New("calendar API unreachable")
		}}
		uc := newTestUseCase(t, events, &mockRepo{}, nil)
		_, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if !errors.Is(err, availability.ErrUpstreamFetch) {
			t.Fatalf("expected ErrUpstreamFetch, got %v", err)
		}
	})

	t.Run("Block Store Failure", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListBlocksOptions) ([]model.ManualBlock, error) {
			return nil, errors.New("db down")
		}}
		uc := newTestUseCase(t, &mockEvents{}, repo, nil)
		_, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if !errors.Is(err, availability.ErrUpstreamFetch) {
			t.Fatalf("expected ErrUpstreamFetch, got %v", err)
		}
	})

	t.Run("Merges Events And Blocks", func(t *testing.T) {
		loc, _ := time.LoadLocation("America/New_York")
		events := &mockEvents{listFunc: func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			return []gcalendar.Event{
				{AllDay: true, StartDate: "2024-06-14", EndDate: "2024-06-15"},
				{
					StartTime: time.Date(2024, 6, 12, 9, 0, 0, 0, loc),
					EndTime:   time.Date(2024, 6, 12, 10, 0, 0, 0, loc),
				},
			}, nil
		}}
		repo := &mockRepo{listFunc: func(opt repository.ListBlocksOptions) ([]model.ManualBlock, error) {
			if opt.FromDate != "2024-06-01" || opt.ToDate != "2024-06-30" {
				t.Errorf("unexpected block range %q..%q", opt.FromDate, opt.ToDate)
			}
			return []model.ManualBlock{
				{BlockDate: "2024-06-20", IsAllDay: true},
				{BlockDate: "2024-06-12", StartTime: "14:00", EndTime: "15:00"},
			}, nil
		}}
		uc := newTestUseCase(t, events, repo, nil)

		out, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}

		for _, d := range []string{"2024-06-14", "2024-06-15", "2024-06-20"} {
			if !containsStr(out.UnavailableDates, d) {
				t.Errorf("expected %s in unavailable dates, got %v", d, out.UnavailableDates)
			}
		}
		wantTimes := []string{"09:00", "09:30", "14:00", "14:30"}
		got := out.UnavailableTimes["2024-06-12"]
		if len(got) != len(wantTimes) {
			t.Fatalf("expected times %v, got %v", wantTimes, got)
		}
		for i, w := range wantTimes {
			if got[i] != w {
				t.Errorf("times[%d] = %q, want %q", i, got[i], w)
			}
		}
		if out.SnapshotSeq != 1 {
			t.Errorf("first snapshot seq = %d, want 1", out.SnapshotSeq)
		}
		if out.GeneratedAt.IsZero() {
			t.Error("generated at not set")
		}
	})

	t.Run("Snapshot Seq Is Monotonic", func(t *testing.T) {
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, nil)
		first, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		second, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if second.SnapshotSeq <= first.SnapshotSeq {
			t.Errorf("seq did not advance: %d then %d", first.SnapshotSeq, second.SnapshotSeq)
		}
	})

	t.Run("Cache Hit Skips Upstream", func(t *testing.T) {
		events := &mockEvents{}
		c := &mockCache{data: map[string]string{
			"availability:2024-06-01:2024-06-30": `{"unavailable_dates":["2024-06-14"],"unavailable_times":{},"generated_at":"2024-06-10T13:00:00Z","snapshot_seq":7}`,
		}}
		uc := newTestUseCase(t, events, &mockRepo{}, c)

		out, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if events.calls != 0 {
			t.Errorf("events source called %d times on cache hit", events.calls)
		}
		if out.SnapshotSeq != 7 {
			t.Errorf("seq = %d, want cached 7", out.SnapshotSeq)
		}
		if !containsStr(out.UnavailableDates, "2024-06-14") {
			t.Errorf("cached dates lost: %v", out.UnavailableDates)
		}
	})

	t.Run("Cache Miss Populates Cache", func(t *testing.T) {
		c := &mockCache{}
		uc := newTestUseCase(t, &mockEvents{}, &mockRepo{}, c)
		if _, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"}); err != nil {
			t.Fatalf("Query: %v", err)
		}
		if c.sets != 1 {
			t.Fatalf("cache sets = %d, want 1", c.sets)
		}
		if _, ok := c.data["availability:2024-06-01:2024-06-30"]; !ok {
			t.Errorf("snapshot not stored under range key, got keys %v", c.data)
		}
	})

	t.Run("Cache Error Falls Through To Compute", func(t *testing.T) {
		events := &mockEvents{}
		c := &mockCache{getErr: errors.New("redis gone"), setErr: errors.New("redis gone")}
		uc := newTestUseCase(t, events, &mockRepo{}, c)

		out, err := uc.Query(ctx, availability.QueryInput{StartDate: "2024-06-01", EndDate: "2024-06-30"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if events.calls != 1 {
			t.Errorf("events source calls = %d, want 1", events.calls)
		}
		if out.SnapshotSeq != 1 {
			t.Errorf("seq = %d, want 1", out.SnapshotSeq)
		}
	})
}
