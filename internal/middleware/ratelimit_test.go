package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mobile-recovery-booking/internal/middleware"
)

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

func newLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.New(&mockLogger{}, requestsPerMin)
	router.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Burst Then Throttles", func(t *testing.T) {
		// 60 req/min gives a burst of 6 tokens; the bucket refills at
		// one token per second, far slower than this loop.
		router := newLimitedRouter(60)

		for i := 0; i < 6; i++ {
			if code := hit(router, "10.0.0.1:1234"); code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want 200", i+1, code)
			}
		}
		if code := hit(router, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
			t.Fatalf("request past the burst: status = %d, want 429", code)
		}
	})

	t.Run("Clients Are Limited Independently", func(t *testing.T) {
		router := newLimitedRouter(60)

		for i := 0; i < 7; i++ {
			hit(router, "10.0.0.1:1234")
		}
		if code := hit(router, "10.0.0.2:1234"); code != http.StatusOK {
			t.Fatalf("second client: status = %d, want 200", code)
		}
	})

	t.Run("Minimum Burst Of One", func(t *testing.T) {
		router := newLimitedRouter(5)

		if code := hit(router, "10.0.0.3:1234"); code != http.StatusOK {
			t.Fatalf("first request: status = %d, want 200", code)
		}
		if code := hit(router, "10.0.0.3:1234"); code != http.StatusTooManyRequests {
			t.Fatalf("second request: status = %d, want 429", code)
		}
	})
}
