package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type recordingLogger struct {
	levels []string
}

func (m *recordingLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any)   { m.levels = append(m.levels, "info") }
func (m *recordingLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *recordingLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.levels = append(m.levels, "warn") }
func (m *recordingLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.levels = append(m.levels, "error") }
func (m *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func get(r *gin.Engine, path, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("per client budget", func(t *testing.T) {
		m := New(&recordingLogger{}, 10) // burst of one
		r := newEngine(m.RateLimit())

		if code := get(r, "/ok", "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("first request: %d", code)
		}
		if code := get(r, "/ok", "10.0.0.1:1234"); code != http.StatusTooManyRequests {
			t.Errorf("second request: %d, want 429", code)
		}
		if code := get(r, "/ok", "10.0.0.2:1234"); code != http.StatusOK {
			t.Errorf("other client: %d", code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		m := New(&recordingLogger{}, 0)
		r := newEngine(m.RateLimit())
		for i := 0; i < 20; i++ {
			if code := get(r, "/ok", "10.0.0.1:1234"); code != http.StatusOK {
				t.Fatalf("request %d: %d", i, code)
			}
		}
	})
}

func TestLogging(t *testing.T) {
	l := &recordingLogger{}
	r := newEngine(New(l, 0).Logging())

	get(r, "/ok", "10.0.0.1:1234")
	get(r, "/bad", "10.0.0.1:1234")
	get(r, "/boom", "10.0.0.1:1234")

	want := []string{"info", "warn", "error"}
	if len(l.levels) != len(want) {
		t.Fatalf("levels = %v, want %v", l.levels, want)
	}
	for i := range want {
		if l.levels[i] != want[i] {
			t.Errorf("levels[%d] = %s, want %s", i, l.levels[i], want[i])
		}
	}
}
