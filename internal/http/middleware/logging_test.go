package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
)

var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		rid, _ := c.Get(requestIDKey)
		if rid == "" {
			t.Fatalf("expected request id in context")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	got := w.Header().Get(requestIDHeader)
	if !uuidRe.MatchString(got) {
		t.Fatalf("expected generated UUID in %s header, got %q", requestIDHeader, got)
	}
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "client-supplied-id")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "client-supplied-id" {
		t.Fatalf("incoming request id not propagated, got %q", got)
	}
}

func TestLogger_AttachesRequestScopedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Get("logger"); !ok {
			t.Fatalf("expected request-scoped logger in context")
		}
		lg := LoggerFrom(c)
		if lg == nil {
			t.Fatalf("LoggerFrom returned nil")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?q=hello", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLoggerFrom_FallbackWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if lg := LoggerFrom(c); lg == nil {
		t.Fatalf("expected fallback logger, got nil")
	}

	// Non-logger values under the key must not panic either.
	c.Set("logger", "not a logger")
	if lg := LoggerFrom(c); lg == nil {
		t.Fatalf("expected fallback logger for wrong type, got nil")
	}
}

func TestRecovery_ConvertsPanicToJSON500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	body := w.Body.String()
	if body == "" || !regexp.MustCompile(`"code":\s*"internal_error"`).MatchString(body) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAsString(t *testing.T) {
	if got := asString("x"); got != "x" {
		t.Fatalf("asString(string) = %q", got)
	}
	if got := asString(42); got != "" {
		t.Fatalf("asString(non-string) = %q, want empty", got)
	}
	if got := asString(nil); got != "" {
		t.Fatalf("asString(nil) = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("no-op truncate changed value: %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("anything", 0); got != "anything" {
		t.Fatalf("max<=0 must disable truncation, got %q", got)
	}
}
