package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"
	pnet "scriptdrill/internal/platform/net"
	"scriptdrill/internal/platform/net/middleware"
)

func TestWrappers_ReturnHandlers(t *testing.T) {
	if middleware.RequestID() == nil ||
		middleware.RealIP() == nil ||
		middleware.Timeout(time.Second) == nil ||
		middleware.NoCache() == nil ||
		middleware.StripSlashes() == nil ||
		middleware.Heartbeat("/healthz") == nil {
		t.Fatal("expected non nil handlers from wrappers")
	}
}

func TestCompress_WhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "["+strings.Repeat(`["नमस्ते","வணக்கம்"],`, 200)+"[]]")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	middleware.Compress(flate.BestSpeed)(h).ServeHTTP(rr, req)

	if enc := rr.Result().Header.Get("Content-Encoding"); enc == "" {
		t.Fatalf("expected Content-Encoding to be set")
	}
}

func TestCORS_DefaultsAllowAnyOriginPost(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	req := httptest.NewRequest(http.MethodOptions, "/wordlist", nil)
	req.Header.Set("Origin", "https://drills.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)

	if rr.Code != 200 && rr.Code != 204 {
		t.Fatalf("expected 200 or 204 got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected Access-Control-Allow-Origin")
	}
	if rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatal("expected Access-Control-Allow-Headers to be set")
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://drills.example"}})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	req := httptest.NewRequest(http.MethodGet, "/scripts", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for foreign origin, got %q", got)
	}
}

func TestRequestLog_BridgesRequestID(t *testing.T) {
	var seen string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
	})
	chain := middleware.RequestID()(middleware.RequestLog(h))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, req)

	if seen != "abc-123" {
		t.Fatalf("logger request id = %q, want abc-123", seen)
	}
	if rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected X-Request-ID echoed")
	}
}

func TestRequestLog_NoIDPassesThrough(t *testing.T) {
	called := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	rr := httptest.NewRecorder()
	middleware.RequestLog(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !called || rr.Header().Get("X-Request-ID") != "" {
		t.Fatalf("expected plain pass through")
	}
}

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-p"))
	rr := httptest.NewRecorder()
	middleware.RecoverJSON(h).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rr.Code)
	}
	var w pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if w.Code != perr.ErrorCodePanic || w.RequestID != "rid-p" || w.Error != "panic recovered" {
		t.Fatalf("bad wire: %+v", w)
	}
	if rr.Header().Get("X-Request-ID") != "rid-p" {
		t.Fatalf("expected request id header")
	}
}

func TestRecoverJSON_RepanicsAbort(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic(http.ErrAbortHandler) })
	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler re-panic, got %v", v)
		}
	}()
	middleware.RecoverJSON(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestThrottle_RejectsOverLimit(t *testing.T) {
	entered, release := make(chan struct{}), make(chan struct{})
	h := middleware.Throttle(1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/wordlist", nil))
	}()
	<-entered

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/wordlist", nil))
	close(release)
	<-done

	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", second.Code)
	}
	if first.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", first.Code)
	}
}
