package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- { // outermost first
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_Heartbeat(t *testing.T) {
	cases := []struct {
		name string
		opts StackOptions
		path string
	}{
		{"default", StackOptions{}, "/ping"},
		{"custom", StackOptions{Heartbeat: "/alive"}, "/alive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := applyStack(http.NotFoundHandler(), CommonStack(tc.opts))
			rr := httptest.NewRecorder()
			root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("expected %s to be 200, got %d body=%s", tc.path, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestCommonStack_RequestReachesHandler(t *testing.T) {
	hit := 0
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit++
		if r.URL.Path != "/wordlist" {
			t.Errorf("trailing slash not stripped: %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	root := applyStack(final, CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/wordlist/", nil))

	if hit != 1 {
		t.Fatalf("expected final handler to be called once, got %d", hit)
	}
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 from final handler, got %d", rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("expected no-cache headers")
	}
}

func TestCommonStack_RecoversPanics(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") })
	root := applyStack(boom, CommonStack(StackOptions{}))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/translit", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("expected JSON error body, got %q", rr.Header().Get("Content-Type"))
	}
}

func TestCommonStack_CORSPreflight(t *testing.T) {
	root := applyStack(http.NotFoundHandler(), CommonStack(StackOptions{Origins: []string{"https://drill.example"}}))

	req := httptest.NewRequest(http.MethodOptions, "/wordlist", nil)
	req.Header.Set("Origin", "https://drill.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://drill.example" {
		t.Fatalf("Allow-Origin = %q", got)
	}
}
