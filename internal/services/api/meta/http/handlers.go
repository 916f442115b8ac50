// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"scriptdrill/internal/core/corpus"
	"scriptdrill/internal/core/version"
	"scriptdrill/internal/modkit/httpkit"
	"scriptdrill/internal/modkit/swaggerkit"
	perr "scriptdrill/internal/platform/errors"

	"github.com/google/uuid"
)

func init() {
	for _, p := range []string{"/meta/health", "/meta/ready", "/meta/version", "/meta/service", "/meta/corpus"} {
		swaggerkit.Register(swaggerkit.Operation("GET", p, "Meta", "Service metadata"))
	}
}

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Corpus is the slice of the word index meta reports on
type Corpus interface {
	Len() int
	Stats() []corpus.LocaleStats
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	Instance    uuid.UUID
	StartedAt   time.Time
	Corpus      Corpus
	Translit    Pinger
	// Engine names the transliteration backend in /meta/service
	Engine string
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/corpus", h.corpus)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"scriptdrill-api"`
	Started string `json:"started"  example:"2026-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"corpus"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"transliteration service unreachable"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string `json:"name"     example:"scriptdrill-api"`
	Instance string `json:"instance" example:"5f0c8c1e-3b1f-4b61-9a57-4b0f0c0b7c11"`
	Engine   string `json:"engine"   example:"local"`
	Started  string `json:"started"  example:"2026-09-03T13:00:00Z"`
	Uptime   int64  `json:"uptime"   example:"300"`
}

// CorpusResponse reports the loaded locales and their bucket sizes
type CorpusResponse struct {
	Locales int                  `json:"locales" example:"12"`
	Stats   []corpus.LocaleStats `json:"stats"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	corpusCheck := ReadyCheck{Name: "corpus", Status: "skipped"}
	if h.deps.Corpus != nil {
		corpusCheck.Status = "ok"
		if h.deps.Corpus.Len() == 0 {
			corpusCheck.Status, corpusCheck.Error = "fail", "no locales loaded"
		}
	}

	translitCheck := ReadyCheck{Name: "translit", Status: "skipped"}
	if h.deps.Translit != nil {
		translitCheck.Status = "ok"
		if err := h.deps.Translit.Ping(ctx); err != nil {
			// retryable failures degrade readiness instead of failing it
			translitCheck.Status, translitCheck.Error = "fail", err.Error()
			if perr.Retryable(err) {
				translitCheck.Status = "degraded"
			}
		}
	}

	overall := "ok"
	for _, c := range []ReadyCheck{corpusCheck, translitCheck} {
		switch {
		case c.Status == "fail":
			overall = "fail"
		case c.Status != "ok" && overall == "ok":
			overall = "degraded"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{corpusCheck, translitCheck},
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Instance: h.deps.Instance.String(),
		Engine:   h.deps.Engine,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(uptime / time.Second),
	}, nil
}

// @Summary Loaded corpus summary
// @Tags Meta
// @Produce json
// @Success 200 {object} CorpusResponse
// @Router /meta/corpus [get]
func (h *handlers) corpus(_ *http.Request) (any, error) {
	if h.deps.Corpus == nil {
		return CorpusResponse{Stats: []corpus.LocaleStats{}}, nil
	}
	return CorpusResponse{
		Locales: h.deps.Corpus.Len(),
		Stats:   h.deps.Corpus.Stats(),
	}, nil
}
