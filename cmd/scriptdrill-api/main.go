// @title         scriptdrill API
// @version       0.1.0
// @description   Transliteration and script-filtered word list sampling for drills

package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scriptdrill/internal/adapters/translit"
	"scriptdrill/internal/core/corpus"
	"scriptdrill/internal/core/sampler"
	"scriptdrill/internal/core/script"
	"scriptdrill/internal/modkit"
	"scriptdrill/internal/modkit/httpkit"
	"scriptdrill/internal/platform/config"
	"scriptdrill/internal/platform/logger"
	phttp "scriptdrill/internal/platform/net/http"

	"scriptdrill/internal/services/api"

	"github.com/google/uuid"
)

func main() {
	// service-scoped config for HTTP, corpus and engine (CORE_API_*)
	cfg := config.New().Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instance := uuid.New()
	started := time.Now()

	engine := buildEngine(cfg)
	scripts := cfg.MayCSV("SCRIPTS", defaultScripts(engine))
	gw := translit.NewGateway(engine, scripts)

	remap, err := script.Remap(cfg.MayString("SCRIPT_REMAP", script.DefaultRemap))
	if err != nil {
		l.Fatal().Err(err).Strs("known", script.RemapVersions()).Msg("bad script remap version")
	}

	dataDir := cfg.MayString("DATA_DIR", "data")
	idx, err := corpus.LoadDir(ctx, dataDir, corpus.Options{
		Classifier: script.New(script.WithSupported(scripts...), script.WithRemap(remap)),
		Threshold:  cfg.MayFloat64("SIGNIFICANCE", corpus.DefaultThreshold),
		Workers:    cfg.MayInt("LOAD_WORKERS", 0),
	})
	if err != nil {
		l.Fatal().Err(err).Str("dir", dataDir).Msg("corpus load failed")
	}
	for _, st := range idx.Stats() {
		l.Info().
			Str("locale", st.Locale).
			Int("total", st.Total).
			Strs("significant", st.Significant).
			Int("buckets", len(st.Buckets)).
			Msg("locale loaded")
	}
	l.Info().
		Int("locales", idx.Len()).
		Str("engine", gw.Engine()).
		Str("remap", remap.Version).
		Str("instance", instance.String()).
		Msg("corpus ready")

	// http server (reads CORE_API_API_PORT / CORE_API_API_ADDR)
	srv := phttp.NewServer(cfg)

	err = api.Mount(srv.Router(), api.Options{
		Deps: modkit.Deps{
			Log:      logger.Named("api"),
			Cfg:      cfg,
			Corpus:   idx,
			Gateway:  gw,
			Rand:     sampler.NewLocked(rand.Uint64(), rand.Uint64()),
			Instance: instance,
			Started:  started,
		},
		Stack: httpkit.StackOptions{
			Origins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
			Slow:    time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
		},
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	// run until SIGINT/SIGTERM, then drain
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}

// buildEngine picks the transliteration backend from TRANSLIT_ENGINE
func buildEngine(cfg config.Conf) translit.Engine {
	switch cfg.MayEnum("TRANSLIT_ENGINE", "local", "local", "remote") {
	case "remote":
		return translit.NewRemote(translit.RemoteOptions{
			BaseURL:    cfg.MustURL("TRANSLIT_URL").String(),
			Timeout:    cfg.MayDuration("TRANSLIT_TIMEOUT", 10*time.Second),
			MaxRetries: cfg.MayInt("TRANSLIT_RETRIES", 3),
			Tags:       cfg.MayCSV("TRANSLIT_TAGS", nil),
		})
	default:
		return translit.NewLocal()
	}
}

// defaultScripts is what /scripts advertises when SCRIPTS is unset
func defaultScripts(e translit.Engine) []string {
	if l, ok := e.(*translit.Local); ok {
		return l.Tags()
	}
	return []string{
		"Deva", "Beng", "Guru", "Gujr", "Orya", "Taml", "Telu", "Knda", "Mlym", "Sinh",
		"Tibt", "Thai", "Mymr", "Syre", "Arab", "Hebr", "Grek", "Cyrl", "ISO", "IAST",
	}
}
