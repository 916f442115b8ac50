// Package api provides the HTTP API for the application
package api

import (
	"scriptdrill/internal/core/version"
	"scriptdrill/internal/modkit"
	"scriptdrill/internal/modkit/httpkit"
	"scriptdrill/internal/modkit/swaggerkit"
	phttp "scriptdrill/internal/platform/net/http"

	metamod "scriptdrill/internal/services/api/meta/module"
	translitmod "scriptdrill/internal/services/api/translit/module"
	wordlistmod "scriptdrill/internal/services/api/wordlist/module"
)

// Options are the API options
type Options struct {
	Deps           modkit.Deps
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router.
// It must run before any other route is registered on r
func Mount(r phttp.Router, opt Options) error {
	deps := opt.Deps
	if err := deps.Validate(); err != nil {
		return err
	}
	log := deps.Logger("api")

	// the word list module converts through the translit module's port
	translit := translitmod.New(deps)
	conv := modkit.MustPortsOf[translitmod.Ports](translit).Converter

	mods := []modkit.Module{
		metamod.New(deps),
		translit,
		wordlistmod.New(deps, wordlistmod.FromConfig(deps.Cfg),
			modkit.WithPorts(wordlistmod.Ports{Converter: conv}),
			wordlistmod.Throttle(deps.Cfg),
		),
	}

	r.Use(httpkit.CommonStack(opt.Stack)...)

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.Info{
		Title:   "scriptdrill",
		Version: version.Info(metamod.ServiceName).Version,
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	for _, m := range mods {
		m.MountRoutes(r)
		log.Debug().Str("module", m.Name()).Msg("module mounted")
	}
	return nil
}
