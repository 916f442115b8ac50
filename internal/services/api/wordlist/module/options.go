package module

import (
	"scriptdrill/internal/core/sampler"
	modkit "scriptdrill/internal/modkit"
	"scriptdrill/internal/platform/config"
	"scriptdrill/internal/platform/net/middleware"
	wordlistsvc "scriptdrill/internal/services/api/wordlist/service"
)

// DefaultConcurrency bounds simultaneous word list builds per process
const DefaultConcurrency = 64

// FromConfig reads sampling options: SAMPLE_SIZE (500) and WEIGHTED (true)
func FromConfig(cfg config.Conf) wordlistsvc.Options {
	return wordlistsvc.Options{
		Size:     cfg.MayInt("SAMPLE_SIZE", sampler.DefaultSize),
		Weighted: cfg.MayBool("WEIGHTED", true),
	}
}

// Throttle reads WORDLIST_CONCURRENCY (64) and caps in-flight word list requests; <= 0 disables it
func Throttle(cfg config.Conf) modkit.Option {
	n := cfg.MayInt("WORDLIST_CONCURRENCY", DefaultConcurrency)
	if n <= 0 {
		return modkit.WithMiddlewares()
	}
	return modkit.WithMiddlewares(middleware.Throttle(n))
}
