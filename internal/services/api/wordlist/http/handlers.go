// Package http provides http transport for word lists
package http

import (
	stdhttp "net/http"

	"scriptdrill/internal/modkit/httpkit"
	"scriptdrill/internal/modkit/swaggerkit"
	"scriptdrill/internal/services/api/wordlist/domain"
)

func init() {
	swaggerkit.Register(swaggerkit.Operation("GET", "/locales", "Wordlist", "Locales and their significant scripts"))
	swaggerkit.Register(swaggerkit.Operation("POST", "/wordlist", "Wordlist", "Sample a drill word list"))
	swaggerkit.Register(swaggerkit.Operation("GET", "/wordlist", "Wordlist", "Sample a drill word list"))
}

// Register mounts word list endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/locales", h.locales)
	httpkit.AnyJSON(r, "/wordlist", h.wordlist)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Locales and significant scripts
// @Tags Wordlist
// @Produce json
// @Success 200 {array} domain.LocaleInfo
// @Router /locales [get]
func (h *handlers) locales(_ *stdhttp.Request) (any, error) {
	return httpkit.Raw(h.svc.Locales()), nil
}

// @Summary Sample a drill word list
// @Tags Wordlist
// @Accept json
// @Produce json
// @Param payload body domain.Request true "Locale, bucket, script pair and filters"
// @Success 200 {object} domain.Response
// @Router /wordlist [post]
func (h *handlers) wordlist(r *stdhttp.Request, in domain.Request) (any, error) {
	out, err := h.svc.Wordlist(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Raw(out), nil
}
