// Package http provides http transport for transliteration
package http

import (
	stdhttp "net/http"

	"scriptdrill/internal/modkit/httpkit"
	"scriptdrill/internal/modkit/swaggerkit"
	"scriptdrill/internal/services/api/translit/domain"
)

func init() {
	swaggerkit.Register(swaggerkit.Operation("POST", "/", "Translit", "Transliterate text between scripts"))
	swaggerkit.Register(swaggerkit.Operation("GET", "/", "Translit", "Transliterate text between scripts"))
	swaggerkit.Register(swaggerkit.Operation("GET", "/scripts", "Translit", "Supported script tags"))
	swaggerkit.Register(swaggerkit.Operation("GET", "/scripts/latin", "Translit", "Latin romanization schemes"))
}

// Register mounts transliteration endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// the drill frontend sends bodies with either verb
	httpkit.AnyJSON(r, "/", h.translate)

	httpkit.Get(r, "/scripts", h.scripts)
	httpkit.Get(r, "/scripts/latin", h.latin)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Transliterate text
// @Tags Translit
// @Accept json
// @Produce json
// @Param payload body domain.ConvertInput true "Text and script pair"
// @Success 200 {string} string "converted text"
// @Router / [post]
func (h *handlers) translate(r *stdhttp.Request, in domain.ConvertInput) (any, error) {
	out, err := h.svc.Translate(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Raw(out), nil
}

// @Summary Supported scripts
// @Tags Translit
// @Produce json
// @Success 200 {array} string
// @Router /scripts [get]
func (h *handlers) scripts(_ *stdhttp.Request) (any, error) {
	return httpkit.Raw(h.svc.Scripts()), nil
}

// @Summary Latin romanization schemes
// @Tags Translit
// @Produce json
// @Success 200 {array} string
// @Router /scripts/latin [get]
func (h *handlers) latin(_ *stdhttp.Request) (any, error) {
	return httpkit.Raw(h.svc.LatinSchemes()), nil
}
