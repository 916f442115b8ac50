// Package http provides helpers for writing JSON responses
// Errors always use the envelope; successes use it unless the handler asks for a bare document
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"scriptdrill/internal/platform/logger"
	pnet "scriptdrill/internal/platform/net"
)

// Envelope is the standard response body for enveloped endpoints
type Envelope struct {
	pnet.Wire
	Data any `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Debug().Err(err).Msg("response encode failed")
	}
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// Bare writes Body as the whole document instead of wrapping it in an Envelope
	Bare bool
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	// If Body is an error, derive status from error before anything else
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	if resp.Bare {
		JSON(w, status, resp.Body)
		return
	}
	JSON(w, status, Envelope{
		Wire: pnet.Wire{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			RequestID:  pnet.RequestID(r.Context()),
		},
		Data: resp.Body,
	})
}

// OK returns an enveloped 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Raw returns a 200 response whose body is data itself, no envelope
func Raw(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data, Bare: true} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
