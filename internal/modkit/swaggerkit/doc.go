package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	perr "scriptdrill/internal/platform/errors"
)

// Info is the document header
type Info struct {
	Title   string
	Version string
	// Server is the base url advertised to the UI, defaults to "/"
	Server string
}

// SpecMutator lets modules add paths or tweak the document before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register adds a spec mutator
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Operation returns a mutator that documents one route with a JSON 200 response
func Operation(method, path, tag, summary string) SpecMutator {
	method = strings.ToLower(method)
	return func(spec map[string]any) {
		paths := child(spec, "paths")
		node := child(paths, path)
		node[method] = map[string]any{
			"tags":    []any{tag},
			"summary": summary,
			"responses": map[string]any{
				"200": map[string]any{
					"description": "OK",
					"content":     map[string]any{"application/json": map[string]any{}},
				},
			},
		}
	}
}

// Document assembles the OpenAPI document from the registered mutators
func Document(info Info) map[string]any {
	if info.Title == "" {
		info.Title = "API"
	}
	if info.Version == "" {
		info.Version = "0.0.0"
	}
	if info.Server == "" {
		info.Server = "/"
	}
	spec := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": info.Title, "version": info.Version},
		"servers": []any{map[string]any{"url": info.Server}},
		"paths":   map[string]any{},
	}
	mu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.Unlock()
	for _, m := range ms {
		m(spec)
	}
	ensureErrorResponseDefinition(spec)
	addDefaultResponse(spec, "500", errorExample(http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered"))
	addDefaultResponse(spec, "400", errorExample(http.StatusBadRequest, perr.ErrorCodeValidation, "lang is a required field"))
	return spec
}

// serveDocJSON renders the document once per process
func serveDocJSON(info Info) http.HandlerFunc {
	var (
		once sync.Once
		raw  []byte
		err  error
	)
	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { raw, err = json.Marshal(Document(info)) })
		if err != nil {
			http.Error(w, "spec encode error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(raw)
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureErrorResponseDefinition creates a simple error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorExample(status int, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        int(code),
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

// addDefaultResponse walks every operation and injects resp under status if absent
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
