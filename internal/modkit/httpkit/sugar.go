package httpkit

import (
	"net/http"
)

// GetJSON mounts a JSON handler under GET; an absent body binds the zero T
func GetJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, JSON(h))
}

// PostJSON mounts a JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// AnyJSON mounts the same JSON handler under GET and POST
// clients of the drill API send bodies with either verb
func AnyJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	hh := JSON(h)
	r.Method(http.MethodGet, path, hh)
	r.Method(http.MethodPost, path, hh)
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}
