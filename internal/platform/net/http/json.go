package http

import (
	"net/http"

	"scriptdrill/internal/platform/net/http/bind"
)

// JSONHandler adapts a JSON-in handler to a platform Handler
// fn may return a Response to pick its own status or envelope mode
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without parsing a request body and wraps the result
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
