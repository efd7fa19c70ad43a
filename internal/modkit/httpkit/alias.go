// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	"github.com/google/uuid"

	phttp "jobguard/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope
	// Response is the HTTP response type
	Response = phttp.Response
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no JSON body
// a returned Response passes through untouched
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Param returns a trimmed url parameter
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// UUIDParam parses a url parameter as a uuid
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) { return phttp.UUIDParam(r, name) }

// QueryInt reads an integer query value
func QueryInt(r *http.Request, key string, def int) (int, error) { return phttp.QueryInt(r, key, def) }

// QueryFloat reads a float query value
func QueryFloat(r *http.Request, key string, def float64) (float64, error) {
	return phttp.QueryFloat(r, key, def)
}
