package http

import (
	"math"
	stdhttp "net/http"
	"strconv"
	"strings"

	perr "jobguard/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Param returns a trimmed chi url parameter
func Param(r *stdhttp.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// UUIDParam parses a url parameter as a uuid, failing with a validation error
func UUIDParam(r *stdhttp.Request, name string) (uuid.UUID, error) {
	raw := Param(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perr.Validationf(name, "%s must be a uuid", name)
	}
	return id, nil
}

// QueryInt reads an integer query value, def when absent
func QueryInt(r *stdhttp.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, perr.Validationf(key, "%s must be an integer", key)
	}
	return n, nil
}

// QueryFloat reads a float query value, def when absent
func QueryFloat(r *stdhttp.Request, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, perr.Validationf(key, "%s must be a finite number", key)
	}
	return f, nil
}
