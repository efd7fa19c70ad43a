package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeInvalidStateTransition, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestValidationf_CarriesField(t *testing.T) {
	err := Validationf("employer_id", "%s is required", "employer_id")
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	e, ok := As(err)
	if !ok || e.Field() != "employer_id" {
		t.Fatalf("field not attached: %#v", e)
	}
	if w := WireFrom(err); w.Field != "employer_id" || w.Message != "employer_id is required" {
		t.Fatalf("wire = %#v", w)
	}
}

func TestInvalidTransitionf(t *testing.T) {
	err := InvalidTransitionf("alert %s is %s", "a1", "confirmed")
	if status, w := HTTP(err); status != http.StatusConflict || w.Code != ErrorCodeInvalidStateTransition {
		t.Fatalf("HTTP() = %d %#v", status, w)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	src := stderrs.New("root")
	err := Wrapf(src, ErrorCodeDB, "load %s", "alert")
	if !stderrs.Is(err, src) {
		t.Fatalf("wrapped cause lost")
	}
	if got := err.Error(); got != "load alert: root" {
		t.Fatalf("Error() = %q", got)
	}
	if Root(fmt.Errorf("outer: %w", err)) != src {
		t.Fatalf("Root did not reach the cause")
	}
}

func TestFromPostgres_Codes(t *testing.T) {
	cases := []struct {
		state string
		want  ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23514", ErrorCodeValidation},
		{"40001", ErrorCodeDB},
		{"57P03", ErrorCodeUnavailable},
	}
	for _, c := range cases {
		err := FromPostgres(&pgconn.PgError{Code: c.state}, "op")
		if got := CodeOf(err); got != c.want {
			t.Fatalf("FromPostgres(%s) code = %v, want %v", c.state, got, c.want)
		}
	}
	if FromPostgres(nil, "op") != nil {
		t.Fatalf("nil in should be nil out")
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", fmt.Errorf("x: %w", context.DeadlineExceeded), true},
		{"unavailable", Unavailablef("pg down"), true},
		{"serialization", &pgconn.PgError{Code: "40001"}, true},
		{"validation", Validationf("title", "title is required"), false},
		{"not found", NotFoundf("alert"), false},
		{"state", InvalidTransitionf("done"), false},
		{"canceled", context.Canceled, false},
	}
	for _, c := range cases {
		if got := IsTransient(c.err); got != c.want {
			t.Fatalf("%s: IsTransient = %v, want %v", c.name, got, c.want)
		}
	}
}
