package errx

import (
	"errors"
	"net/http"
	"testing"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")

	err := reg.New(code)
	if err.Code != "TEST:NOT_FOUND" {
		t.Errorf("code = %q, want TEST:NOT_FOUND", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("status = %d, want 404", err.HTTPStatus)
	}
}

func TestNewReturnsFreshInstances(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("CONFLICT", TypeConflict, http.StatusConflict, "Conflict")

	a := reg.New(code).WithDetail("k", "v")
	b := reg.New(code)
	if len(b.Details) != 0 {
		t.Errorf("details leaked between instances: %v", b.Details)
	}
	if len(a.Details) != 1 {
		t.Errorf("details not attached: %v", a.Details)
	}
}

func TestWithDetail(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("BAD", TypeValidation, http.StatusBadRequest, "Bad input")

	err := reg.New(code).WithDetail("field", "title").WithDetail("reason", "required")
	resp := err.ToHTTPResponse()
	details, ok := resp["details"].(map[string]any)
	if !ok {
		t.Fatalf("details missing from response: %v", resp)
	}
	if details["field"] != "title" {
		t.Errorf("detail field = %v, want title", details["field"])
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to reach database", TypeInternal)

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", err.HTTPStatus)
	}
}

func TestWrapStatusByType(t *testing.T) {
	tests := []struct {
		t    Type
		want int
	}{
		{TypeValidation, http.StatusBadRequest},
		{TypeNotFound, http.StatusNotFound},
		{TypeConflict, http.StatusConflict},
		{TypeAuthentication, http.StatusUnauthorized},
		{TypeAuthorization, http.StatusForbidden},
		{TypeExternal, http.StatusBadGateway},
		{TypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := Wrap(errors.New("x"), "msg", tt.t)
		if err.HTTPStatus != tt.want {
			t.Errorf("Wrap(%s) status = %d, want %d", tt.t, err.HTTPStatus, tt.want)
		}
	}
}
