package application

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/internlink/internlink/pkg/errx"
)

func TestStatusIsValid(t *testing.T) {
	cases := []struct {
		status ApplicationStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusAccepted, true},
		{StatusRejected, true},
		{ApplicationStatus("pending"), false},
		{ApplicationStatus("Withdrawn"), false},
		{ApplicationStatus(""), false},
	}
	for _, tc := range cases {
		if got := tc.status.IsValid(); got != tc.want {
			t.Errorf("ApplicationStatus(%q).IsValid() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestTransitionStampsReviewTime(t *testing.T) {
	app := &Application{Status: StatusPending}

	if err := app.Transition(StatusAccepted); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}
	if app.Status != StatusAccepted {
		t.Errorf("status = %q, want Accepted", app.Status)
	}
	if app.ReviewedAt == nil {
		t.Error("ReviewedAt should be set after a transition")
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	app := &Application{Status: StatusPending}

	err := app.Transition("Approved")
	if err == nil {
		t.Fatal("Transition() should reject an unknown status")
	}
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "APPLICATION:INVALID_STATUS" {
		t.Errorf("error = %v, want APPLICATION:INVALID_STATUS", err)
	}
	if e.Type != errx.TypeBusiness {
		t.Errorf("type = %q, want %q", e.Type, errx.TypeBusiness)
	}
	if app.Status != StatusPending {
		t.Errorf("status mutated to %q on a rejected transition", app.Status)
	}
	if app.ReviewedAt != nil {
		t.Error("ReviewedAt set on a rejected transition")
	}
}

func TestResumeRoundTrip(t *testing.T) {
	raw := []byte("%PDF-1.4 fake resume body")
	r := Resume{
		Data: base64.StdEncoding.EncodeToString(raw),
		Name: "jane-doe.pdf",
		Type: "application/pdf",
		Size: int64(len(raw)),
	}

	data, contentType, name, err := r.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(data, raw) {
		t.Error("decoded bytes differ from original")
	}
	if contentType != "application/pdf" {
		t.Errorf("content type = %q", contentType)
	}
	if name != "jane-doe.pdf" {
		t.Errorf("name = %q", name)
	}
}

func TestResumeDecodeDefaults(t *testing.T) {
	r := Resume{Data: base64.StdEncoding.EncodeToString([]byte("doc"))}

	_, contentType, name, err := r.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if contentType != "application/pdf" {
		t.Errorf("default content type = %q, want application/pdf", contentType)
	}
	if name != "resume.pdf" {
		t.Errorf("default name = %q, want resume.pdf", name)
	}
}

func TestResumeDecodeEmpty(t *testing.T) {
	var r Resume

	_, _, _, err := r.Decode()
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "APPLICATION:RESUME_NOT_FOUND" {
		t.Errorf("error = %v, want APPLICATION:RESUME_NOT_FOUND", err)
	}
}

func TestResumeValidate(t *testing.T) {
	valid := base64.StdEncoding.EncodeToString([]byte("content"))

	cases := []struct {
		name     string
		resume   Resume
		wantCode string
	}{
		{"empty is valid", Resume{}, ""},
		{"valid pdf", Resume{Data: valid, Type: "application/pdf"}, ""},
		{"valid without type", Resume{Data: valid}, ""},
		{"bad base64", Resume{Data: "!!not-base64!!"}, "APPLICATION:INVALID_RESUME"},
		{"disallowed type", Resume{Data: valid, Type: "application/x-sh"}, "APPLICATION:INVALID_RESUME"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.resume.Validate()
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var e *errx.Error
			if !errors.As(err, &e) || e.Code != tc.wantCode {
				t.Errorf("error = %v, want %s", err, tc.wantCode)
			}
		})
	}
}

func TestResumeValidateNormalizesSize(t *testing.T) {
	raw := []byte("resume bytes")
	r := Resume{
		Data: base64.StdEncoding.EncodeToString(raw),
		Size: 999999, // client lies
	}

	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if r.Size != int64(len(raw)) {
		t.Errorf("Size = %d, want %d", r.Size, len(raw))
	}
}

func TestResumeValidateSizeCap(t *testing.T) {
	big := strings.Repeat("a", MaxResumeSize+1)
	r := Resume{Data: base64.StdEncoding.EncodeToString([]byte(big))}

	err := r.Validate()
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != "APPLICATION:RESUME_TOO_LARGE" {
		t.Errorf("error = %v, want APPLICATION:RESUME_TOO_LARGE", err)
	}
}
