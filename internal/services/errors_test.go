package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrNotFound, "scan", "read root", "root directory unavailable", cause)

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("marker lost")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}
	want := "not found: scan: read root: root directory unavailable: boom"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrValidation, "plan", "select strategy", "unknown strategy", nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatal("marker lost")
	}
	if err.Error() != "validation error: plan: select strategy: unknown strategy" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatal("nil marker not defaulted")
	}
}

func TestIsEmptyResult(t *testing.T) {
	if !IsEmptyResult(Wrap(ErrNotFound, "plan", "scan", "no files", nil)) {
		t.Fatal("wrapped ErrNotFound not recognized")
	}
	if IsEmptyResult(Wrap(ErrTransient, "plan", "scan", "flaky", nil)) {
		t.Fatal("transient error misclassified as empty result")
	}
}
