//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"gridsnake/internal/host"
)

func TestWindowBackendReportsMissingTag(t *testing.T) {
	run, err := host.Lookup("window")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if err := run(nil, host.DefaultOptions()); !errors.Is(err, ErrWindowUnavailable) {
		t.Fatalf("expected ErrWindowUnavailable, got %v", err)
	}
}
