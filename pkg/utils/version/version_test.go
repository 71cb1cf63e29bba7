package version

import (
	"strings"
	"testing"
)

func TestGetShortVersionString(t *testing.T) {
	oldVersion, oldDate := Version, BuildDate
	t.Cleanup(func() { Version, BuildDate = oldVersion, oldDate })

	Version = "0.2.0"
	BuildDate = "2026-10-19T08:00:00Z"

	got := GetShortVersionString()
	if got != "hellosrv version 0.2.0 (2026-10-19)" {
		t.Errorf("unexpected short version: %q", got)
	}
}

func TestGetVersionStringIncludesPlatform(t *testing.T) {
	got := GetVersionString()
	if !strings.Contains(got, Platform) || !strings.Contains(got, GoVersion) {
		t.Errorf("detailed version should mention platform and go version: %q", got)
	}
}

func TestInfoRows(t *testing.T) {
	rows := GetVersion().Rows()
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if len(r) != 2 {
			t.Errorf("row %v should have two columns", r)
		}
	}
}
