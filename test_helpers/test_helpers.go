package test_helpers

import (
	"strings"
	"testing"
	"time"
)

func AssertBoolean(t *testing.T, got bool, want bool) {
	t.Helper()
	if got != want {
		t.Errorf("got '%t' want '%t'\n", got, want)
	}
}

func AssertString(t *testing.T, got string, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got '%s' want '%s'\n", got, want)
	}
}

func AssertContains(t *testing.T, got string, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain '%s', got:\n%s\n", want, got)
	}
}

func AssertNotContains(t *testing.T, got string, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("expected output not to contain '%s', got:\n%s\n", unwanted, got)
	}
}

func AssertDuration(t *testing.T, got time.Duration, want time.Duration) {
	t.Helper()
	if got != want {
		t.Errorf("got '%s' want '%s'\n", got, want)
	}
}

// TimeOfDay returns a local time today at hh:mm
func TimeOfDay(hh int, mm int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, time.Local)
}

func AdjustTime(now time.Time, d string) time.Time {
	duration, _ := time.ParseDuration(d)
	return now.Add(duration)
}
