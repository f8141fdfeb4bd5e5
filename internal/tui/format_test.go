package tui

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/alarm/internal/config"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:      "00:00:00",
		5:      "00:00:05",
		65:     "00:01:05",
		3725:   "01:02:05",
		360000: "100:00:00",
		-3:     "00:00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestRemainingText(t *testing.T) {
	if got := remainingText(61); got != "Time remaining: 00:01:01" {
		t.Fatalf("unexpected text %q", got)
	}
	if got := remainingText(0); got != config.TimesUpText {
		t.Fatalf("expected time's up, got %q", got)
	}
}

func TestFraction(t *testing.T) {
	if fraction(5, 10) != 0.5 {
		t.Fatalf("expected half remaining")
	}
	if fraction(0, 0) != 0 || fraction(12, 10) != 1 {
		t.Fatalf("expected fraction to stay within [0, 1]")
	}
}

func TestParseDuration(t *testing.T) {
	got, err := ParseDuration("1", " 2 ", "03")
	if err != nil {
		t.Fatalf("ParseDuration failed: %v", err)
	}
	if got != 3723 {
		t.Fatalf("expected 3723 seconds, got %d", got)
	}
}

func TestParseDurationRejectsBadFields(t *testing.T) {
	cases := []struct {
		h, m, s string
		field   string
	}{
		{"abc", "0", "0", "hours"},
		{"0", "", "0", "minutes"},
		{"0", "0", "-1", "seconds"},
		{"0", "0", "1.5", "seconds"},
	}
	for _, tc := range cases {
		_, err := ParseDuration(tc.h, tc.m, tc.s)
		var inErr *InputError
		if !errors.As(err, &inErr) {
			t.Fatalf("expected InputError for %q/%q/%q, got %v", tc.h, tc.m, tc.s, err)
		}
		if inErr.Field != tc.field {
			t.Fatalf("expected %s to be blamed, got %s", tc.field, inErr.Field)
		}
	}
}
