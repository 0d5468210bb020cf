package controllers

import "testing"

func TestNormalizeClockTimeZeroPads(t *testing.T) {
    cases := map[string]string{
        "9:30":  "09:30",
        "09:30": "09:30",
        "0:05":  "00:05",
        "23:59": "23:59",
    }
    for input, want := range cases {
        got, err := normalizeClockTime(input)
        if err != nil {
            t.Errorf("normalizeClockTime(%q) returned error: %v", input, err)
            continue
        }
        if got != want {
            t.Errorf("normalizeClockTime(%q) = %q, want %q", input, got, want)
        }
    }
}

func TestNormalizeClockTimeRejectsInvalid(t *testing.T) {
    for _, input := range []string{"25:00", "12:60", "noon", "12", ""} {
        if _, err := normalizeClockTime(input); err == nil {
            t.Errorf("expected error for %q", input)
        }
    }
}
