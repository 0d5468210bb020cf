package store

import (
    "regexp"
    "strconv"
    "strings"
    "testing"
    "time"
)

func TestFormatPatientID(t *testing.T) {
    cases := map[int64]string{
        1:       "RH000001",
        2:       "RH000002",
        42:      "RH000042",
        999999:  "RH999999",
        1000000: "RH1000000", // past six digits the number simply grows
    }
    for seq, want := range cases {
        if got := FormatPatientID(seq); got != want {
            t.Errorf("FormatPatientID(%d) = %s, want %s", seq, got, want)
        }
    }
}

func TestFormatPatientIDPattern(t *testing.T) {
    pattern := regexp.MustCompile(`^RH\d{6}$`)
    for seq := int64(1); seq <= 100; seq++ {
        id := FormatPatientID(seq)
        if !pattern.MatchString(id) {
            t.Fatalf("identifier %s does not match RH\\d{6}", id)
        }
    }
}

func TestFormatPatientIDMonotonic(t *testing.T) {
    prev := FormatPatientID(1)
    for seq := int64(2); seq <= 500; seq++ {
        next := FormatPatientID(seq)
        if next <= prev {
            t.Fatalf("expected %s > %s", next, prev)
        }
        prev = next
    }
}

func TestBuildQRCode(t *testing.T) {
    createdAt := time.Date(2025, time.June, 15, 12, 30, 45, 0, time.UTC)
    qr := BuildQRCode("RH000007", createdAt)

    parts := strings.Split(qr, "_")
    if len(parts) != 3 {
        t.Fatalf("expected 3 underscore-separated parts, got %q", qr)
    }
    if parts[0] != "RH" {
        t.Errorf("expected RH prefix, got %s", parts[0])
    }
    if parts[1] != "RH000007" {
        t.Errorf("expected embedded patient id, got %s", parts[1])
    }
    millis, err := strconv.ParseInt(parts[2], 10, 64)
    if err != nil {
        t.Fatalf("expected numeric millis suffix, got %s", parts[2])
    }
    if millis != createdAt.UnixMilli() {
        t.Errorf("expected %d, got %d", createdAt.UnixMilli(), millis)
    }
}

func TestDateParam(t *testing.T) {
    // The rendered literal carries only the date, regardless of the
    // clock time or zone of the input.
    ist := time.FixedZone("IST", 5*3600+1800)
    cases := map[time.Time]string{
        time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC):    "2025-06-15",
        time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC): "2025-06-15",
        time.Date(2025, time.January, 2, 1, 30, 0, 0, ist):      "2025-01-02",
    }
    for input, want := range cases {
        if got := DateParam(input); got != want {
            t.Errorf("DateParam(%v) = %s, want %s", input, got, want)
        }
    }

    if got, want := DateParam(TodayUTC()), TodayUTC().Format("2006-01-02"); got != want {
        t.Errorf("DateParam(TodayUTC()) = %s, want %s", got, want)
    }
}

func TestTodayUTCIsMidnight(t *testing.T) {
    today := TodayUTC()

    if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
        t.Errorf("expected UTC midnight, got %v", today)
    }
    if today.Location() != time.UTC {
        t.Errorf("expected UTC location, got %v", today.Location())
    }
}
