package punchsheet

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-01-02",
		" 2024-01-02 ",
		"2024-01-02 13:45:00",
		"2024-01-02T08:00:00Z",
		"2024/01/02",
		"01/02/2024",
		"1/2/2024",
		"45293",
	} {
		got, ok := ParseDate(raw)
		if !ok {
			t.Fatalf("ParseDate(%q): not parsed", raw)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q): got=%v want=%v", raw, got, want)
		}
	}

	for _, raw := range []string{"", "   ", "sin fecha", "-3", "0", "NaT", "NaN"} {
		if _, ok := ParseDate(raw); ok {
			t.Fatalf("ParseDate(%q): expected failure", raw)
		}
	}
}

func TestCategory(t *testing.T) {
	cases := map[string]string{
		"A.1":      "A",
		" B.2.3 ":  "B",
		"C":        "C",
		".x":       "",
		"":         "",
		"Punch A.": "Punch A",
	}
	for in, want := range cases {
		if got := Category(in); got != want {
			t.Fatalf("Category(%q): got=%q want=%q", in, got, want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2024, time.January, 11, 18, 30, 0, 0, time.Local)
	due := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := DaysBetween(today, due); got != 10 {
		t.Fatalf("DaysBetween past: got=%d want=10", got)
	}
	future := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	if got := DaysBetween(today, future); got != -9 {
		t.Fatalf("DaysBetween future: got=%d want=-9", got)
	}
}
