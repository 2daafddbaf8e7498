package punchlist

import "testing"

func TestNewProgress(t *testing.T) {
	cases := []struct {
		name          string
		total, closed int64
		want          float64
	}{
		{name: "empty", total: 0, closed: 0, want: 0},
		{name: "half", total: 2, closed: 1, want: 50},
		{name: "thirds", total: 3, closed: 1, want: 33.33},
		{name: "two thirds", total: 3, closed: 2, want: 66.67},
		{name: "all", total: 7, closed: 7, want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewProgress(tc.total, tc.closed)
			if got.Percent != tc.want {
				t.Fatalf("percent: got=%v want=%v", got.Percent, tc.want)
			}
			if got.Total != tc.total || got.Closed != tc.closed {
				t.Fatalf("counts not carried: %+v", got)
			}
		})
	}
}

func TestNewTallySeedsBothStatuses(t *testing.T) {
	tally := NewTally()
	if len(tally) != 2 || tally[StatusOpen] != 0 || tally[StatusClosed] != 0 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}
