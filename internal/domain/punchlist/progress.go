package punchlist

import "math"

// NewProgress computes closed/total as a percentage rounded to two decimals.
// An empty selection reports 0.
func NewProgress(total, closed int64) Progress {
	p := Progress{Total: total, Closed: closed}
	if total > 0 {
		p.Percent = math.Round(float64(closed)/float64(total)*100*100) / 100
	}
	return p
}
