package lease

import (
	"sync"
	"time"
)

// Period is the ordered list of hours covered by a lease. Hours step by one
// hour from the start instant (minute offset preserved) up to, but excluding,
// the end instant truncated to the minute plus one hour.
type Period struct {
	from time.Time
	till time.Time

	once  sync.Once
	hours []Hour
}

// NewPeriod expects till to be after from; Request enforces that before calling it.
func NewPeriod(from, till time.Time) *Period {
	return &Period{
		from: truncateToMinute(from),
		till: truncateToMinute(till).Add(time.Hour),
	}
}

// ReconstructPeriod rebuilds a period from bounds previously read via From and Till.
func ReconstructPeriod(from, till time.Time) *Period {
	return &Period{from: from, till: till}
}

func (p *Period) From() time.Time { return p.from }
func (p *Period) Till() time.Time { return p.till }

// Hours is computed on first use and cached.
func (p *Period) Hours() []Hour {
	p.once.Do(func() {
		hours := make([]Hour, 0, int(p.till.Sub(p.from)/time.Hour)+1)
		for at := p.from; at.Before(p.till); at = at.Add(time.Hour) {
			hours = append(hours, NewHour(at))
		}
		p.hours = hours
	})
	return p.hours
}

// CheckIntersections compares every candidate against every hour of p. A
// candidate is reported once per matching hour of p.
func (p *Period) CheckIntersections(candidates []Hour) error {
	var occupied []string
	for _, candidate := range candidates {
		for _, own := range p.Hours() {
			if own.IntersectsWith(candidate) {
				occupied = append(occupied, candidate.String())
			}
		}
	}
	if len(occupied) == 0 {
		return nil
	}
	return &HoursIntersectionError{Hours: occupied}
}

func truncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}
