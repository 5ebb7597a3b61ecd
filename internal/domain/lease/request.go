package lease

import (
	"time"

	"lease-market/internal/pkg/errs"
)

// TimeLayout is the accepted format of request timestamps ("yyyy-mm-dd HH:mm:ss").
const TimeLayout = "2006-01-02 15:04:05"

const timeLayoutLabel = "yyyy-mm-dd HH:mm:ss"

// Request is an unvalidated lease request. Period validates it once; the
// outcome, period or error, is kept for every later call.
type Request struct {
	requesterID int64
	resourceID  int64
	timeFrom    string
	timeTill    string

	period    *Period
	periodErr error
}

func NewRequest(requesterID, resourceID int64, timeFrom, timeTill string) *Request {
	return &Request{
		requesterID: requesterID,
		resourceID:  resourceID,
		timeFrom:    timeFrom,
		timeTill:    timeTill,
	}
}

func (r *Request) RequesterID() int64 { return r.requesterID }
func (r *Request) ResourceID() int64  { return r.resourceID }
func (r *Request) TimeFrom() string   { return r.timeFrom }
func (r *Request) TimeTill() string   { return r.timeTill }

func (r *Request) Period() (*Period, error) {
	if r.period == nil && r.periodErr == nil {
		r.period, r.periodErr = r.buildPeriod()
	}
	return r.period, r.periodErr
}

func (r *Request) buildPeriod() (*Period, error) {
	from, ok := parseTimestamp(r.timeFrom)
	if !ok {
		return nil, errs.Mark(errs.Newf("start time must be in %q format", timeLayoutLabel), ErrMalformedInput)
	}

	till, ok := parseTimestamp(r.timeTill)
	if !ok {
		return nil, errs.Mark(errs.Newf("end time must be in %q format", timeLayoutLabel), ErrMalformedInput)
	}

	if !till.After(from) {
		return nil, errs.Mark(errs.New("end time must be after start time"), ErrInvalidOrdering)
	}

	return NewPeriod(from, till), nil
}

// parseTimestamp accepts only the exact TimeLayout text. time.Parse alone lets
// fractional seconds through after the seconds field.
func parseTimestamp(raw string) (time.Time, bool) {
	t, err := time.Parse(TimeLayout, raw)
	if err != nil || t.Format(TimeLayout) != raw {
		return time.Time{}, false
	}
	return t, true
}
