package lease

import "time"

const (
	HourLayout = "2006-01-02 15"
	DateLayout = "2006-01-02"
)

// Hour is one leased hour. Identity is the date and hour of the instant it was
// built from; the minute offset of that instant is kept but never compared.
type Hour struct {
	at time.Time
}

func NewHour(at time.Time) Hour {
	return Hour{at: at}
}

// String is the identity label, e.g. "2017-01-01 01".
func (h Hour) String() string {
	return h.at.Format(HourLayout)
}

func (h Hour) Date() string {
	return h.at.Format(DateLayout)
}

func (h Hour) Hour() string {
	return h.at.Format("15")
}

func (h Hour) Time() time.Time {
	return h.at
}

func (h Hour) IntersectsWith(other Hour) bool {
	return h.String() == other.String()
}
