package lease

import (
	"fmt"
	"strings"

	"lease-market/internal/pkg/errs"
)

// Business outcomes of a lease attempt. Every error produced by this package
// is marked with exactly one of them.
var (
	ErrMalformedInput    = errs.New("malformed input")
	ErrInvalidOrdering   = errs.New("invalid ordering")
	ErrNotFound          = errs.New("not found")
	ErrHoursIntersection = errs.New("hours intersection")
)

// HoursIntersectionError lists the occupied hour labels in the order they were found.
type HoursIntersectionError struct {
	Hours []string

	resourceID   int64
	resourceName string
	hasResource  bool
}

func (e *HoursIntersectionError) Error() string {
	quoted := make([]string, len(e.Hours))
	for i, h := range e.Hours {
		quoted[i] = `"` + h + `"`
	}
	occupied := "occupied hours: " + strings.Join(quoted, ", ")
	if !e.hasResource {
		return occupied
	}
	return fmt.Sprintf("resource #%d %q is busy, %s", e.resourceID, e.resourceName, occupied)
}

func (e *HoursIntersectionError) Is(target error) bool {
	return target == ErrHoursIntersection
}

// ForResource returns a copy of e that names the busy resource.
func (e *HoursIntersectionError) ForResource(id int64, name string) *HoursIntersectionError {
	return &HoursIntersectionError{
		Hours:        e.Hours,
		resourceID:   id,
		resourceName: name,
		hasResource:  true,
	}
}

func NewResourceNotFoundError(id int64) error {
	return errs.Mark(errs.Newf("invalid resource id #%d", id), ErrNotFound)
}

func NewRequesterNotFoundError(id int64) error {
	return errs.Mark(errs.Newf("invalid requester id #%d", id), ErrNotFound)
}

// IsBusinessError reports whether err is one of the expected rejection outcomes.
func IsBusinessError(err error) bool {
	return errs.Is(err, ErrMalformedInput) ||
		errs.Is(err, ErrInvalidOrdering) ||
		errs.Is(err, ErrNotFound) ||
		errs.Is(err, ErrHoursIntersection)
}
