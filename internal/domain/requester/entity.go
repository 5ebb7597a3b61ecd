package requester

import (
	"errors"
	"strings"
)

var ErrEmptyRequesterName = errors.New("requester name cannot be empty")

// Requester is the party that takes a resource on lease.
type Requester struct {
	id    int64
	name  string
	isVIP bool
}

func NewRequester(id int64, name string, isVIP bool) (*Requester, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRequesterName
	}

	return &Requester{
		id:    id,
		name:  name,
		isVIP: isVIP,
	}, nil
}

func (r *Requester) ID() int64    { return r.id }
func (r *Requester) Name() string { return r.name }
func (r *Requester) IsVIP() bool  { return r.isVIP }
