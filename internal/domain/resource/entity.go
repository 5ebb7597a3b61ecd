package resource

import (
	"errors"
	"strings"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrNegativePrice       = errors.New("price per hour cannot be negative")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Resource is the thing being leased out by the hour.
type Resource struct {
	id           int64
	name         string
	pricePerHour float64
}

func NewResource(id int64, name string, pricePerHour float64) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	if err := validatePricePerHour(pricePerHour); err != nil {
		return nil, err
	}

	return &Resource{
		id:           id,
		name:         strings.TrimSpace(name),
		pricePerHour: pricePerHour,
	}, nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func validatePricePerHour(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (r *Resource) ID() int64             { return r.id }
func (r *Resource) Name() string          { return r.name }
func (r *Resource) PricePerHour() float64 { return r.pricePerHour }
