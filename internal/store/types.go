package store

import "errors"

// ErrNotFound is returned when no studio has the requested id.
var ErrNotFound = errors.New("studio not found")

// Draft holds the mutable fields of a studio, as supplied on create or
// full replacement.
type Draft struct {
	Name         string
	Description  string
	Location     string
	PricePerHour float64
	ImageURL     *string
	ContactEmail *string
	ContactPhone *string
	IsAvailable  bool
}
