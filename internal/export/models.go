package export

import (
	"errors"
	"time"

	"backend-routeforge/internal/shared/geo"
)

var (
	ErrRouteTooShort  = errors.New("route needs at least 2 points to export")
	ErrLengthMismatch = errors.New("elevations and timestamps must match the coordinate count")
)

// Request carries the active route plus its optional parallel
// elevation and timestamp sequences.
type Request struct {
	Name         string
	Description  string
	Coordinates  []geo.Coordinate
	Elevations   []float64
	Timestamps   []time.Time
	PaceMinPerKm float64
}

func (r Request) validate() error {
	if len(r.Coordinates) < 2 {
		return ErrRouteTooShort
	}
	if len(r.Elevations) > 0 && len(r.Elevations) != len(r.Coordinates) {
		return ErrLengthMismatch
	}
	if len(r.Timestamps) > 0 && len(r.Timestamps) != len(r.Coordinates) {
		return ErrLengthMismatch
	}
	return nil
}

func (r Request) displayName() string {
	if r.Name == "" {
		return "route"
	}
	return r.Name
}
