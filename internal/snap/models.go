package snap

import (
	"context"
	"errors"

	"backend-routeforge/internal/shared/geo"
)

type Profile string

const (
	ProfileWalking Profile = "walking"
	ProfileCycling Profile = "cycling"
	ProfileDriving Profile = "driving"
)

var ErrUnknownProfile = errors.New("unknown routing profile")

func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfileWalking, ProfileCycling, ProfileDriving:
		return Profile(s), nil
	case "":
		return ProfileDriving, nil
	}
	return "", ErrUnknownProfile
}

type Options struct {
	Profile   Profile `json:"profile"`
	Simplify  bool    `json:"simplify"`
	MaxPoints int     `json:"max_points"`
}

// Provider is one road-routing backend. A nil coordinate slice or an
// error both mean the provider could not produce a route; the caller
// falls through to the next provider.
type Provider interface {
	Name() string
	AttemptRoute(ctx context.Context, coords []geo.Coordinate, profile Profile) ([]geo.Coordinate, error)
}
