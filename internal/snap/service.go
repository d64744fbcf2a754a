package snap

import (
	"context"
	"fmt"
	"log"
	"sync"

	"backend-routeforge/internal/shared/fifocache"
	"backend-routeforge/internal/shared/geo"
	"backend-routeforge/internal/simplify"
	"backend-routeforge/internal/stream"
)

const (
	DefaultMaxPoints = 100
	requestPoints    = 10
)

type Service struct {
	providers []Provider
	cache     *fifocache.Cache[[]geo.Coordinate]
	hub       *stream.Hub

	mu          sync.Mutex
	generations map[string]uint64
}

func NewService(providers []Provider, cacheSize int, hub *stream.Hub) *Service {
	return &Service{
		providers:   providers,
		cache:       fifocache.New[[]geo.Coordinate](cacheSize),
		hub:         hub,
		generations: map[string]uint64{},
	}
}

// SnapToRoads fits a hand-drawn route onto the road network. Provider
// failures are soft: each one is logged and the next provider in the
// chain is tried, ending with a local approximation. The only error a
// caller can see is an unknown profile.
func (s *Service) SnapToRoads(ctx context.Context, sessionID string, coords []geo.Coordinate, opts Options) ([]geo.Coordinate, error) {
	switch opts.Profile {
	case ProfileWalking, ProfileCycling, ProfileDriving:
	case "":
		opts.Profile = ProfileDriving
	default:
		return nil, ErrUnknownProfile
	}
	if opts.MaxPoints <= 0 {
		opts.MaxPoints = DefaultMaxPoints
	}
	if len(coords) < 2 {
		return coords, nil
	}

	generation := s.nextGeneration(sessionID)
	requestCoords := reduceWaypoints(coords)
	key := cacheKey(requestCoords, opts)
	// Cache hits return silently, with no status events.
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	s.notify(sessionID, generation, stream.LevelLoading, "Snapping route to roads...")

	snapped := s.attemptProviders(ctx, requestCoords, opts.Profile)
	if snapped == nil {
		s.notify(sessionID, generation, stream.LevelWarning, "Road snapping unavailable, using local approximation")
		snapped = fallbackRoute(coords, opts.Profile)
	}

	if opts.Simplify && len(snapped) > opts.MaxPoints {
		snapped = simplify.Decimate(snapped, opts.MaxPoints)
	}

	s.cache.Put(key, snapped)
	s.notify(sessionID, generation, stream.LevelSuccess, "Route snapped to roads")
	return snapped, nil
}

func (s *Service) attemptProviders(ctx context.Context, coords []geo.Coordinate, profile Profile) []geo.Coordinate {
	for _, p := range s.providers {
		// ors only handles foot traffic.
		if p.Name() == "ors" && profile != ProfileWalking {
			continue
		}
		snapped, err := p.AttemptRoute(ctx, coords, profile)
		if err != nil {
			log.Printf("snap provider %s failed: %v", p.Name(), err)
			continue
		}
		if len(snapped) > 0 {
			return snapped
		}
	}
	return nil
}

func (s *Service) CacheStats() (size, capacity int) {
	return s.cache.Len(), s.cache.Capacity()
}

func (s *Service) ClearCache() {
	s.cache.Clear()
}

// nextGeneration marks a new snap request for the session. Responses
// carrying an older generation are superseded and stay silent.
func (s *Service) nextGeneration(sessionID string) uint64 {
	if sessionID == "" {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[sessionID]++
	return s.generations[sessionID]
}

func (s *Service) notify(sessionID string, generation uint64, level, message string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	current := s.generations[sessionID]
	s.mu.Unlock()
	if generation != current {
		return
	}
	s.hub.Notify(sessionID, "snap", level, message)
}

// reduceWaypoints caps provider requests at 10 representative points:
// the first, the last, and 8 evenly strided between them.
func reduceWaypoints(coords []geo.Coordinate) []geo.Coordinate {
	if len(coords) <= requestPoints {
		return coords
	}

	reduced := make([]geo.Coordinate, 0, requestPoints)
	reduced = append(reduced, coords[0])
	step := float64(len(coords)-1) / float64(requestPoints-1)
	for i := 1; i < requestPoints-1; i++ {
		reduced = append(reduced, coords[int(step*float64(i)+0.5)])
	}
	return append(reduced, coords[len(coords)-1])
}

func cacheKey(coords []geo.Coordinate, opts Options) string {
	if len(coords) == 0 {
		return ""
	}
	first := coords[0]
	middle := coords[len(coords)/2]
	last := coords[len(coords)-1]
	return fmt.Sprintf("%.4f,%.4f-%.4f,%.4f-%.4f,%.4f-%s|%t|%d",
		first.Lat, first.Lng, middle.Lat, middle.Lng, last.Lat, last.Lng,
		opts.Profile, opts.Simplify, opts.MaxPoints)
}
