package elevation

import (
	"context"
	"fmt"
	"log"

	"backend-routeforge/internal/shared/fifocache"
	"backend-routeforge/internal/shared/geo"
	"backend-routeforge/internal/stream"
)

type Service struct {
	providers []Provider
	cache     *fifocache.Cache[[]float64]
	hub       *stream.Hub
}

func NewService(providers []Provider, cacheSize int, hub *stream.Hub) *Service {
	return &Service{
		providers: providers,
		cache:     fifocache.New[[]float64](cacheSize),
		hub:       hub,
	}
}

// ElevationData returns one elevation per coordinate. Provider failures
// are soft; the synthetic generator guarantees a result, so the method
// never errors.
func (s *Service) ElevationData(ctx context.Context, sessionID string, coords []geo.Coordinate) []float64 {
	if len(coords) == 0 {
		return []float64{}
	}

	key := cacheKey(coords)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	s.hub.Notify(sessionID, "elevation", stream.LevelLoading, "Fetching elevation data...")

	elevations := s.attemptProviders(ctx, coords)
	if elevations == nil {
		s.hub.Notify(sessionID, "elevation", stream.LevelWarning, "Elevation data unavailable, using estimated profile")
		elevations = simulatedElevations(coords)
	}

	s.cache.Put(key, elevations)
	s.hub.Notify(sessionID, "elevation", stream.LevelSuccess, "Elevation data ready")
	return elevations
}

func (s *Service) attemptProviders(ctx context.Context, coords []geo.Coordinate) []float64 {
	for _, p := range s.providers {
		elevations, err := p.AttemptElevations(ctx, coords)
		if err != nil {
			log.Printf("elevation provider %s failed: %v", p.Name(), err)
			continue
		}
		if len(elevations) > 0 {
			return elevations
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

func cacheKey(coords []geo.Coordinate) string {
	if len(coords) == 0 {
		return ""
	}
	first := coords[0]
	middle := coords[len(coords)/2]
	last := coords[len(coords)-1]
	return fmt.Sprintf("%.3f,%.3f-%.3f,%.3f-%.3f,%.3f",
		first.Lat, first.Lng, middle.Lat, middle.Lng, last.Lat, last.Lng)
}
