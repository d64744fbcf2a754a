package route

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"backend-routeforge/internal/shared/geo"
)

// TemplateStore holds built-in and user-registered route templates for the
// session. In-memory only.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]Template
}

func NewTemplateStore() *TemplateStore {
	s := &TemplateStore{templates: map[string]Template{}}
	for _, t := range builtinTemplates() {
		s.templates[t.Slug] = t
	}
	return s
}

func (s *TemplateStore) List() []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

func (s *TemplateStore) Get(slug string) (Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[slug]
	return t, ok
}

// CreateCustom registers a user template under a slug derived from its name.
func (s *TemplateStore) CreateCustom(name string, coords []geo.Coordinate, opts Template) (Template, error) {
	if name == "" || len(coords) < 2 {
		return Template{}, fmt.Errorf("template name and at least 2 coordinates required")
	}

	t := Template{
		ID:          uuid.NewString(),
		Slug:        slugify(name),
		Name:        name,
		Description: opts.Description,
		Coordinates: coords,
		DistanceKm:  geo.RouteDistanceKm(coords),
		Difficulty:  opts.Difficulty,
		Surface:     opts.Surface,
		Tags:        opts.Tags,
	}
	if t.Description == "" {
		t.Description = "Custom route"
	}
	if t.Difficulty == "" {
		t.Difficulty = "Medium"
	}
	if t.Surface == "" {
		t.Surface = "Mixed"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.Slug] = t
	return t, nil
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// LoopTypes lists the selectable loop labels. Every type expands through
// ExpandLaps; the distinction is presentational.
func LoopTypes() []LoopType {
	return []LoopType{
		{Slug: "out-and-back", Name: "Out and Back", Description: "Run out and return on the same path", Icon: "↔️"},
		{Slug: "circular", Name: "Circular Loop", Description: "Complete circle route", Icon: "🔄"},
		{Slug: "figure-8", Name: "Figure 8", Description: "Figure-eight pattern", Icon: "∞"},
		{Slug: "multiple-waypoints", Name: "Multiple Waypoints", Description: "Route with multiple checkpoints", Icon: "📍"},
	}
}

func builtinTemplates() []Template {
	return []Template{
		{
			ID:          uuid.NewString(),
			Slug:        "golden-gate-park",
			Name:        "Golden Gate Park Loop",
			Description: "Scenic loop through San Francisco's famous park",
			Coordinates: []geo.Coordinate{
				{Lat: 37.7694, Lng: -122.4862},
				{Lat: 37.7694, Lng: -122.4762},
				{Lat: 37.7594, Lng: -122.4762},
				{Lat: 37.7594, Lng: -122.4862},
				{Lat: 37.7694, Lng: -122.4862},
			},
			DistanceKm: 3.2,
			Difficulty: "Easy",
			Surface:    "Mixed",
			Tags:       []string{"Scenic", "Flat", "Park"},
		},
		{
			ID:          uuid.NewString(),
			Slug:        "embarcadero",
			Name:        "Embarcadero Waterfront",
			Description: "Beautiful waterfront route along San Francisco Bay",
			Coordinates: []geo.Coordinate{
				{Lat: 37.8085, Lng: -122.4098},
				{Lat: 37.8085, Lng: -122.3898},
				{Lat: 37.7985, Lng: -122.3898},
				{Lat: 37.7985, Lng: -122.4098},
			},
			DistanceKm: 4.5,
			Difficulty: "Easy",
			Surface:    "Pavement",
			Tags:       []string{"Waterfront", "Flat", "Scenic"},
		},
		{
			ID:          uuid.NewString(),
			Slug:        "twin-peaks",
			Name:        "Twin Peaks Challenge",
			Description: "Challenging hill route with great city views",
			Coordinates: []geo.Coordinate{
				{Lat: 37.7516, Lng: -122.4476},
				{Lat: 37.7516, Lng: -122.4376},
				{Lat: 37.7416, Lng: -122.4376},
				{Lat: 37.7416, Lng: -122.4476},
			},
			DistanceKm: 2.8,
			Difficulty: "Hard",
			Surface:    "Mixed",
			Tags:       []string{"Hilly", "Scenic", "Challenging"},
		},
	}
}
