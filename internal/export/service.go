package export

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"backend-routeforge/internal/route"
	"backend-routeforge/internal/settings"
	"backend-routeforge/internal/shared/geo"
)

const (
	MIMEGPX  = "application/gpx+xml"
	MIMEKML  = "application/vnd.google-earth.kml+xml"
	MIMEJSON = "application/json"
)

type Service struct {
	settings *settings.Service
	now      func() time.Time
}

func NewService(settings *settings.Service) *Service {
	return &Service{settings: settings, now: time.Now}
}

// GPX renders the route as a GPX 1.1 track, with the stored GPS offset
// correction applied.
func (s *Service) GPX(req Request) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	req.Coordinates = s.settings.Apply(req.Coordinates)
	return buildGPX(req, s.now())
}

func (s *Service) KML(req Request) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	req.Coordinates = s.settings.Apply(req.Coordinates)
	return buildKML(req)
}

type jsonMetadata struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Elevation   string `json:"elevation"`
	ExportDate  string `json:"export_date"`
}

type jsonExport struct {
	Route      []geo.Coordinate `json:"route"`
	Elevations []float64        `json:"elevations,omitempty"`
	Timestamps []string         `json:"timestamps,omitempty"`
	Metadata   jsonMetadata     `json:"metadata"`
}

func (s *Service) JSON(req Request) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	req.Coordinates = s.settings.Apply(req.Coordinates)

	stats := route.ComputeStats(req.Coordinates, req.PaceMinPerKm)
	elevationDisplay := stats.ElevationDisplay
	if len(req.Elevations) > 0 {
		elevationDisplay = geo.FormatElevation(geo.ElevationGain(req.Elevations))
	}

	var timestamps []string
	for _, ts := range req.Timestamps {
		timestamps = append(timestamps, ts.UTC().Format(time.RFC3339))
	}

	return json.MarshalIndent(jsonExport{
		Route:      req.Coordinates,
		Elevations: req.Elevations,
		Timestamps: timestamps,
		Metadata: jsonMetadata{
			ID:          uuid.NewString(),
			Name:        req.displayName(),
			Description: req.Description,
			Distance:    stats.DistanceDisplay,
			Duration:    stats.DurationDisplay,
			Elevation:   elevationDisplay,
			ExportDate:  s.now().UTC().Format(time.RFC3339),
		},
	}, "", "  ")
}
