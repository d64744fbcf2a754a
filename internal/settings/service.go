package settings

import (
	"sync"

	"github.com/spf13/viper"

	"backend-routeforge/internal/shared/geo"
)

type Offsets struct {
	LatOffset float64 `json:"lat_offset" mapstructure:"lat_offset"`
	LngOffset float64 `json:"lng_offset" mapstructure:"lng_offset"`
}

// Service keeps small device corrections, currently a fixed GPS offset
// applied to exported coordinates. Values persist in a JSON file so a
// calibration survives restarts.
type Service struct {
	mu      sync.RWMutex
	path    string
	offsets Offsets
}

func NewService(path string) *Service {
	s := &Service{path: path}
	s.offsets = load(path)
	return s
}

func load(path string) Offsets {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("lat_offset", 0.0)
	v.SetDefault("lng_offset", 0.0)
	// A missing file means defaults, not an error.
	_ = v.ReadInConfig()

	var offsets Offsets
	_ = v.Unmarshal(&offsets)
	return offsets
}

func (s *Service) Offsets() Offsets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offsets
}

func (s *Service) Save(offsets Offsets) error {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.Set("lat_offset", offsets.LatOffset)
	v.Set("lng_offset", offsets.LngOffset)
	if err := v.WriteConfigAs(s.path); err != nil {
		return err
	}

	s.mu.Lock()
	s.offsets = offsets
	s.mu.Unlock()
	return nil
}

// Apply shifts every coordinate by the stored offsets.
func (s *Service) Apply(coords []geo.Coordinate) []geo.Coordinate {
	offsets := s.Offsets()
	if offsets.LatOffset == 0 && offsets.LngOffset == 0 {
		return coords
	}

	shifted := make([]geo.Coordinate, len(coords))
	for i, c := range coords {
		shifted[i] = geo.Coordinate{Lat: c.Lat + offsets.LatOffset, Lng: c.Lng + offsets.LngOffset}
	}
	return shifted
}
