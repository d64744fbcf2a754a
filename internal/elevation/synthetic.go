package elevation

import (
	"math"
	"math/rand"

	"backend-routeforge/internal/shared/geo"
)

// simulatedElevations generates a plausible profile when no provider
// can serve real data: a random base altitude with rolling hills, a
// gentle mid-route rise and per-point noise, clamped at sea level.
func simulatedElevations(coords []geo.Coordinate) []float64 {
	if len(coords) == 0 {
		return []float64{}
	}

	base := 100 + rand.Float64()*200
	elevations := make([]float64, len(coords))
	for i := range coords {
		d := float64(i) / float64(len(coords))
		hills := math.Sin(d*math.Pi*4) * 50
		trend := math.Sin(d*math.Pi) * 30
		noise := (rand.Float64() - 0.5) * 20
		elevations[i] = math.Max(0, base+hills+trend+noise)
	}
	return geo.SmoothArray(elevations, 5)
}

type ProfileOptions struct {
	BaseElevation float64 `json:"base_elevation"`
	MaxElevation  float64 `json:"max_elevation"`
	HillCount     int     `json:"hill_count"`
	Roughness     float64 `json:"roughness"`
}

// CustomProfile builds an elevation profile with evenly spaced gaussian
// hills, for previewing routes with a chosen terrain character.
func CustomProfile(coords []geo.Coordinate, opts ProfileOptions) []float64 {
	if opts.BaseElevation == 0 {
		opts.BaseElevation = 100
	}
	if opts.MaxElevation == 0 {
		opts.MaxElevation = 500
	}
	if opts.HillCount == 0 {
		opts.HillCount = 3
	}
	if opts.Roughness == 0 {
		opts.Roughness = 0.3
	}
	if len(coords) == 0 {
		return []float64{}
	}

	hillHeight := opts.MaxElevation / float64(opts.HillCount)
	hillWidth := 0.3 / float64(opts.HillCount)

	elevations := make([]float64, len(coords))
	for i := range coords {
		d := float64(i) / float64(len(coords))
		ele := opts.BaseElevation
		for j := 1; j <= opts.HillCount; j++ {
			hillPos := float64(j) / float64(opts.HillCount+1)
			offset := (d - hillPos) / hillWidth
			ele += math.Exp(-offset*offset) * hillHeight
		}
		ele += (rand.Float64() - 0.5) * opts.Roughness * opts.MaxElevation
		elevations[i] = math.Max(0, ele)
	}
	return geo.SmoothArray(elevations, 3)
}

type Stats struct {
	Gain float64 `json:"gain"`
	Loss float64 `json:"loss"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

func ComputeStats(elevations []float64) Stats {
	if len(elevations) < 2 {
		return Stats{}
	}

	stats := Stats{Min: elevations[0], Max: elevations[0]}
	for i := 1; i < len(elevations); i++ {
		diff := elevations[i] - elevations[i-1]
		if diff > 0 {
			stats.Gain += diff
		} else {
			stats.Loss -= diff
		}
		stats.Min = math.Min(stats.Min, elevations[i])
		stats.Max = math.Max(stats.Max, elevations[i])
	}
	return stats
}
