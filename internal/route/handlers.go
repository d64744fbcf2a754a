package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"backend-routeforge/internal/shared/geo"
	"backend-routeforge/internal/simplify"
)

func RegisterRoutes(r fiber.Router, templates *TemplateStore) {
	r.Post("/laps", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates  []geo.Coordinate `json:"coordinates"`
			LapCount     int              `json:"lap_count"`
			GapDistanceM float64          `json:"gap_distance_m"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		expanded, err := ExpandLaps(req.Coordinates, LoopConfig{
			LapCount:     req.LapCount,
			GapDistanceM: req.GapDistanceM,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"coordinates": expanded})
	})

	r.Post("/stats", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates  []geo.Coordinate `json:"coordinates"`
			PaceMinPerKm float64          `json:"pace_min_per_km"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(ComputeStats(req.Coordinates, req.PaceMinPerKm))
	})

	r.Post("/timestamps", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates  []geo.Coordinate `json:"coordinates"`
			PaceMinPerKm float64          `json:"pace_min_per_km"`
			StartTime    string           `json:"start_time"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// An absent or unparseable start time falls back to now.
		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			start = time.Time{}
		}

		stamps := Timestamps(req.Coordinates, req.PaceMinPerKm, start)
		out := make([]string, 0, len(stamps))
		for _, ts := range stamps {
			out = append(out, ts.Format(time.RFC3339))
		}
		return c.JSON(fiber.Map{"timestamps": out})
	})

	r.Post("/simplify", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates       []geo.Coordinate `json:"coordinates"`
			Tolerance         float64          `json:"tolerance"`
			PreserveEndpoints *bool            `json:"preserve_endpoints"`
			MaxPoints         int              `json:"max_points"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		preserve := true
		if req.PreserveEndpoints != nil {
			preserve = *req.PreserveEndpoints
		}

		coords := req.Coordinates
		if req.Tolerance > 0 {
			coords = simplify.DouglasPeucker(coords, req.Tolerance, preserve)
		}
		if req.MaxPoints > 0 {
			coords = simplify.Decimate(coords, req.MaxPoints)
		}
		return c.JSON(fiber.Map{"coordinates": coords})
	})

	r.Get("/loop-types", func(c *fiber.Ctx) error {
		return c.JSON(LoopTypes())
	})

	r.Get("/templates", func(c *fiber.Ctx) error {
		return c.JSON(templates.List())
	})

	r.Get("/templates/:slug", func(c *fiber.Ctx) error {
		t, ok := templates.Get(c.Params("slug"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "template not found")
		}
		return c.JSON(t)
	})

	r.Post("/templates", func(c *fiber.Ctx) error {
		var req struct {
			Name        string           `json:"name"`
			Coordinates []geo.Coordinate `json:"coordinates"`
			Description string           `json:"description"`
			Difficulty  string           `json:"difficulty"`
			Surface     string           `json:"surface"`
			Tags        []string         `json:"tags"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		t, err := templates.CreateCustom(req.Name, req.Coordinates, Template{
			Description: req.Description,
			Difficulty:  req.Difficulty,
			Surface:     req.Surface,
			Tags:        req.Tags,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})
}
