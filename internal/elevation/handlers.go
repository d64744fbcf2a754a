package elevation

import (
	"github.com/gofiber/fiber/v2"

	"backend-routeforge/internal/shared/geo"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates []geo.Coordinate `json:"coordinates"`
			SessionID   string           `json:"session_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		elevations := svc.ElevationData(c.Context(), req.SessionID, req.Coordinates)
		return c.JSON(fiber.Map{
			"elevations": elevations,
			"stats":      ComputeStats(elevations),
		})
	})

	r.Post("/custom", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates []geo.Coordinate `json:"coordinates"`
			Options     ProfileOptions   `json:"options"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		elevations := CustomProfile(req.Coordinates, req.Options)
		return c.JSON(fiber.Map{
			"elevations": elevations,
			"stats":      ComputeStats(elevations),
		})
	})

	r.Get("/cache", func(c *fiber.Ctx) error {
		size, capacity := svc.CacheStats()
		return c.JSON(fiber.Map{"size": size, "max_size": capacity})
	})

	r.Delete("/cache", func(c *fiber.Ctx) error {
		svc.ClearCache()
		return c.SendStatus(fiber.StatusNoContent)
	})
}
