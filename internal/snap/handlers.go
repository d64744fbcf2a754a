package snap

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"backend-routeforge/internal/shared/geo"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req struct {
			Coordinates []geo.Coordinate `json:"coordinates"`
			Profile     string           `json:"profile"`
			Simplify    *bool            `json:"simplify"`
			MaxPoints   int              `json:"max_points"`
			SessionID   string           `json:"session_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		profile, err := ParseProfile(req.Profile)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		simplify := true
		if req.Simplify != nil {
			simplify = *req.Simplify
		}

		snapped, err := svc.SnapToRoads(c.Context(), req.SessionID, req.Coordinates, Options{
			Profile:   profile,
			Simplify:  simplify,
			MaxPoints: req.MaxPoints,
		})
		if err != nil {
			if errors.Is(err, ErrUnknownProfile) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return err
		}
		return c.JSON(fiber.Map{"coordinates": snapped, "profile": profile})
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
