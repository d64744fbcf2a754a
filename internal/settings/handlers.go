package settings

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/offsets", func(c *fiber.Ctx) error {
		return c.JSON(svc.Offsets())
	})

	r.Put("/offsets", func(c *fiber.Ctx) error {
		var req Offsets
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := svc.Save(req); err != nil {
			return err
		}
		return c.JSON(svc.Offsets())
	})
}
