package shape

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"backend-routeforge/internal/shared/geo"
)

func RegisterRoutes(r fiber.Router) {
	r.Get("/:name", func(c *fiber.Ctx) error {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lng required")
		}

		center := geo.Coordinate{Lat: lat, Lng: lng}
		if !center.IsValid() {
			return fiber.NewError(fiber.StatusBadRequest, "center out of range")
		}

		radius, _ := strconv.ParseFloat(c.Query("radius_m"), 64)
		if radius <= 0 {
			radius = 500
		}

		name := c.Params("name")
		points, _ := strconv.Atoi(c.Query("points"))
		if points <= 0 {
			if name == "star" {
				points = 5
			} else {
				points = 100
			}
		}

		coords, err := Generate(name, center, radius, points)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"shape":       name,
			"center":      center,
			"radius_m":    radius,
			"coordinates": coords,
		})
	})
}
