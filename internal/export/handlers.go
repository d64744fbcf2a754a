package export

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"backend-routeforge/internal/shared/geo"
)

type exportBody struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Coordinates  []geo.Coordinate `json:"coordinates"`
	Elevations   []float64        `json:"elevations"`
	Timestamps   []string         `json:"timestamps"`
	PaceMinPerKm float64          `json:"pace_min_per_km"`
}

func (b exportBody) toRequest() (Request, error) {
	req := Request{
		Name:         b.Name,
		Description:  b.Description,
		Coordinates:  b.Coordinates,
		Elevations:   b.Elevations,
		PaceMinPerKm: b.PaceMinPerKm,
	}
	for _, raw := range b.Timestamps {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Request{}, err
		}
		req.Timestamps = append(req.Timestamps, ts)
	}
	return req, nil
}

func RegisterRoutes(r fiber.Router, svc *Service) {
	handle := func(render func(Request) ([]byte, error), mime, filename string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			var body exportBody
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			req, err := body.toRequest()
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			out, err := render(req)
			if err != nil {
				if errors.Is(err, ErrRouteTooShort) || errors.Is(err, ErrLengthMismatch) {
					return fiber.NewError(fiber.StatusBadRequest, err.Error())
				}
				return err
			}

			c.Set(fiber.HeaderContentType, mime)
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
			return c.Send(out)
		}
	}

	r.Post("/gpx", handle(svc.GPX, MIMEGPX, "route.gpx"))
	r.Post("/kml", handle(svc.KML, MIMEKML, "route.kml"))
	r.Post("/json", handle(svc.JSON, MIMEJSON, "route.json"))
}
