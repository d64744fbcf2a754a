package server

import (
	"backend-routeforge/internal/config"
	"backend-routeforge/internal/elevation"
	"backend-routeforge/internal/export"
	"backend-routeforge/internal/route"
	"backend-routeforge/internal/settings"
	"backend-routeforge/internal/shape"
	"backend-routeforge/internal/snap"
	"backend-routeforge/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Stream   *stream.Hub
	Settings *settings.Service
}

func NewServer(cfg config.Config) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Stream:   stream.NewHub(),
		Settings: settings.NewService(cfg.SettingsPath),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	snapProviders := []snap.Provider{
		snap.NewORSProvider(s.Cfg.ORSBaseURL, s.Cfg.ORSAPIKey, nil),
		snap.NewMapboxProvider(s.Cfg.MapboxBaseURL, s.Cfg.MapboxToken, nil),
		snap.NewOSRMProvider(s.Cfg.OSRMBaseURL, nil),
		snap.NewGraphHopperProvider(),
	}
	elevationProviders := []elevation.Provider{
		elevation.NewTerrainProvider(s.Cfg.TerrainBaseURL, s.Cfg.MapboxToken, nil),
		elevation.NewGoogleProvider(),
	}

	shape.RegisterRoutes(s.App.Group("/shapes"))
	route.RegisterRoutes(s.App.Group("/routes"), route.NewTemplateStore())
	snap.RegisterRoutes(s.App.Group("/snap"), snap.NewService(snapProviders, s.Cfg.SnapCacheSize, s.Stream))
	elevation.RegisterRoutes(s.App.Group("/elevation"), elevation.NewService(elevationProviders, s.Cfg.ElevationCacheSize, s.Stream))
	export.RegisterRoutes(s.App.Group("/export"), export.NewService(s.Settings))
	settings.RegisterRoutes(s.App.Group("/settings"), s.Settings)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
