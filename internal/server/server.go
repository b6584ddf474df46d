package server

import (
	"fmt"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zeroclick-go/internal/config"
	"zeroclick-go/internal/handler"
)

// Server assembles the fiber app and its routes.
type Server struct {
	app *fiber.App
	cfg config.ServerConfig
}

func New(cfg config.ServerConfig, controller *handler.Controller) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "zeroclick-go",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	app.Get("/healthz", controller.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")
	v1.Get("/stats/zero-click", controller.ZeroClickStats)
	v1.Get("/impact", controller.Impact)
	v1.Get("/terms", controller.Terms)
	v1.Get("/volume/:term", controller.Volume)
	v1.Post("/dataset", controller.UploadDataset)
	v1.Get("/dataset", controller.DownloadDataset)

	return &Server{app: app, cfg: cfg}
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	return s.app.Listen(fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
