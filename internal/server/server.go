// Package server exposes the pipeline over REST for the meeting-transcription
// front-end.
package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/leonardotrapani/voicelab/internal/config"
	"github.com/leonardotrapani/voicelab/internal/pipeline"
)

type Server struct {
	app      *fiber.App
	manager  *config.Manager
	pipeline *pipeline.Service
	validate *validator.Validate
	log      *logrus.Logger
}

func New(manager *config.Manager, svc *pipeline.Service, log *logrus.Logger) *Server {
	cfg := manager.GetConfig()

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(fiberlogger.New())

	s := &Server{
		app:      app,
		manager:  manager,
		pipeline: svc,
		validate: validator.New(),
		log:      log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Get("/health", s.handleHealth)
	api.Post("/transcribe", s.handleTranscribe)
	api.Post("/translate", s.handleTranslate)
	api.Post("/summarize", s.handleSummarize)
	api.Post("/process_all", s.handleProcessAll)
	api.Post("/download_report", s.handleDownloadReport)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving requests until Shutdown is called.
func (s *Server) Listen() error {
	cfg := s.manager.GetConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.log.Infof("server: listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
