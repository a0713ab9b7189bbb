package server

import (
	"whatsapp-echo/config"
	"whatsapp-echo/processor"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type Server struct {
	app            *fiber.App
	cfg            *config.Config
	eventProcessor *processor.EventProcessor
}

func New(cfg *config.Config, eventProcessor *processor.EventProcessor) *Server {
	server := &Server{
		app:            fiber.New(),
		cfg:            cfg,
		eventProcessor: eventProcessor,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting webhook server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
