package server

import (
	"whatsapp-echo/processor"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) verifyWebhookHandler(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	log.Info().
		Str("mode", mode).
		Str("token", token).
		Str("challenge", challenge).
		Msg("Webhook verify attempt")

	echo, err := verifySubscription(mode, token, challenge, s.cfg.VerifyToken)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"detail": "Verification failed"})
	}

	return c.SendString(echo)
}

// webhookEventHandler always acknowledges with a 200: a non-2xx response makes
// the platform retry the delivery or flag the endpoint unhealthy, so failures
// are reported in the response body instead.
func (s *Server) webhookEventHandler(c fiber.Ctx) error {
	result := s.eventProcessor.Process(c.Body())

	switch result.Outcome {
	case processor.OutcomeIgnored:
		return c.JSON(fiber.Map{"status": "ignored"})
	case processor.OutcomeFailed:
		return c.JSON(fiber.Map{"status": "error", "detail": result.Detail})
	default:
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
