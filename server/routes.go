package server

func (s *Server) setupRoutes() {
	s.app.Get("/", s.healthCheckHandler)
	s.app.Get("/webhook", s.verifyWebhookHandler)
	s.app.Post("/webhook", s.webhookEventHandler)
}
