package main

import (
	"net/http"
	"time"

	"whatsapp-echo/config"
	"whatsapp-echo/processor"
	"whatsapp-echo/server"
	"whatsapp-echo/whatsapp"
)

const sendTimeout = 20 * time.Second

func main() {
	cfg := config.Load()

	httpClient := &http.Client{
		Timeout: sendTimeout,
	}

	whatsappClient := whatsapp.NewClient(
		cfg.AccessToken,
		cfg.PhoneNumberID,
		cfg.GraphAPIURL,
		httpClient,
	)

	eventProcessor := processor.New(whatsappClient)

	srv := server.New(cfg, eventProcessor)
	srv.Start(cfg.Port)
}
