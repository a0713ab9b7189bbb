package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	VerifyToken   string
	AccessToken   string
	PhoneNumberID string
	GraphAPIURL   string
	Port          string
}

// Load reads configuration from the environment once at startup. Missing
// credentials do not abort the process: verification fails closed against an
// empty token, and sends fail with a misconfiguration error.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		VerifyToken:   getEnv("VERIFY_TOKEN", ""),
		AccessToken:   getEnv("WA_ACCESS_TOKEN", ""),
		PhoneNumberID: getEnv("WA_PHONE_NUMBER_ID", ""),
		GraphAPIURL:   getEnv("GRAPH_API_URL", "https://graph.facebook.com/v20.0"),
		Port:          getEnv("PORT", "8080"),
	}

	if cfg.VerifyToken == "" {
		log.Warn().Msg("VERIFY_TOKEN is not set, webhook verification will always fail")
	}

	if cfg.AccessToken == "" || cfg.PhoneNumberID == "" {
		log.Warn().Msg("WA_ACCESS_TOKEN or WA_PHONE_NUMBER_ID is not set, outbound sends will fail")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
