// Command stubserver runs the in-memory stand-in for the auth and admin role
// services, so the console can be developed and demoed without the real
// backends.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/pkg/config"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/stub"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadStub()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	server := stub.NewServer(stub.Options{
		JWTSecret: cfg.JWTSecret,
		Seed:      cfg.Seed,
		Metrics:   true,
		RateRPS:   cfg.RateRPS,
		RateBurst: cfg.RateBurst,
	}, log)

	log.Info().Str("port", cfg.Port).Msg("stub backend listening")
	if err := server.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("stub backend stopped")
		os.Exit(1)
	}
}
