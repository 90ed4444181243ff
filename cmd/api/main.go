package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/e3mc/bschool-admin/internal/pkg/logger"
	"github.com/e3mc/bschool-admin/internal/server"
)

func main() {
	// A missing .env is fine; the config file and real environment apply.
	_ = godotenv.Load()

	srv, err := server.New()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
