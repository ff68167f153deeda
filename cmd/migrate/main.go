package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/devmatch/devmatch-backend/internal/config"
	"github.com/devmatch/devmatch-backend/internal/infrastructure/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("failed to read migration")
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("migration failed")
		}
		log.Info().Str("file", file).Msg("migration applied")
	}
}
