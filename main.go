package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/cli"
	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/logging"
	"github.com/robalobadob/numguess/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg)

	history := store.NewMemoryStore()
	engine := game.NewEngine(game.NewSource(cfg.Seed), history)

	fancy := !cfg.Plain && isatty.IsTerminal(os.Stdout.Fd())
	app := cli.New(engine, history, os.Stdin, os.Stdout, fancy)

	log.Info().Bool("fancy", fancy).Bool("seeded", cfg.Seed != 0).Msg("starting numguess")
	if _, err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
