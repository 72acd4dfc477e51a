package main

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/halvorlinder/Connect-4-AI/cli"
	"github.com/halvorlinder/Connect-4-AI/game"
)

func envOrDefaultInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Warn().Str("key", key).Str("value", raw).Msg("ignoring invalid env override")
		return fallback
	}
	return n
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level, err := zerolog.ParseLevel(raw)
		if err != nil {
			log.Warn().Str("value", raw).Msg("ignoring invalid LOG_LEVEL")
			return
		}
		zerolog.SetGlobalLevel(level)
	}
}

func main() {
	setupLogging()

	rows := envOrDefaultInt("C4_ROWS", 6)
	cols := envOrDefaultInt("C4_COLS", 7)

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	p1, err := cli.SelectAgent(prompter, game.P1, rows, cols)
	if err != nil {
		log.Fatal().Err(err).Msg("could not configure P1")
	}
	p2, err := cli.SelectAgent(prompter, game.P2, rows, cols)
	if err != nil {
		log.Fatal().Err(err).Msg("could not configure P2")
	}

	res := cli.NewGame(rows, cols, p1, p2, os.Stdout).Run()
	log.Info().Stringer("result", res).Msg("game finished")
}
