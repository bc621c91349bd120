package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stronghold/engine"
	"stronghold/experiments"
	"stronghold/game"
	"stronghold/searcher"
)

func main() {
	variantsPath := flag.String("variants", "", "optional YAML file of extra variant configs")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configs := []game.Config{
		game.FreePlacementConfig(),
		game.StagedOpeningConfig(),
		game.CoinTossConfig(1),
		game.CapsConfig(),
		game.CheckersConfig(),
	}
	if *variantsPath != "" {
		extra, err := game.LoadVariants(*variantsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load variants")
		}
		for _, cfg := range extra {
			configs = append(configs, cfg)
		}
	}

	writer, err := experiments.NewWriter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}

	for i, cfg := range configs {
		winner := runGame(i, cfg, writer)
		log.Info().Str("variant", cfg.Name).Str("winner", winner).Msg("variant finished")
	}
}

// runGame plays one hard-vs-medium game under cfg and records the moves.
func runGame(id int, cfg game.Config, writer *experiments.Writer) string {
	e, err := engine.LocalEngine(cfg,
		searcher.NewAgent(searcher.Hard, searcher.WithMetrics()),
		searcher.NewAgent(searcher.Medium, searcher.WithMetrics()),
	)
	if err != nil {
		log.Fatal().Err(err).Str("variant", cfg.Name).Msg("failed to start game")
	}

	winner, records := e.Run()
	for i := range records {
		records[i].Game = id
	}
	if err := writer.WriteMoves(cfg.Name, records); err != nil {
		log.Error().Err(err).Str("variant", cfg.Name).Msg("failed to write move records")
	}
	return winner
}
