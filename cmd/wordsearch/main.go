// wordsearch reads a grid from stdin (or -file) and reports how many times
// the configured word appears, and how many X formations the cross-word
// makes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/runner"
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func readGrid(cfg *config.Config) (*grid.Grid, error) {
	var in io.Reader = os.Stdin
	if path := cfg.GetString(config.ConfigFile); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return grid.FromReader(in, grid.WithNormalization(cfg.GetBool(config.ConfigNormalize)))
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	setupLogging(cfg)

	opts, err := runner.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad-options")
	}
	g, err := readGrid(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read grid")
	}
	log.Debug().Int("rows", g.NumRows()).Int("cols", g.NumCols(0)).Msg("read-grid")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := runner.NewRunner(opts).Solve(ctx, g)
	if err != nil {
		log.Fatal().Err(err).Msg("solve-failed")
	}
	if err := runner.Print(os.Stdout, res, opts.Format); err != nil {
		log.Fatal().Err(err).Msg("could not print report")
	}
}
