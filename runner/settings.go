package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/grid"
)

var (
	errEmptyWord      = errors.New("the word to search for cannot be empty")
	errShortCrossWord = errors.New("X formations need a word of at least two letters")
)

// Options are the settings a solve runs with.
type Options struct {
	Word      string
	CrossWord string
	Threads   int
	Format    Format
}

// OptionsFromConfig reads Options from cfg and validates them.
func OptionsFromConfig(cfg *config.Config) (*Options, error) {
	format, err := ParseFormat(cfg.GetString(config.ConfigOutputFormat))
	if err != nil {
		return nil, err
	}
	normalize := cfg.GetBool(config.ConfigNormalize)
	opts := &Options{
		Word:      grid.NormalizeWord(cfg.GetString(config.ConfigWord), normalize),
		CrossWord: grid.NormalizeWord(cfg.GetString(config.ConfigCrossWord), normalize),
		Threads:   cfg.GetInt(config.ConfigThreads),
		Format:    format,
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (opts *Options) Validate() error {
	if opts.Word == "" {
		return errEmptyWord
	}
	n := len([]rune(opts.CrossWord))
	if n < 2 {
		return errShortCrossWord
	}
	if n%2 == 0 {
		log.Warn().Str("cross-word", opts.CrossWord).
			Msg("even-length words have no single centre cell; X counts may be meaningless")
	}
	return nil
}

// Format is a report output format.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

func (f Format) String() string {
	switch f {
	case TextFormat:
		return "text"
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return TextFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown output format %q", s)
}
