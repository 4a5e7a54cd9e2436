package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/cross"
	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/puzzles"
	"github.com/domino14/wordsearch/runner"
	"github.com/domino14/wordsearch/search"
	"github.com/domino14/wordsearch/stats"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

// word normalizes a typed word the same way grids are read.
func (sc *ShellController) word(w string) string {
	return grid.NormalizeWord(w, sc.config.GetBool(config.ConfigNormalize))
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <file>")
	}
	g, err := puzzles.Load(sc.config, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setGrid(g, cmd.args[0])
	return msg(g.DisplayString()), nil
}

func (sc *ShellController) enterGrid(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: grid <row> [<row> ...]")
	}
	normalize := sc.config.GetBool(config.ConfigNormalize)
	lines := lo.Map(cmd.args, func(l string, _ int) string {
		return grid.NormalizeWord(l, normalize)
	})
	g := grid.FromLines(lines)
	sc.setGrid(g, "(entered)")
	return msg(g.DisplayString()), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: gen <rows> <cols> [words ...]")
	}
	rows, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	cols, err := strconv.Atoi(cmd.args[1])
	if err != nil {
		return nil, err
	}
	words := cmd.args[2:]
	g, placed, err := puzzles.Generate(rows, cols, words,
		cmd.options.StringDefault("alphabet", puzzles.DefaultAlphabet))
	if err != nil {
		return nil, err
	}
	sc.setGrid(g, "(generated)")

	var sb strings.Builder
	sb.WriteString(g.DisplayString())
	for i, h := range placed {
		fmt.Fprintf(&sb, "planted %s at %v\n", words[i], h)
	}
	if path := cmd.options.String("save"); path != "" {
		if err := puzzles.Save(g, path); err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "saved to %s\n", path)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errNoGrid
	}
	return msg(fmt.Sprintf("%s: %d rows\n%s", sc.curGridName, sc.curGrid.NumRows(),
		sc.curGrid.DisplayString())), nil
}

func (sc *ShellController) search(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errNoGrid
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: search <word>")
	}
	word := sc.word(cmd.args[0])
	hits, err := search.Cached(sc.curGrid, word)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d occurrences of %s", hits.Len(), word)
	if cmd.options.Bool("list") {
		lines := lo.Map(hits.Sorted(), func(h search.Hit, _ int) string {
			return "  " + h.String()
		})
		sb.WriteString("\n" + strings.Join(lines, "\n"))
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) xcount(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errNoGrid
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: xcount <word>")
	}
	word := sc.word(cmd.args[0])
	if len([]rune(word)) < 2 {
		return nil, errors.New("X formations need a word of at least two letters")
	}
	hits, err := search.Cached(sc.curGrid, word)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d X formations of %s", cross.Count(hits), word)
	if cmd.options.Bool("list") {
		for _, f := range cross.Formations(hits) {
			sb.WriteString("\n  " + f.String())
		}
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errNoGrid
	}
	opts, err := runner.OptionsFromConfig(sc.config)
	if err != nil {
		return nil, err
	}
	res, err := runner.NewRunner(opts).Solve(context.Background(), sc.curGrid)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := runner.Print(&buf, res, opts.Format); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(buf.String(), "\n")), nil
}

func (sc *ShellController) bench(cmd *shellcmd) (*Response, error) {
	if sc.curGrid == nil {
		return nil, errNoGrid
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: bench <n>")
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, errors.New("number of runs must be positive")
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	word := sc.word(cmd.options.StringDefault("word", sc.config.GetString(config.ConfigWord)))

	timing := &stats.Timing{}
	var hits search.HitSet
	for i := 0; i < n; i++ {
		timing.Time(func() {
			hits, err = search.SearchParallel(context.Background(), sc.curGrid, word, threads)
		})
		if err != nil {
			return nil, err
		}
	}
	return msg(fmt.Sprintf("%s (%d hits, %d threads): %v", word, hits.Len(), threads, timing)), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		return msg(sc.config.ToDisplayText()), nil
	case 1:
		key := cmd.args[0]
		if !sc.config.IsSet(key) {
			return nil, fmt.Errorf("no such setting %q", key)
		}
		return msg(fmt.Sprintf("%s: %v", key, sc.config.Get(key))), nil
	case 2:
	default:
		return nil, errors.New("usage: set <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	if !sc.config.IsSet(key) {
		return nil, fmt.Errorf("no such setting %q", key)
	}
	switch key {
	case config.ConfigOutputFormat:
		if _, err := runner.ParseFormat(value); err != nil {
			return nil, err
		}
	case config.ConfigThreads:
		if _, err := strconv.Atoi(value); err != nil {
			return nil, err
		}
	case config.ConfigDebug:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		if on {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}
	sc.config.Set(key, value)
	return msg(fmt.Sprintf("set %s to %s", key, value)), nil
}
