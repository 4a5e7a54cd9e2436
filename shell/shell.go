package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/cache"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/grid"
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	config     *config.Config
	execPath   string
	gitVersion string

	curGrid     *grid.Grid
	curGridName string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := &ShellController{config: cfg, execPath: execPath, gitVersion: gitVersion}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordsearch>\033[0m ",
		HistoryFile:     "/tmp/wordsearch-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) setGrid(g *grid.Grid, name string) {
	if sc.curGrid != nil && sc.curGrid.Fingerprint() != g.Fingerprint() {
		cache.Clear()
	}
	sc.curGrid = g
	sc.curGridName = name
	log.Debug().Str("name", name).Int("rows", g.NumRows()).
		Uint64("fingerprint", g.Fingerprint()).Msg("set-grid")
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "load":
		return sc.load(cmd)
	case "grid":
		return sc.enterGrid(cmd)
	case "gen":
		return sc.generate(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "search":
		return sc.search(cmd)
	case "xcount":
		return sc.xcount(cmd)
	case "solve":
		return sc.solve(cmd)
	case "bench":
		return sc.bench(cmd)
	case "set":
		return sc.set(cmd)
	case "help":
		var sb strings.Builder
		if len(cmd.args) == 0 {
			usage(&sb)
		} else {
			usageTopic(&sb, cmd.args[0])
		}
		return msg(sb.String()), nil
	}
	return nil, fmt.Errorf("unrecognized command %q; try `help`", cmd.cmd)
}

// Execute runs a single shell line. It returns true if the line asks the
// shell to quit.
func (sc *ShellController) Execute(line string) bool {
	cmd, err := extractFields(line)
	if err == errNoData {
		return false
	} else if err != nil {
		sc.showError(err)
		return false
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		return true
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
		return false
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if sc.Execute(line) {
			sig <- syscall.SIGINT
			break
		}
		if line != "" {
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
		}
	}
}

func (sc *ShellController) Cleanup() {
	log.Debug().Int("cached", cache.Len()).Msg("cleaning up")
	cache.Clear()
}

var errNoGrid = errors.New("please load or generate a grid first, with `load`, `grid` or `gen`")
