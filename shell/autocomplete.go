package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/wordsearch/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"search": {Options: []string{"-list"}},
	"xcount": {Options: []string{"-list"}},
	"gen":    {Options: []string{"-alphabet", "-save"}},
	"bench":  {Options: []string{"-word", "-threads"}},
	"set": {
		Args: []string{
			config.ConfigWord, config.ConfigCrossWord, config.ConfigThreads,
			config.ConfigOutputFormat, config.ConfigPuzzlePath, config.ConfigDebug,
			config.ConfigNormalize,
		},
	},
	"help": {Args: []string{"search", "xcount", "gen", "set"}},
}

var commandNames = []string{
	"help", "load", "grid", "gen", "show", "search", "xcount", "solve",
	"bench", "set", "exit",
}

var boolValues = []string{"true", "false"}
var formatValues = []string{"text", "yaml", "json"}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// unterminated quote; fall back to plain splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-list":
			completions = boolValues
		case cmdName == "set" && lastCompleteField == config.ConfigOutputFormat:
			completions = formatValues
		case cmdName == "set" && (lastCompleteField == config.ConfigDebug ||
			lastCompleteField == config.ConfigNormalize):
			completions = boolValues
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
