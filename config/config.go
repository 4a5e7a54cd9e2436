package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug        = "debug"
	ConfigCPUProfile   = "cpu-profile"
	ConfigMemProfile   = "mem-profile"
	ConfigWord         = "word"
	ConfigCrossWord    = "cross-word"
	ConfigThreads      = "threads"
	ConfigOutputFormat = "output-format"
	ConfigNormalize    = "normalize"
	ConfigPuzzlePath   = "puzzle-path"
	ConfigFile         = "file"
)

// Config is the process-wide configuration. Every setting can come from a
// command-line flag or a WORDSEARCH_-prefixed environment variable
// (WORDSEARCH_CROSS_WORD for cross-word, and so on).
type Config struct {
	*viper.Viper
	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
	c.SetDefault(ConfigWord, "XMAS")
	c.SetDefault(ConfigCrossWord, "MAS")
	c.SetDefault(ConfigThreads, 0)
	c.SetDefault(ConfigOutputFormat, "text")
	c.SetDefault(ConfigNormalize, true)
	c.SetDefault(ConfigPuzzlePath, "./data/puzzles")
	c.SetDefault(ConfigFile, "")
}

// Load parses args as flags and binds them, plus the environment, on top
// of the defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("wordsearch", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.String(ConfigMemProfile, "", "file to write a heap profile to")
	fs.String(ConfigWord, "XMAS", "word to count occurrences of")
	fs.String(ConfigCrossWord, "MAS", "word to count X formations of")
	fs.Int(ConfigThreads, 0, "search threads; 0 or 1 searches sequentially")
	fs.String(ConfigOutputFormat, "text", "report format: text, yaml or json")
	fs.Bool(ConfigNormalize, true, "put input lines into Unicode NFC")
	fs.String(ConfigPuzzlePath, "./data/puzzles", "directory holding puzzle files")
	fs.String(ConfigFile, "", "read the grid from this file instead of stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("wordsearch")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths resolves relative path settings against basepath,
// usually the directory of the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigPuzzlePath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basepath, p))
	}
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

func (c *Config) ToDisplayText() string {
	settings := c.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%-15s %v\n", k, settings[k])
	}
	return sb.String()
}
