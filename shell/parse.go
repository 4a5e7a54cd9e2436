package shell

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format for option")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// CmdOptions are the -key value pairs given to a command.
type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) StringDefault(key, defaultS string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return defaultS
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) Bool(key string) bool {
	return strings.ToLower(c[key]) == "true"
}

func isOption(field string) bool {
	if len(field) < 2 || field[0] != '-' {
		return false
	}
	// negative numbers are arguments
	_, err := strconv.Atoi(field)
	return err != nil
}

// extractFields splits a shell line into a command, its positional
// arguments, and its -key value options. Quoting follows sh rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if isOption(fields[i]) {
			if i+1 >= len(fields) {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}
