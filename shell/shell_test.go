package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/wordsearch/cache"
	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/testhelpers"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func newTestController(out *bytes.Buffer) *ShellController {
	cache.Clear()
	return &ShellController{config: config.DefaultConfig(), out: out}
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"search XMAS -list true",
			&shellcmd{"search", []string{"XMAS"}, CmdOptions{"list": "true"}},
			nil},
		{"solve",
			&shellcmd{"solve", nil, CmdOptions{}},
			nil},
		{`grid "M S" " A " "M S"`,
			&shellcmd{"grid", []string{"M S", " A ", "M S"}, CmdOptions{}},
			nil},
		{"gen 5 5 XMAS -alphabet XMAS -save /tmp/p.txt",
			&shellcmd{"gen", []string{"5", "5", "XMAS"},
				CmdOptions{"alphabet": "XMAS", "save": "/tmp/p.txt"}},
			nil},
		{"set threads -1",
			&shellcmd{"set", []string{"threads", "-1"}, CmdOptions{}},
			nil},
		{"search XMAS -list", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestCommandsNeedGrid(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	for _, line := range []string{"show", "search XMAS", "xcount MAS", "solve", "bench 1"} {
		cmd, err := extractFields(line)
		is.NoErr(err)
		_, err = sc.dispatch(cmd)
		is.Equal(err, errNoGrid)
	}
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	is := is.New(t)
	cmd, err := extractFields(line)
	is.NoErr(err)
	resp, err := sc.dispatch(cmd)
	is.NoErr(err)
	return resp.message
}

func TestSearchAndXCount(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	run(t, sc, `grid M.S .A. M.S`)

	is.Equal(run(t, sc, "search MAS"), "2 occurrences of MAS")
	out := run(t, sc, "search MAS -list true")
	is.True(strings.Contains(out, "(0, 0) southeast len 3"))
	is.True(strings.Contains(out, "(2, 0) northeast len 3"))

	is.Equal(run(t, sc, "xcount MAS"), "1 X formations of MAS")
	out = run(t, sc, "xcount MAS -list true")
	is.True(strings.Contains(out, "X at (1, 1)"))

	cmd, _ := extractFields("xcount M")
	_, err := sc.dispatch(cmd)
	is.True(err != nil)
}

func TestGridChangeClearsCache(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	run(t, sc, `grid M.S .A. M.S`)
	run(t, sc, "search MAS")
	run(t, sc, "xcount MAS")
	is.Equal(cache.Len(), 1)

	// Same contents, so the cached results still apply.
	run(t, sc, `grid M.S .A. M.S`)
	is.Equal(cache.Len(), 1)

	run(t, sc, "grid XMAS")
	is.Equal(cache.Len(), 0)
	is.Equal(run(t, sc, "search MAS"), "0 occurrences of MAS")
}

func TestSearchDecomposedWord(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	decomposed := "CAFE\u0301"
	run(t, sc, "grid "+decomposed)
	is.Equal(sc.curGrid.NumCols(0), 4)
	is.Equal(run(t, sc, "search "+decomposed), "1 occurrences of CAF\u00c9")
}

func TestSolve(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	run(t, sc, "grid "+strings.Join(testhelpers.ExampleGrid, " "))
	out := run(t, sc, "solve")
	is.True(strings.HasPrefix(out, "Number of times XMAS appears: 18\n"+
		"Number of times X-MAS appears: 9\n"))

	run(t, sc, "set output-format yaml")
	out = run(t, sc, "solve")
	is.True(strings.Contains(out, "word_count: 18"))
	is.True(strings.Contains(out, "cross_count: 9"))
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	is.Equal(run(t, sc, "set word"), "word: XMAS")
	is.Equal(run(t, sc, "set word SANTA"), "set word to SANTA")
	is.Equal(sc.config.GetString(config.ConfigWord), "SANTA")
	is.True(strings.Contains(run(t, sc, "set"), "cross-word"))

	for _, line := range []string{"set nope", "set nope 1", "set threads many",
		"set output-format xml", "set a b c"} {
		cmd, err := extractFields(line)
		is.NoErr(err)
		_, err = sc.dispatch(cmd)
		is.True(err != nil)
	}
}

func TestGenAndLoad(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	dir := t.TempDir()
	sc.config.Set(config.ConfigPuzzlePath, dir)
	path := filepath.Join(dir, "gen.txt")

	out := run(t, sc, "gen 6 6 XMAS -alphabet Q -save "+path)
	is.True(strings.Contains(out, "planted XMAS at"))
	generated := sc.curGrid.String()
	is.Equal(run(t, sc, "search XMAS"), "1 occurrences of XMAS")

	run(t, sc, "load gen.txt")
	is.Equal(sc.curGrid.String(), generated)
	is.Equal(sc.curGridName, "gen.txt")
}

func TestBench(t *testing.T) {
	is := is.New(t)
	sc := newTestController(&bytes.Buffer{})
	run(t, sc, "grid XMAS MXAM AXAS MASX")
	out := run(t, sc, "bench 3 -threads 2")
	is.True(strings.HasPrefix(out, "XMAS (1 hits, 2 threads): 3 runs"))

	cmd, _ := extractFields("bench 0")
	_, err := sc.dispatch(cmd)
	is.True(err != nil)
}

func TestExecute(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	sc := newTestController(&buf)
	is.True(!sc.Execute(""))
	is.True(!sc.Execute("frobnicate"))
	is.True(strings.Contains(buf.String(), "Error: unrecognized command"))
	buf.Reset()
	is.True(!sc.Execute("help"))
	is.True(strings.Contains(buf.String(), "xcount <word>"))
	buf.Reset()
	is.True(!sc.Execute("help xcount"))
	is.True(strings.Contains(buf.String(), "X formations"))
	buf.Reset()
	is.True(!sc.Execute("help nothing"))
	is.True(strings.Contains(buf.String(), "There is no help text"))
	is.True(sc.Execute("exit"))
}

func TestAutocomplete(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(newTestController(&bytes.Buffer{}))

	matches, n := c.Do([]rune("xc"), 2)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("ount")})

	matches, n = c.Do([]rune("search MAS -l"), 13)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("ist")})

	matches, _ = c.Do([]rune("set output-format "), 18)
	is.Equal(len(matches), 3)
}
