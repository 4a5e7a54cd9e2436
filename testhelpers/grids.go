// Package testhelpers holds grids shared by tests across packages.
package testhelpers

// SmallGrid is a 4x4 grid with XMAS once, reading east along the top row.
var SmallGrid = []string{
	"XMAS",
	"MXAM",
	"AXAS",
	"MASX",
}

// ExampleGrid contains XMAS 18 times and 9 X formations of MAS.
var ExampleGrid = []string{
	"MMMSXXMASM",
	"MSAMXMSMSA",
	"AMXSXMAAMM",
	"MSAMASMSMX",
	"XMASAMXAMM",
	"XXAMMXXAMA",
	"SMSMSASXSS",
	"SAXAMASAAA",
	"MAMMMXMMMM",
	"MXMXAXMASX",
}

// SingleX has exactly one X formation of MAS, centred at (1, 1).
var SingleX = []string{
	"M.S",
	".A.",
	"M.S",
}
