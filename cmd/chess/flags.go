// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Players
	bottomName = flag.String("bottom", "Player 1", "Name of the player at the bottom of the board (moves first)")
	topName    = flag.String("top", "Player 2", "Name of the player at the top of the board")

	// Starting position
	placement = flag.String("placement", "", "Start from a FEN piece-placement field instead of the standard position")
	topMoves  = flag.Bool("topmoves", false, "With -placement, the top player moves first")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noCoords     = flag.Bool("nocoords", false, "Don't print file letters and rank numbers around the board")
	colour       = flag.Bool("colour", false, "Highlight destinations and messages with ANSI colours")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbosity", config.Results, "Log level: 0=silent, 1=results, 2=running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (no log output)")

	// Replay
	replayFile = flag.String("replay", "", "Replay the scripted games in this file and report the outcomes")
	workers    = flag.Int("workers", 0, "Number of replay workers (0 = auto-detect based on CPU cores)")
	reportDups = flag.Bool("D", false, "With -replay, mark games ending in a position an earlier game reached")
	exactDups  = flag.Bool("exactdups", false, "With -D, duplicates must also have the same number of moves")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.BottomName = *bottomName
	cfg.TopName = *topName
	cfg.Verbosity = *verbosity
	cfg.JSONFormat = *jsonOutput
	cfg.ShowCoordinates = !*noCoords
	cfg.UseColour = *colour
	cfg.Duplicate.Report = *reportDups
	cfg.Duplicate.ExactMatch = *exactDups

	if *quiet {
		cfg.Verbosity = config.Silent
	}
}
