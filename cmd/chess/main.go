// chess is a two-player chess game played at a line-oriented prompt.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/replay"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *replayFile != "" {
		if err := runReplay(cfg, *replayFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	mgr := session.NewManager(cfg)
	sess, err := startGame(mgr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames := output.NewWriter(cfg.OutputFile, cfg)
	p := newPrompt(cfg, mgr, sess, bufio.NewScanner(os.Stdin), frames)
	if err := p.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := frames.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// startGame opens the first game, from -placement if given.
func startGame(mgr *session.Manager) (*session.Session, error) {
	if *placement == "" {
		return mgr.NewGame(), nil
	}
	toMove := chess.Bottom
	if *topMoves {
		toMove = chess.Top
	}
	return mgr.NewGameFromPlacement(*placement, toMove)
}

// runReplay plays every script in path and writes the outcomes.
func runReplay(cfg *config.Config, path string) error {
	file, err := os.Open(path) //nolint:gosec // G304: path is a user-specified script file
	if err != nil {
		return err
	}
	defer file.Close()

	scripts, err := replay.ParseScripts(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	results := replay.RunAll(scripts, cfg, numWorkers)

	if cfg.Logging(config.Results) {
		fmt.Fprintf(cfg.LogFile, "%d games replayed on %d workers\n", len(results), numWorkers)
	}
	return replay.WriteResults(cfg.OutputFile, results, cfg.JSONFormat)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game. The bottom player moves first.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPrompt commands:\n")
	fmt.Fprintf(os.Stderr, "  a1..h8        Select a piece, then a highlighted destination\n")
	fmt.Fprintf(os.Stderr, "  cancel, c     Drop the current selection\n")
	fmt.Fprintf(os.Stderr, "  new           Abandon the game and start another\n")
	fmt.Fprintf(os.Stderr, "  exit, x, q    Quit\n")
	fmt.Fprintf(os.Stderr, "\nReplay scripts (-replay): one game per line, e.g.\n")
	fmt.Fprintf(os.Stderr, "  fools-mate: f2f4 e7e5 g2g4 d8h4\n")
}
