// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// options holds the parsed command line.
type options struct {
	depth     int
	moves     []string
	board     []string
	side      string
	enPassant string
	divide    bool
	workers   int
	cache     bool
	cacheSize int
	suite     string
	maxDepth  int
	configDir string
	verbose   bool
	version   bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }

	opts := &options{}
	var moves, board string

	// Position
	fs.StringVar(&board, "board", "", "Starting diagram: eight ranks from rank 8, '/'-separated, '.' for empty")
	fs.StringVar(&opts.side, "side", "white", "Side to move with -board (white, black)")
	fs.StringVar(&opts.enPassant, "ep", "", "Square of a pawn that just made a double step, with -board")
	fs.StringVar(&moves, "moves", "", "Moves to play first, long algebraic (e.g. \"e2e4 e7e5\")")

	// Counting
	fs.IntVar(&opts.depth, "depth", 0, "Perft depth (required unless -suite)")
	fs.BoolVar(&opts.divide, "divide", false, "Print per-move node counts at root")
	fs.IntVar(&opts.workers, "workers", 0, "Worker goroutines for the root moves (0 = config)")
	fs.BoolVar(&opts.cache, "cache", false, "Cache subtree counts by Zobrist key")
	fs.IntVar(&opts.cacheSize, "cachesize", -1, "Cache capacity in entries with -cache (0 = unlimited, -1 = config)")

	// Suites
	fs.StringVar(&opts.suite, "suite", "", "YAML suite of expected counts to check")
	fs.IntVar(&opts.maxDepth, "maxdepth", 0, "Skip suite depths above this (0 = config)")

	fs.StringVar(&opts.configDir, "config", "", "Directory holding config.yaml")
	fs.BoolVar(&opts.verbose, "v", false, "Debug logging")
	fs.BoolVar(&opts.version, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.moves = splitList(moves, " ,")
	opts.board = splitList(board, "/")
	return opts, nil
}

// splitList splits s on any of the separator characters, dropping empty
// fields.
func splitList(s, seps string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: perft [options]\n\n")
	fmt.Fprintf(w, "Counts the leaf nodes of the legal move tree.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  perft -depth 5\n")
	fmt.Fprintf(w, "  perft -depth 3 -divide -moves \"e2e4 e7e5\"\n")
	fmt.Fprintf(w, "  perft -depth 6 -workers 8 -cache -cachesize 1000000\n")
	fmt.Fprintf(w, "  perft -suite internal/perft/testdata/suite.yaml -maxdepth 4\n")
}
