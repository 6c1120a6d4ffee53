// perft counts legal move tree leaves from a position and checks perft
// suites against expected counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	exitRuntime = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "perft version %s\n", programVersion)
		return exitOK
	}

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}
	cfg = applyFlags(cfg, opts)
	setupLogging(stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	counter := newCounter(cfg, opts.cache)

	if opts.suite != "" {
		return runSuite(ctx, stdout, counter, opts.suite, cfg.Perft.MaxDepth)
	}

	if opts.depth <= 0 {
		fmt.Fprintln(stderr, "perft: -depth must be > 0")
		return exitUsage
	}

	pos, err := startPosition(opts)
	if err != nil {
		log.Error().Err(err).Msg("Invalid starting position")
		return exitUsage
	}

	log.Debug().Int("depth", opts.depth).Int("workers", cfg.Perft.Workers).Msg("Counting")
	res, err := counter.DivideContext(ctx, pos, opts.depth)
	if err != nil {
		log.Warn().Err(err).Int("moves", len(res.Moves)).Uint64("nodes", res.Nodes).Msg("Count interrupted")
		return exitRuntime
	}
	printResult(stdout, res, opts.divide)

	if opts.cache {
		hits, misses := counter.CacheStats()
		log.Info().Int("hits", hits).Int("misses", misses).Msg("Cache statistics")
	}
	return exitOK
}

func loadConfig(dir string) (*config.Config, error) {
	if dir == "" {
		return config.Load()
	}
	return config.Load(dir)
}

func setupLogging(w io.Writer, cfg *config.Config) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(cfg.Development.Level()).
		With().Timestamp().Logger()
}

// applyFlags lays the command line over the loaded configuration.
func applyFlags(cfg *config.Config, opts *options) *config.Config {
	b := config.From(cfg).WithPerftWorkers(opts.workers)
	if opts.maxDepth > 0 {
		b.WithMaxDepth(opts.maxDepth)
	}
	if opts.cacheSize >= 0 {
		b.WithCacheSize(opts.cacheSize)
	}
	if opts.verbose {
		b.WithDebug(true)
	}
	return b.Build()
}

func newCounter(cfg *config.Config, cache bool) *perft.Counter {
	counterOpts := []perft.Option{perft.WithWorkers(cfg.Perft.Workers)}
	if cache {
		counterOpts = append(counterOpts, perft.WithCache(cfg.Perft.CacheSize))
	}
	return perft.NewCounter(counterOpts...)
}

// startPosition builds the -board position (the standard one by default)
// and plays -moves on it.
func startPosition(opts *options) (*engine.Position, error) {
	var pos *engine.Position
	if len(opts.board) > 0 {
		side, err := game.ParseSide(opts.side)
		if err != nil {
			return nil, err
		}
		pos, err = engine.FromDiagram(opts.board, side, opts.enPassant)
		if err != nil {
			return nil, err
		}
	}

	session := game.NewSession("perft", pos)
	for _, text := range opts.moves {
		if _, err := session.Move(text); err != nil {
			return nil, err
		}
	}
	return session.Position(), nil
}

func printResult(w io.Writer, res perft.Result, divide bool) {
	if divide {
		for _, mc := range res.Moves {
			fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes)
		}
		fmt.Fprintf(w, "\nTotal: %d\n", res.Nodes)
	}
	fmt.Fprintf(w, "Depth %d \tNodes %d \tTime %s \tNPS %.0f\n",
		res.Depth, res.Nodes, res.Elapsed.Round(time.Millisecond), res.NodesPerSecond())
}

func runSuite(ctx context.Context, w io.Writer, counter *perft.Counter, filename string, maxDepth int) int {
	suite, err := perft.Load(filename)
	if err != nil {
		log.Error().Err(err).Str("suite", filename).Msg("Failed to load suite")
		return exitRuntime
	}

	failed := 0
	for _, o := range suite.Run(ctx, counter, maxDepth) {
		switch {
		case o.Err != nil:
			failed++
			fmt.Fprintf(w, "FAIL %-20s %v\n", o.Case, o.Err)
		case !o.Passed():
			failed++
			fmt.Fprintf(w, "FAIL %-20s depth %d: want %d, got %d\n", o.Case, o.Depth, o.Want, o.Got)
			if o.Diff != "" {
				fmt.Fprintf(w, "%s\n", o.Diff)
			}
		default:
			fmt.Fprintf(w, "ok   %-20s depth %d: %d\n", o.Case, o.Depth, o.Got)
		}
	}

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Str("suite", suite.Filename()).Msg("Suite interrupted")
		return exitRuntime
	}

	log.Info().Str("suite", suite.Filename()).Int("cases", len(suite.Cases)).Int("failed", failed).Msg("Suite finished")
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}
