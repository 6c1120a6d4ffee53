// rulesd serves chess games over HTTP, validating every move with the
// rules engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/web"
)

// serverFlags are command line overrides. Zero values (-1 for maxGames)
// leave the configured setting alone.
type serverFlags struct {
	host     string
	port     int
	maxGames int
	logLevel string
	debug    bool
}

func main() {
	var showHelp bool
	var configDir string
	var overrides serverFlags
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&showHelp, "h", false, "Show help information")
	flag.StringVar(&configDir, "config", "", "Directory holding config.yaml")
	flag.StringVar(&overrides.host, "host", "", "Listen host")
	flag.IntVar(&overrides.port, "port", 0, "Listen port")
	flag.IntVar(&overrides.maxGames, "max-games", -1, "Game store limit (0 = unlimited)")
	flag.StringVar(&overrides.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&overrides.debug, "debug", false, "Debug logging")
	flag.Parse()

	if showHelp {
		showHelpMessage()
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := loadConfig(configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	cfg = applyFlags(cfg, overrides)
	log.Logger = log.Logger.Level(cfg.Development.Level())

	srv := newServer(cfg)

	go func() {
		log.Info().Str("addr", srv.Addr).Int("maxGames", cfg.Games.MaxGames).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func loadConfig(dir string) (*config.Config, error) {
	if dir == "" {
		return config.Load()
	}
	return config.Load(dir)
}

// applyFlags lays the command line overrides over the loaded configuration.
func applyFlags(cfg *config.Config, f serverFlags) *config.Config {
	b := config.From(cfg)
	if f.host != "" || f.port != 0 {
		host, port := cfg.Server.Host, cfg.Server.Port
		if f.host != "" {
			host = f.host
		}
		if f.port != 0 {
			port = f.port
		}
		b.WithServer(host, port)
	}
	if f.maxGames >= 0 {
		b.WithMaxGames(f.maxGames)
	}
	if f.logLevel != "" {
		b.WithLogLevel(f.logLevel)
	}
	if f.debug {
		b.WithDebug(true)
	}
	return b.Build()
}

// newServer wires the game store and API routes into an http.Server.
func newServer(cfg *config.Config) *http.Server {
	store := game.NewStore(cfg.Games.MaxGames)
	router := web.NewRouter(web.NewService(store))

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func showHelpMessage() {
	fmt.Println(`rulesd - chess rules service

USAGE:
    rulesd [OPTIONS]

OPTIONS:
    -h, --help       Show this help message
    -config DIR      Directory holding config.yaml (default: . and ./config)
    -host HOST       Listen host
    -port PORT       Listen port
    -max-games N     Game store limit (0 = unlimited)
    -log-level LVL   Log level (debug, info, warn, error)
    -debug           Debug logging

CONFIGURATION:
    Example config.yaml:
        server:
          host: localhost
          port: 8080
        development:
          debug: false
          log_level: info
        games:
          max_games: 1000

    Every key can be overridden from the environment, e.g.
    CHESSRULES_SERVER_PORT=9000.

API ENDPOINTS:
    GET    /api/health             - Service health check
    POST   /api/games              - Start a game (optional board, side, en_passant)
    GET    /api/games/{id}         - Game state
    DELETE /api/games/{id}         - End and forget a game
    GET    /api/games/{id}/moves   - Legal moves for the side to move
    POST   /api/games/{id}/moves   - Play a move: {"move": "e2e4"}

EXAMPLES:
    curl -X POST http://localhost:8080/api/games
    curl -X POST http://localhost:8080/api/games/<id>/moves -d '{"move": "e2e4"}'`)
}
