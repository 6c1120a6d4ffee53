// Package config loads settings for the rules service and the perft tool.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Development DevelopmentConfig `mapstructure:"development"`
	Perft       PerftConfig       `mapstructure:"perft"`
	Games       GamesConfig       `mapstructure:"games"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DevelopmentConfig holds logging settings.
type DevelopmentConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// PerftConfig holds node counting settings.
type PerftConfig struct {
	Workers   int `mapstructure:"workers"`
	MaxDepth  int `mapstructure:"max_depth"`
	CacheSize int `mapstructure:"cache_size"` // 0 = unlimited
}

// GamesConfig limits the in-memory game store.
type GamesConfig struct {
	MaxGames int `mapstructure:"max_games"` // 0 = unlimited
}

// NewServerConfig returns the default listener settings.
func NewServerConfig() ServerConfig {
	return ServerConfig{Host: "localhost", Port: 8080}
}

// NewDevelopmentConfig returns the default logging settings.
func NewDevelopmentConfig() DevelopmentConfig {
	return DevelopmentConfig{LogLevel: "info"}
}

// NewPerftConfig returns the default perft settings: one worker per CPU.
func NewPerftConfig() PerftConfig {
	return PerftConfig{Workers: runtime.NumCPU(), MaxDepth: 6}
}

// NewGamesConfig returns the default store limits.
func NewGamesConfig() GamesConfig {
	return GamesConfig{MaxGames: 1000}
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:      NewServerConfig(),
		Development: NewDevelopmentConfig(),
		Perft:       NewPerftConfig(),
		Games:       NewGamesConfig(),
	}
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level returns debug when Debug is set, otherwise the level named by
// LogLevel, falling back to info.
func (c DevelopmentConfig) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Load reads config.yaml from the given directories (default "." and
// "./config"), then environment variables prefixed CHESSRULES_ such as
// CHESSRULES_SERVER_PORT. A missing file leaves the defaults in place.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("CHESSRULES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, NewConfig())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so environment overrides apply even
// without a config file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("development.debug", d.Development.Debug)
	v.SetDefault("development.log_level", d.Development.LogLevel)
	v.SetDefault("perft.workers", d.Perft.Workers)
	v.SetDefault("perft.max_depth", d.Perft.MaxDepth)
	v.SetDefault("perft.cache_size", d.Perft.CacheSize)
	v.SetDefault("games.max_games", d.Games.MaxGames)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port < 0 || c.Server.Port > 65535:
		return errors.Wrapf(errors.ErrInvalidConfig, "server.port %d", c.Server.Port)
	case c.Perft.Workers < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.workers %d", c.Perft.Workers)
	case c.Perft.MaxDepth < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.max_depth %d", c.Perft.MaxDepth)
	case c.Perft.CacheSize < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.cache_size %d", c.Perft.CacheSize)
	case c.Games.MaxGames < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "games.max_games %d", c.Games.MaxGames)
	}
	return nil
}
