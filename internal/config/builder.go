package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// From starts a builder from a copy of cfg, typically the loaded file
// configuration that command line flags are laid over.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithServer sets the listen host and port.
func (b *ConfigBuilder) WithServer(host string, port int) *ConfigBuilder {
	b.cfg.Server.Host = host
	b.cfg.Server.Port = port
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Development.LogLevel = level
	return b
}

// WithDebug enables debug logging.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.cfg.Development.Debug = enabled
	return b
}

// WithPerftWorkers sets the number of perft workers. Values below 1 are
// ignored.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	if n >= 1 {
		b.cfg.Perft.Workers = n
	}
	return b
}

// WithMaxDepth sets the deepest perft run allowed.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.MaxDepth = depth
	return b
}

// WithCacheSize sets the transposition table capacity (0 = unlimited).
func (b *ConfigBuilder) WithCacheSize(entries int) *ConfigBuilder {
	b.cfg.Perft.CacheSize = entries
	return b
}

// WithMaxGames sets the game store limit (0 = unlimited).
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Games.MaxGames = n
	return b
}
