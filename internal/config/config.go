// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kopigraph/kopigraph/internal/common"
)

// Graph holds Neo4j connection settings.
type Graph struct {
	URI      string
	User     string
	Password string
}

// LLM holds translation provider settings.
type LLM struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	RateLimit   int
	CacheTTL    time.Duration
}

// Server holds HTTP front end settings.
type Server struct {
	Addr string
}

// Config is the resolved application configuration.
type Config struct {
	Graph        Graph
	LLM          LLM
	Server       Server
	DatabasePath string
}

// Load resolves configuration from viper (config file plus KOPI_* env vars).
// Defaults mirror a local single-node setup.
func Load() Config {
	v := viper.GetViper()

	// Nested keys map to underscored env vars: graph.password is
	// KOPI_GRAPH_PASSWORD.
	v.SetEnvPrefix("KOPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("graph.uri", "bolt://localhost:7687")
	v.SetDefault("graph.user", "neo4j")
	v.SetDefault("llm.provider", "openrouter")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.rate_limit", 60)
	v.SetDefault("llm.cache_ttl", 15*time.Minute)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", "~/.local/share/kopi/kopi.db")

	return Config{
		Graph: Graph{
			URI:      v.GetString("graph.uri"),
			User:     v.GetString("graph.user"),
			Password: v.GetString("graph.password"),
		},
		LLM: LLM{
			Provider:    v.GetString("llm.provider"),
			APIKey:      v.GetString("llm.api_key"),
			Model:       v.GetString("llm.model"),
			Temperature: v.GetFloat64("llm.temperature"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			RateLimit:   v.GetInt("llm.rate_limit"),
			CacheTTL:    v.GetDuration("llm.cache_ttl"),
		},
		Server: Server{
			Addr: v.GetString("server.addr"),
		},
		DatabasePath: ExpandPath(v.GetString("database.path")),
	}
}

// ValidateGraph checks the settings required to reach Neo4j.
func (c Config) ValidateGraph() error {
	if c.Graph.URI == "" {
		return fmt.Errorf("%w: graph.uri is not set", common.ErrMissingConfig)
	}
	if c.Graph.Password == "" {
		return fmt.Errorf("%w: graph.password is not set", common.ErrMissingConfig)
	}
	return nil
}

// ValidateLLM checks the settings required to call the translation provider.
func (c Config) ValidateLLM() error {
	if c.LLM.Provider == "" {
		return fmt.Errorf("%w: llm.provider is not set", common.ErrMissingConfig)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w: llm.api_key is not set", common.ErrMissingConfig)
	}
	switch c.LLM.Provider {
	case "openrouter", "gemini":
	default:
		return fmt.Errorf("%w: unsupported llm.provider %q", common.ErrInvalidConfig, c.LLM.Provider)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
