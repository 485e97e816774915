package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopigraph/kopigraph/internal/common"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()

	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "neo4j", cfg.Graph.User)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 60, cfg.LLM.RateLimit)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("graph.uri", "bolt://graph:7687")
	viper.Set("graph.password", "secret")
	viper.Set("llm.provider", "gemini")
	viper.Set("llm.api_key", "key")

	cfg := Load()

	assert.Equal(t, "bolt://graph:7687", cfg.Graph.URI)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	require.NoError(t, cfg.ValidateGraph())
	require.NoError(t, cfg.ValidateLLM())
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("KOPI_GRAPH_PASSWORD", "secret-from-env")
	t.Setenv("KOPI_LLM_API_KEY", "key-from-env")
	t.Setenv("KOPI_SERVER_ADDR", ":9999")

	cfg := Load()

	assert.Equal(t, "secret-from-env", cfg.Graph.Password)
	assert.Equal(t, "key-from-env", cfg.LLM.APIKey)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	require.NoError(t, cfg.ValidateGraph())
	require.NoError(t, cfg.ValidateLLM())
}

func TestValidate_MissingKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()

	err := cfg.ValidateGraph()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	err = cfg.ValidateLLM()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestValidateLLM_UnsupportedProvider(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("llm.provider", "carrier-pigeon")
	viper.Set("llm.api_key", "key")

	err := Load().ValidateLLM()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("KOPI_TEST_DIR", "/tmp/kopi")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "/var/lib/kopi.db", "/var/lib/kopi.db"},
		{"tilde only", "~", home},
		{"tilde prefix", "~/data/kopi.db", filepath.Join(home, "data/kopi.db")},
		{"env var", "$KOPI_TEST_DIR/kopi.db", "/tmp/kopi/kopi.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
