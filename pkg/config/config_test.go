package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunfmin/mcp-go-arith/pkg/arith"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arith.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MCP_DEBUG", "")
	t.Setenv("MCP_ARITH_OVERFLOW", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("MCP_DEBUG", "")
	t.Setenv("MCP_ARITH_OVERFLOW", "")

	path := writeConfig(t, `
name = "calc"
overflow = "saturate"

[log]
debug = true
file = "/tmp/arith.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "calc", cfg.Name)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "/tmp/arith.log", cfg.Logger().File)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, arith.PolicySaturate, p)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MCP_DEBUG", "1")
	t.Setenv("MCP_ARITH_OVERFLOW", "fail")

	cfg, err := Load(writeConfig(t, `overflow = "wrap"`))
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "fail", cfg.Overflow)
	assert.Equal(t, DefaultName, cfg.Name)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("MCP_ARITH_OVERFLOW", "")

	_, err := Load(writeConfig(t, `overflow = "clamp"`))
	require.Error(t, err)
	assert.ErrorIs(t, err, arith.ErrUnknownPolicy)

	_, err = Load(writeConfig(t, `name = `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("MCP_DEBUG", "")
	t.Setenv("MCP_ARITH_OVERFLOW", "")

	path := filepath.Join(t.TempDir(), "arith.toml")
	want := Config{Name: "calc", Overflow: "fail", Log: LogConfig{File: "x.log"}}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
