package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunfmin/mcp-go-arith/pkg/arith"
	"github.com/sunfmin/mcp-go-arith/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MCP_DEBUG", "")
	t.Setenv("MCP_ARITH_OVERFLOW", "")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test-version")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "add", "2", "3"}, "5"},
		{[]string{"calc", "subtract", "2", "3"}, "-1"},
		{[]string{"calc", "*", "4", "5"}, "20"},
		{[]string{"calc", "/", "10", "2"}, "5"},
		{[]string{"calc", "--", "div", "-7", "2"}, "-3"},
		{[]string{"calc", "add", "9223372036854775807", "1"}, "-9223372036854775808"},
		{[]string{"--overflow", "saturate", "calc", "add", "9223372036854775807", "1"}, "9223372036854775807"},
	}

	for _, tc := range cases {
		out, err := run(t, tc.args...)
		require.NoError(t, err, strings.Join(tc.args, " "))
		assert.Equal(t, tc.want, strings.TrimSpace(out), strings.Join(tc.args, " "))
	}
}

func TestCalcErrors(t *testing.T) {
	_, err := run(t, "calc", "divide", "1", "0")
	assert.True(t, arith.IsDivisionByZero(err))

	_, err = run(t, "--overflow", "fail", "calc", "mul", "9223372036854775807", "2")
	assert.True(t, arith.IsOverflow(err))

	_, err = run(t, "calc", "mod", "1", "2")
	assert.ErrorIs(t, err, arith.ErrUnknownOp)

	_, err = run(t, "calc", "add", "one", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "one"`)

	_, err = run(t, "--overflow", "clamp", "calc", "add", "1", "2")
	assert.ErrorIs(t, err, arith.ErrUnknownPolicy)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "6")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "152.399") || strings.HasPrefix(out, "152.4"), out)
	assert.True(t, strings.HasSuffix(out, " mm\n"), out)

	_, err = run(t, "convert", "six")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test-version\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.toml")

	_, err := run(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	require.NoError(t, os.WriteFile(path, []byte("overflow = \"fail\"\n"), 0o644))
	out, err := run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "overflow = fail")
	assert.Contains(t, out, "name     = "+config.DefaultName)
}
