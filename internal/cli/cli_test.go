package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicko7947/claimflow"
	"github.com/sicko7947/claimflow/identity"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cfgFile = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	assert.Equal(t, "claimd "+version+"\n", out)
}

func TestIdentityNewCommand(t *testing.T) {
	out := runCommand(t, "identity", "new", "--prefix", "clmt")

	m := regexp.MustCompile(`identity:\s+(\S+)`).FindStringSubmatch(out)
	require.Len(t, m, 2)

	id, err := identity.NewBase58Validator("clmt").ValidateIdentity(m[1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id.String(), "clmt"))
	assert.Regexp(t, `private_key: [0-9a-f]{64}\n`, out)
}

func TestConfigShowCommand(t *testing.T) {
	out := runCommand(t, "config", "show")
	assert.Contains(t, out, "backend: memory")
	assert.Contains(t, out, "rate_limit:")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(claimflow.LogConfig{Level: "warn"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"service":"claimd"`)

	fallback := newLogger(claimflow.LogConfig{Level: "loud"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, fallback.GetLevel())
}
