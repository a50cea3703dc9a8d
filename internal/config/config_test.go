package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Trials int `env:"BINOMIAL_TEST_TRIALS" envDefault:"16"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 16, cfg.Trials)
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BINOMIAL_TEST_TRIALS", "40")

	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 40, cfg.Trials)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BINOMIAL_TEST_TRIALS", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "parse env:"), "got %v", err)
}

type yamlTestConfig struct {
	N *string `yaml:"n"`
	P *string `yaml:"p"`
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "binomial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	var cfg yamlTestConfig
	require.NoError(t, LoadYAML(writeFile(t, "n: \"32\"\np: \"0.25\"\n"), &cfg))
	require.NotNil(t, cfg.N)
	require.Equal(t, "32", *cfg.N)
	require.Equal(t, "0.25", *cfg.P)
}

func TestLoadYAMLPartialAndEmpty(t *testing.T) {
	t.Parallel()

	var cfg yamlTestConfig
	require.NoError(t, LoadYAML(writeFile(t, "p: \"0.75\"\n"), &cfg))
	require.Nil(t, cfg.N)
	require.Equal(t, "0.75", *cfg.P)

	var empty yamlTestConfig
	require.NoError(t, LoadYAML(writeFile(t, ""), &empty))
	require.Nil(t, empty.N)
	require.Nil(t, empty.P)
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Parallel()

	var cfg yamlTestConfig
	err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = LoadYAML(writeFile(t, "trials: 3\n"), &cfg)
	require.Error(t, err, "unknown keys must be rejected")
	require.Contains(t, err.Error(), "yaml unmarshal")
}
