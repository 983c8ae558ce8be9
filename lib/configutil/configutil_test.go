package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	ApiKey  string `json:"api_key"`
	Timeout int    `json:"timeout"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "skyblock.json5"),
		[]byte(`{api_key: "base-key", timeout: 30}`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "skyblock.local.json5"),
		[]byte(`{api_key: "local-key"}`),
		0600,
	)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "skyblock.json5"))
	require.NoError(t, err)
	require.Equal(t, "local-key", config.ApiKey)
	require.Equal(t, 30, config.Timeout)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "skyblock.local.json5"),
		[]byte(`{api_key: "local-key"}`),
		0600,
	)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "skyblock.json5"))
	require.NoError(t, err)
	require.Equal(t, "local-key", config.ApiKey)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "skyblock.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
