package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalprint/sdk/fingerprint"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, fingerprint.DefaultAlgorithm, cfg.Hash.Algorithm)
	assert.True(t, cfg.Groups.AppEnabled())
	assert.True(t, cfg.Groups.HardwareEnabled())
	assert.True(t, cfg.Groups.OperatingSystemEnabled())
	assert.True(t, cfg.Groups.IdentifiersEnabled())
	assert.True(t, cfg.Groups.CellularEnabled())
	assert.True(t, cfg.Groups.LocalAuthenticationEnabled())
}

func TestZeroConfigIsValid(t *testing.T) {
	var cfg Config

	require.NoError(t, cfg.Validate())

	h, err := cfg.Hasher()
	require.NoError(t, err)
	assert.Equal(t, fingerprint.AlgorithmSHA256, h.Algorithm())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "signalprint.yaml", `
hash:
  algorithm: sha512
groups:
  cellular: false
  local_authentication: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sha512", cfg.Hash.Algorithm)
	assert.True(t, cfg.Groups.HardwareEnabled())
	assert.False(t, cfg.Groups.CellularEnabled())
	assert.False(t, cfg.Groups.LocalAuthenticationEnabled())
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "signalprint.yaml"), []byte("hash:\n  algorithm: sha1\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sha1", cfg.Hash.Algorithm)
}

func TestLoad_DirectoryWithoutConfig(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_UnknownAlgorithm(t *testing.T) {
	path := writeConfig(t, "signalprint.yaml", "hash:\n  algorithm: md5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "md5")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "signalprint.yaml", "hash: [\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
