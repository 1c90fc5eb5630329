package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, network string, data string) {
	t.Helper()
	path := filepath.Join(dir, "sui."+network+".yml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "testnet", `
RPC:
  Endpoint: https://fullnode.testnet.sui.io:443
  DialTimeout: 3s
  RequestTimeout: 5s
`)

	cfg, err := Load(dir, "testnet")
	require.NoError(t, err)
	require.Equal(t, "https://fullnode.testnet.sui.io:443", cfg.RPC.Endpoint)
	require.Equal(t, 3*time.Second, cfg.RPC.DialTimeout)
	require.Equal(t, 5*time.Second, cfg.RPC.RequestTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "mainnet")
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "devnet", "RPC: [not a mapping")

	_, err := Load(dir, "devnet")
	require.Error(t, err)
}

func TestResolveEndpoint(t *testing.T) {
	var cfg Config
	require.Equal(t, DefaultEndpoint, cfg.ResolveEndpoint())

	cfg.RPC.Endpoint = "https://fullnode.mainnet.sui.io:443"
	require.Equal(t, "https://fullnode.mainnet.sui.io:443", cfg.ResolveEndpoint())

	t.Setenv(EndpointEnv, "http://localhost:9000")
	require.Equal(t, "http://localhost:9000", cfg.ResolveEndpoint())
}
