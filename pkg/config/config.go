/*
Package config handles the client configuration: which full node endpoint to
talk to and with what timeouts. Values come from a per-network YAML file with
an environment variable override, so deployments can repoint a binary without
touching files.
*/
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the version of the client, set at build time.
var Version string

const (
	// DefaultEndpoint is the public Sui development network node used when
	// neither the configuration file nor the environment provide one.
	DefaultEndpoint = "https://fullnode.devnet.sui.io:443"

	// EndpointEnv is the environment variable overriding the configured
	// endpoint. It wins over any file value.
	EndpointEnv = "SUI_RPC_ENDPOINT"

	// DefaultConfigPath is the directory with per-network configuration
	// files.
	DefaultConfigPath = "./config"
)

// Config is the top level struct representing the client config.
type Config struct {
	RPC RPCConfig `yaml:"RPC"`
}

// RPCConfig describes the connection to a Sui full node.
type RPCConfig struct {
	Endpoint       string        `yaml:"Endpoint"`
	DialTimeout    time.Duration `yaml:"DialTimeout"`
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
}

// Load attempts to load the config from the given path for the given network
// (mainnet, testnet or devnet).
func Load(path string, network string) (Config, error) {
	configPath := fmt.Sprintf("%s/sui.%s.yml", path, network)
	return LoadFile(configPath)
}

// LoadFile loads the config from the given file.
func LoadFile(configPath string) (Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Config{}
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return Config{}, fmt.Errorf("problem unmarshaling config YAML data: %w", err)
	}

	return config, nil
}

// ResolveEndpoint returns the endpoint the client should use: the EndpointEnv
// environment variable when set, the file value otherwise, and the public
// development node when the config names none.
func (c Config) ResolveEndpoint() string {
	if env := os.Getenv(EndpointEnv); env != "" {
		return env
	}
	if c.RPC.Endpoint != "" {
		return c.RPC.Endpoint
	}
	return DefaultEndpoint
}
