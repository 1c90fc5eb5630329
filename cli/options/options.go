/*
Package options contains a set of common CLI options and helper functions to
use them.
*/
package options

import (
	"context"
	"time"

	"github.com/suinet-dev/sui-go/pkg/config"
	"github.com/suinet-dev/sui-go/pkg/rpcclient"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// DefaultTimeout is the default timeout used for RPC requests.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is a long flag name for an RPC endpoint. It can be used to
// check for flag presence in the context.
const RPCEndpointFlag = "rpc-endpoint"

// RPC is a set of flags used for RPC connections (endpoint and timeout).
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC node address (overrides network configuration and " + config.EndpointEnv + ")",
	},
	cli.DurationFlag{
		Name:  "timeout, s",
		Value: DefaultTimeout,
		Usage: "Timeout for the operation",
	},
}

// Network is a set of flags for choosing the network to operate on.
var Network = []cli.Flag{
	cli.BoolFlag{Name: "mainnet, m", Usage: "use mainnet network configuration"},
	cli.BoolFlag{Name: "testnet, t", Usage: "use testnet network configuration"},
	cli.BoolFlag{Name: "devnet, d", Usage: "use devnet network configuration (default)"},
}

// Config is a flag for commands that use per-network configuration files.
var Config = cli.StringFlag{
	Name:  "config-path",
	Usage: "path to directory with per-network configuration files",
}

// Debug is a flag enabling debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug",
	Usage: "enable debug logging",
}

// GetNetwork examines Context's flags and returns the network name. It
// defaults to devnet if no flags are given.
func GetNetwork(ctx *cli.Context) string {
	switch {
	case ctx.Bool("mainnet"):
		return "mainnet"
	case ctx.Bool("testnet"):
		return "testnet"
	default:
		return "devnet"
	}
}

// GetEndpoint resolves the RPC endpoint for the command: the --rpc-endpoint
// flag wins, then the per-network config file (with its own environment
// override), then the documented default.
func GetEndpoint(ctx *cli.Context) string {
	if addr := ctx.String(RPCEndpointFlag); addr != "" {
		return addr
	}
	path := ctx.String("config-path")
	if path == "" {
		path = config.DefaultConfigPath
	}
	cfg, err := config.Load(path, GetNetwork(ctx))
	if err != nil {
		// A missing config file is fine, the defaults still apply.
		cfg = config.Config{}
	}
	return cfg.ResolveEndpoint()
}

// GetTimeoutContext returns a context with the flag-provided timeout applied.
func GetTimeoutContext(ctx *cli.Context) (context.Context, context.CancelFunc) {
	timeout := ctx.Duration("timeout")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// GetLogger returns a console logger for the command, verbose when --debug is
// on.
func GetLogger(ctx *cli.Context) (*zap.Logger, error) {
	if ctx.Bool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// GetRPCClient returns a Client instance using the RPC-related flags of the
// given command context.
func GetRPCClient(gctx context.Context, ctx *cli.Context) (*rpcclient.Client, cli.ExitCoder) {
	logger, err := GetLogger(ctx)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	c, err := rpcclient.New(gctx, GetEndpoint(ctx), rpcclient.Options{
		RequestTimeout: ctx.Duration("timeout"),
		Logger:         logger,
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}
