// Package app builds the sui-go command line application.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/suinet-dev/sui-go/cli/query"
	"github.com/suinet-dev/sui-go/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "sui-go\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a sui-go instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "sui-go"
	ctl.Version = config.Version
	ctl.Usage = "Go client for Sui full node JSON-RPC"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	return ctl
}
