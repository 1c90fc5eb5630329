// Package query implements read-only commands against a Sui full node.
package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/suinet-dev/sui-go/cli/options"
	"github.com/urfave/cli"
)

// NewCommands returns the 'query' command.
func NewCommands() []cli.Command {
	queryFlags := append([]cli.Flag{options.Config, options.Debug}, options.RPC...)
	queryFlags = append(queryFlags, options.Network...)
	return []cli.Command{{
		Name:  "query",
		Usage: "query Sui network data",
		Subcommands: []cli.Command{
			{
				Name:      "balance",
				Usage:     "query an address' balance for a coin type (native SUI by default)",
				ArgsUsage: "<address> [coinType]",
				Action:    queryBalance,
				Flags:     queryFlags,
			},
			{
				Name:      "object",
				Usage:     "query an object by ID",
				ArgsUsage: "<objectID>",
				Action:    queryObject,
				Flags:     queryFlags,
			},
			{
				Name:      "tx",
				Usage:     "query a transaction block by digest",
				ArgsUsage: "<digest>",
				Action:    queryTx,
				Flags:     queryFlags,
			},
			{
				Name:      "checkpoint",
				Usage:     "query a checkpoint by sequence number or digest (latest by default)",
				ArgsUsage: "[id]",
				Action:    queryCheckpoint,
				Flags:     queryFlags,
			},
			{
				Name:   "apy",
				Usage:  "query validator APYs for the current epoch",
				Action: queryApy,
				Flags:  queryFlags,
			},
		},
	}}
}

func queryBalance(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("address is missing", 1)
	}
	addr := args[0]
	coinType := "0x2::sui::SUI"
	if len(args) > 1 {
		coinType = args[1]
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	bal, err := c.GetBalance(addr, coinType)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	scaled, err := c.Balance(addr, coinType)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Coin type:\t%s\n", bal.CoinType)
	_, _ = fmt.Fprintf(w, "Coin objects:\t%d\n", bal.CoinObjectCount)
	_, _ = fmt.Fprintf(w, "Raw balance:\t%s\n", bal.TotalBalance)
	_, _ = fmt.Fprintf(w, "Balance:\t%s\n", strconv.FormatFloat(scaled, 'f', -1, 64))
	return w.Flush()
}

func queryObject(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("object ID is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	obj, err := c.GetObject(args[0], nil)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if obj.Error != nil {
		return cli.NewExitError(fmt.Sprintf("object not shown: %s", obj.Error.Code), 1)
	}
	return dumpJSON(ctx, obj.Data)
}

func queryTx(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return cli.NewExitError("transaction digest is missing", 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	tx, err := c.GetTransactionBlock(args[0], nil)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, tx)
}

func queryCheckpoint(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	id := ""
	if args := ctx.Args(); len(args) > 0 {
		id = args[0]
	} else {
		seq, err := c.GetLatestCheckpointSequenceNumber()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		id = strconv.FormatUint(seq, 10)
	}

	cp, err := c.GetCheckpoint(id)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return dumpJSON(ctx, cp)
}

func queryApy(ctx *cli.Context) error {
	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()

	c, exitErr := options.GetRPCClient(gctx, ctx)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	apys, err := c.GetValidatorsApy()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 2, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Epoch:\t%s\n", apys.Epoch)
	for _, a := range apys.Apys {
		_, _ = fmt.Fprintf(w, "%s\t%.4f\n", a.Address, a.Apy)
	}
	return w.Flush()
}

func dumpJSON(ctx *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	_, _ = fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
