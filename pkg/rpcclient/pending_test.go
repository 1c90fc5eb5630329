package rpcclient

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

func TestTransferReturnsPendingDigest(t *testing.T) {
	var params []any
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		require.Equal(t, "unsafe_transferSui", r.Method)
		params = r.Params
		return resultResponse(t, result.TransactionBytes{TxBytes: "AAABBB"}), nil
	})

	tx, err := c.Transfer("0xsender", "0xcoin", "0xrecipient", 12345, 2_000_000)
	require.NoError(t, err)
	require.Equal(t, PendingDigest, tx.Digest)
	require.Equal(t, "AAABBB", tx.TxBytes)
	require.Equal(t, uint64(2_000_000), tx.GasBudget)
	// Amounts and budgets travel as decimal strings.
	require.Equal(t, []any{"0xsender", "0xcoin", "2000000", "0xrecipient", "12345"}, params)
}

func TestTransferEstimatesGasWhenBudgetIsZero(t *testing.T) {
	var (
		methods []string
		budgets []string
	)
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		methods = append(methods, r.Method)
		switch r.Method {
		case "unsafe_transferSui":
			budgets = append(budgets, r.Params[2].(string))
			return resultResponse(t, result.TransactionBytes{TxBytes: "AAABBB"}), nil
		case "sui_dryRunTransactionBlock":
			require.Equal(t, []any{"AAABBB"}, r.Params)
			return resultResponse(t, result.DryRun{
				Effects: &result.TransactionEffects{
					GasUsed: &result.GasCostSummary{
						ComputationCost: "100",
						StorageCost:     "50",
					},
				},
			}), nil
		default:
			t.Fatalf("unexpected method %s", r.Method)
			return nil, nil
		}
	})

	tx, err := c.Transfer("0xsender", "0xcoin", "0xrecipient", 12345, 0)
	require.NoError(t, err)
	require.Equal(t, PendingDigest, tx.Digest)
	require.Equal(t, uint64(150), tx.GasBudget)
	// Provisional build, dry run, final build with the estimate.
	require.Equal(t, []string{"unsafe_transferSui", "sui_dryRunTransactionBlock", "unsafe_transferSui"}, methods)
	require.Equal(t, []string{"10000000", "150"}, budgets)
}

func TestPendingOpsReturnSentinel(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return resultResponse(t, result.TransactionBytes{TxBytes: "AAABBB"}), nil
	})

	for name, op := range map[string]func() (*PendingTransaction, error){
		"mint": func() (*PendingTransaction, error) {
			return c.Mint("0xs", "0xpkg", "token", "mint", nil, []any{"Name", "SYM"}, 1)
		},
		"transfer asset": func() (*PendingTransaction, error) {
			return c.TransferAsset("0xs", "0xobj", "0xr", 1)
		},
		"split": func() (*PendingTransaction, error) {
			return c.Split("0xs", "0xcoin", []uint64{100, 200}, 1)
		},
		"merge": func() (*PendingTransaction, error) {
			return c.Merge("0xs", "0xa", "0xb", 1)
		},
		"stake": func() (*PendingTransaction, error) {
			return c.Stake("0xs", []string{"0xcoin"}, 1000, "0xvalidator", 1)
		},
		"withdraw": func() (*PendingTransaction, error) {
			return c.WithdrawStake("0xs", "0xstake", 1)
		},
	} {
		t.Run(name, func(t *testing.T) {
			tx, err := op()
			require.NoError(t, err)
			require.Equal(t, PendingDigest, tx.Digest)
			require.Equal(t, "AAABBB", tx.TxBytes)
		})
	}
}

func TestBuilderMissingTxBytes(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return resultResponse(t, result.TransactionBytes{}), nil
	})

	_, err := c.MoveCall("0xs", "0xpkg", "token", "mint", nil, nil, "", 1000)
	var mf *suirpc.MissingFieldError
	require.ErrorAs(t, err, &mf)
	require.Equal(t, "txBytes", mf.Field)
}

func TestBuilderErrorStopsPendingOp(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return &suirpc.Response{
			HeaderAndError: suirpc.HeaderAndError{
				Error: suirpc.NewError(-32602, "Invalid params", ""),
			},
		}, nil
	})

	_, err := c.Stake("0xs", []string{"0xcoin"}, 1000, "0xvalidator", 1)
	var pe *suirpc.Error
	require.ErrorAs(t, err, &pe)
}
