package rpcclient

import (
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

const (
	// PendingDigest is the sentinel returned by the state-changing
	// convenience operations below. They only build an unsigned transaction;
	// the real digest exists only after an external wallet signs and submits
	// the bytes, so callers holding this value know signing is still ahead.
	PendingDigest = "pending-signature"

	// DefaultGasBudget is the provisional budget used to build a transaction
	// whose real cost is about to be estimated via dry run.
	DefaultGasBudget = 10_000_000
)

// PendingTransaction couples the sentinel digest with the unsigned bytes a
// wallet needs to finish the job.
type PendingTransaction struct {
	// Digest is always PendingDigest.
	Digest string
	// TxBytes is the BCS-serialized unsigned transaction.
	TxBytes string
	// GasBudget is the budget the transaction was finally built with, either
	// the caller's or the dry-run estimate.
	GasBudget uint64
}

// buildWithBudget runs the builder with the caller's budget, or, when the
// caller passed zero, builds provisionally, estimates the real cost with a
// dry run (computation plus storage cost) and rebuilds with the estimate.
func (c *Client) buildWithBudget(gasBudget uint64, build func(budget uint64) (*result.TransactionBytes, error)) (*PendingTransaction, error) {
	if gasBudget == 0 {
		provisional, err := build(DefaultGasBudget)
		if err != nil {
			return nil, err
		}
		gasBudget, err = c.EstimateGasBudget(provisional.TxBytes)
		if err != nil {
			return nil, err
		}
	}
	tx, err := build(gasBudget)
	if err != nil {
		return nil, err
	}
	return &PendingTransaction{
		Digest:    PendingDigest,
		TxBytes:   tx.TxBytes,
		GasBudget: gasBudget,
	}, nil
}

// Transfer prepares an unsigned transaction sending amount SUI from the given
// coin object to the recipient. A zero gasBudget triggers dry-run estimation.
func (c *Client) Transfer(signer string, suiObjectID string, recipient string, amount uint64, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.TransferSui(signer, suiObjectID, budget, recipient, amount)
	})
}

// TransferAsset prepares an unsigned transaction sending an arbitrary object
// (an NFT, a coin of any type) to the recipient.
func (c *Client) TransferAsset(signer string, objectID string, recipient string, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.TransferObject(signer, objectID, "", budget, recipient)
	})
}

// Mint prepares an unsigned Move call minting a token or NFT through the
// given package's entry function. Arguments are forwarded positionally to
// the Move function.
func (c *Client) Mint(signer string, packageID string, module string, function string, typeArgs []string, args []any, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.MoveCall(signer, packageID, module, function, typeArgs, args, "", budget)
	})
}

// Split prepares an unsigned transaction splitting a coin object into parts
// with the given amounts.
func (c *Client) Split(signer string, coinObjectID string, splitAmounts []uint64, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.SplitCoin(signer, coinObjectID, splitAmounts, "", budget)
	})
}

// Merge prepares an unsigned transaction merging coinToMerge into
// primaryCoin.
func (c *Client) Merge(signer string, primaryCoin string, coinToMerge string, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.MergeCoins(signer, primaryCoin, coinToMerge, "", budget)
	})
}

// Stake prepares an unsigned transaction delegating amount SUI from the
// coins to a validator.
func (c *Client) Stake(signer string, coins []string, amount uint64, validator string, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.RequestAddStake(signer, coins, amount, validator, "", budget)
	})
}

// WithdrawStake prepares an unsigned transaction withdrawing a delegated
// stake by its staked SUI object ID.
func (c *Client) WithdrawStake(signer string, stakedSuiID string, gasBudget uint64) (*PendingTransaction, error) {
	return c.buildWithBudget(gasBudget, func(budget uint64) (*result.TransactionBytes, error) {
		return c.RequestWithdrawStake(signer, stakedSuiID, "", budget)
	})
}
