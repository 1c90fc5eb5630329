package rpcclient

import (
	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

// Builders in this file wrap the node's unsafe_ namespace: each call asks the
// node to assemble BCS-serialized unsigned transaction bytes from positional
// arguments. Nothing is signed or submitted here. Amounts and gas budgets are
// u64 values, rendered as decimal strings on the wire; an empty gasObject
// lets the node pick a gas coin itself.

func (c *Client) buildTransaction(method string, params []any) (*result.TransactionBytes, error) {
	var resp result.TransactionBytes
	if err := c.performRequest(method, params, &resp); err != nil {
		return nil, err
	}
	if resp.TxBytes == "" {
		return nil, suirpc.NewMissingFieldError(method, "txBytes")
	}
	return &resp, nil
}

// MoveCall builds a transaction calling the given Move function, addressed
// by package, module and function name, with explicit type arguments and
// call arguments.
func (c *Client) MoveCall(signer string, packageID string, module string, function string, typeArgs []string, args []any, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	if typeArgs == nil {
		typeArgs = []string{}
	}
	if args == nil {
		args = []any{}
	}
	return c.buildTransaction("unsafe_moveCall",
		[]any{signer, packageID, module, function, typeArgs, args, orNull(gasObject), uintString(gasBudget)})
}

// TransferObject builds a transaction transferring the given object to the
// recipient.
func (c *Client) TransferObject(signer string, objectID string, gasObject string, gasBudget uint64, recipient string) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_transferObject",
		[]any{signer, objectID, orNull(gasObject), uintString(gasBudget), recipient})
}

// TransferSui builds a transaction sending the given amount of SUI from one
// coin object to the recipient, paying gas from the same coin.
func (c *Client) TransferSui(signer string, suiObjectID string, gasBudget uint64, recipient string, amount uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_transferSui",
		[]any{signer, suiObjectID, uintString(gasBudget), recipient, uintString(amount)})
}

// Pay builds a transaction sending amounts of arbitrary coins to recipients,
// matched by position.
func (c *Client) Pay(signer string, inputCoins []string, recipients []string, amounts []uint64, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_pay",
		[]any{signer, inputCoins, recipients, uintStrings(amounts), orNull(gasObject), uintString(gasBudget)})
}

// PaySui builds a transaction sending amounts of SUI to recipients, matched
// by position, paying gas from the input coins.
func (c *Client) PaySui(signer string, inputCoins []string, recipients []string, amounts []uint64, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_paySui",
		[]any{signer, inputCoins, recipients, uintStrings(amounts), uintString(gasBudget)})
}

// PayAllSui builds a transaction sending all SUI from the input coins to a
// single recipient.
func (c *Client) PayAllSui(signer string, inputCoins []string, recipient string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_payAllSui",
		[]any{signer, inputCoins, recipient, uintString(gasBudget)})
}

// SplitCoin builds a transaction splitting a coin object into several coins
// with the given amounts.
func (c *Client) SplitCoin(signer string, coinObjectID string, splitAmounts []uint64, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_splitCoin",
		[]any{signer, coinObjectID, uintStrings(splitAmounts), orNull(gasObject), uintString(gasBudget)})
}

// MergeCoins builds a transaction merging coinToMerge into primaryCoin.
func (c *Client) MergeCoins(signer string, primaryCoin string, coinToMerge string, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_mergeCoins",
		[]any{signer, primaryCoin, coinToMerge, orNull(gasObject), uintString(gasBudget)})
}

// Publish builds a transaction publishing a compiled Move package. Modules
// are base64-encoded compiled bytecode, dependencies are the IDs of packages
// the new one links against.
func (c *Client) Publish(sender string, compiledModules []string, dependencies []string, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_publish",
		[]any{sender, compiledModules, dependencies, orNull(gasObject), uintString(gasBudget)})
}

// RequestAddStake builds a transaction delegating the given amount of SUI
// from the coins to a validator.
func (c *Client) RequestAddStake(signer string, coins []string, amount uint64, validator string, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_requestAddStake",
		[]any{signer, coins, uintString(amount), validator, orNull(gasObject), uintString(gasBudget)})
}

// RequestWithdrawStake builds a transaction withdrawing a delegated stake by
// its staked SUI object ID.
func (c *Client) RequestWithdrawStake(signer string, stakedSuiID string, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_requestWithdrawStake",
		[]any{signer, stakedSuiID, orNull(gasObject), uintString(gasBudget)})
}

// BatchTransaction builds a single transaction out of several transaction
// requests (move calls and object transfers in the node's RPCTransaction
// shape).
func (c *Client) BatchTransaction(signer string, txRequests []any, gasObject string, gasBudget uint64) (*result.TransactionBytes, error) {
	return c.buildTransaction("unsafe_batchTransaction",
		[]any{signer, txRequests, orNull(gasObject), uintString(gasBudget)})
}
