package rpcclient

import (
	"encoding/json"
	"strconv"

	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

// TransactionBlockOptions selects which parts of a transaction block the node
// should include in its answers.
type TransactionBlockOptions struct {
	ShowInput          bool `json:"showInput,omitempty"`
	ShowRawInput       bool `json:"showRawInput,omitempty"`
	ShowEffects        bool `json:"showEffects,omitempty"`
	ShowEvents         bool `json:"showEvents,omitempty"`
	ShowObjectChanges  bool `json:"showObjectChanges,omitempty"`
	ShowBalanceChanges bool `json:"showBalanceChanges,omitempty"`
}

// TransactionBlockQuery filters suix_queryTransactionBlocks listings.
type TransactionBlockQuery struct {
	Filter  json.RawMessage          `json:"filter,omitempty"`
	Options *TransactionBlockOptions `json:"options,omitempty"`
}

// GetTransactionBlock returns the transaction block with the given digest.
func (c *Client) GetTransactionBlock(digest string, opts *TransactionBlockOptions) (*result.TransactionBlock, error) {
	var resp result.TransactionBlock
	if err := c.performRequest("sui_getTransactionBlock", []any{digest, opts}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MultiGetTransactionBlocks returns multiple transaction blocks in one call,
// in the same order as the requested digests.
func (c *Client) MultiGetTransactionBlocks(digests []string, opts *TransactionBlockOptions) ([]result.TransactionBlock, error) {
	var resp []result.TransactionBlock
	if err := c.performRequest("sui_multiGetTransactionBlocks", []any{digests, opts}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// QueryTransactionBlocks returns a page of transaction blocks matching the
// query via suix_queryTransactionBlocks.
func (c *Client) QueryTransactionBlocks(query *TransactionBlockQuery, cursor string, limit uint, descending bool) (*result.TransactionBlocksPage, error) {
	var resp result.TransactionBlocksPage
	params := []any{query, orNull(cursor), orNullUint(limit), descending}
	if err := c.performRequest("suix_queryTransactionBlocks", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTotalTransactionBlocks returns the total number of transaction blocks
// the node knows about.
func (c *Client) GetTotalTransactionBlocks() (uint64, error) {
	var resp string
	if err := c.performRequest("sui_getTotalTransactionBlocks", nil, &resp); err != nil {
		return 0, err
	}
	total, err := strconv.ParseUint(resp, 10, 64)
	if err != nil {
		return 0, suirpc.NewMissingFieldError("sui_getTotalTransactionBlocks", "result")
	}
	return total, nil
}

// GetReferenceGasPrice returns the reference gas price of the current epoch.
func (c *Client) GetReferenceGasPrice() (uint64, error) {
	var resp string
	if err := c.performRequest("suix_getReferenceGasPrice", nil, &resp); err != nil {
		return 0, err
	}
	price, err := strconv.ParseUint(resp, 10, 64)
	if err != nil {
		return 0, suirpc.NewMissingFieldError("suix_getReferenceGasPrice", "result")
	}
	return price, nil
}

// GetChainIdentifier returns the first four bytes of the genesis checkpoint
// digest identifying the chain the node serves.
func (c *Client) GetChainIdentifier() (string, error) {
	var resp string
	if err := c.performRequest("sui_getChainIdentifier", nil, &resp); err != nil {
		return "", err
	}
	return resp, nil
}

// DryRunTransactionBlock executes the BCS-serialized transaction on the node
// without committing any effects via sui_dryRunTransactionBlock.
func (c *Client) DryRunTransactionBlock(txBytes string) (*result.DryRun, error) {
	var resp result.DryRun
	if err := c.performRequest("sui_dryRunTransactionBlock", []any{txBytes}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DevInspectTransactionBlock runs the transaction in dev-inspect mode, which
// allows arbitrary return values and needs no gas objects.
func (c *Client) DevInspectTransactionBlock(sender string, txBytes string, gasPrice uint64, epoch string) (*result.DevInspect, error) {
	var resp result.DevInspect
	params := []any{sender, txBytes, orNullUint(uint(gasPrice)), orNull(epoch)}
	if err := c.performRequest("sui_devInspectTransactionBlock", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExecuteTransactionBlock submits an already-signed transaction via
// sui_executeTransactionBlock. Signing is the wallet's job, this client only
// forwards the blob and its signatures. The answer must carry a digest,
// otherwise a MissingFieldError is returned.
func (c *Client) ExecuteTransactionBlock(txBytes string, signatures []string, opts *TransactionBlockOptions, requestType string) (*result.TransactionBlock, error) {
	var resp result.TransactionBlock
	params := []any{txBytes, signatures, opts, orNull(requestType)}
	if err := c.performRequest("sui_executeTransactionBlock", params, &resp); err != nil {
		return nil, err
	}
	if resp.Digest == "" {
		return nil, suirpc.NewMissingFieldError("sui_executeTransactionBlock", "digest")
	}
	return &resp, nil
}

// EstimateGasBudget dry-runs the transaction and returns its computation plus
// storage cost, the budget a caller should set when rebuilding it for real.
// The dry-run effects must carry both costs, a MissingFieldError is returned
// when either is absent.
func (c *Client) EstimateGasBudget(txBytes string) (uint64, error) {
	dr, err := c.DryRunTransactionBlock(txBytes)
	if err != nil {
		return 0, err
	}
	if dr.Effects == nil || dr.Effects.GasUsed == nil {
		return 0, suirpc.NewMissingFieldError("sui_dryRunTransactionBlock", "gasUsed")
	}
	gas := dr.Effects.GasUsed
	computation, err := strconv.ParseUint(gas.ComputationCost, 10, 64)
	if err != nil {
		return 0, suirpc.NewMissingFieldError("sui_dryRunTransactionBlock", "gasUsed.computationCost")
	}
	storage, err := strconv.ParseUint(gas.StorageCost, 10, 64)
	if err != nil {
		return 0, suirpc.NewMissingFieldError("sui_dryRunTransactionBlock", "gasUsed.storageCost")
	}
	return computation + storage, nil
}
