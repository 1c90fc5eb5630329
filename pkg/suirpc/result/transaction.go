package result

import (
	"encoding/json"
)

// ObjectRef is a reference to a specific version of an object, used for gas
// payment objects among other things.
type ObjectRef struct {
	ObjectID string `json:"objectId"`
	Version  uint64 `json:"version"`
	Digest   string `json:"digest"`
}

// TransactionBytes is the answer of the unsafe_ transaction building methods:
// BCS-serialized unsigned transaction data ready for an external signer.
type TransactionBytes struct {
	TxBytes      string          `json:"txBytes"`
	Gas          []ObjectRef     `json:"gas,omitempty"`
	InputObjects json.RawMessage `json:"inputObjects,omitempty"`
}

// GasCostSummary is the gas breakdown of executed (or dry-run) transaction
// effects. The node encodes the costs as decimal strings.
type GasCostSummary struct {
	ComputationCost         string `json:"computationCost"`
	StorageCost             string `json:"storageCost"`
	StorageRebate           string `json:"storageRebate,omitempty"`
	NonRefundableStorageFee string `json:"nonRefundableStorageFee,omitempty"`
}

// ExecutionStatus is the success/failure status of transaction effects.
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// TransactionEffects is the relevant subset of transaction effects. Fields
// not interpreted by this client are kept raw.
type TransactionEffects struct {
	MessageVersion    string          `json:"messageVersion,omitempty"`
	Status            ExecutionStatus `json:"status"`
	ExecutedEpoch     string          `json:"executedEpoch,omitempty"`
	GasUsed           *GasCostSummary `json:"gasUsed,omitempty"`
	TransactionDigest string          `json:"transactionDigest,omitempty"`
	Created           json.RawMessage `json:"created,omitempty"`
	Mutated           json.RawMessage `json:"mutated,omitempty"`
	Deleted           json.RawMessage `json:"deleted,omitempty"`
	GasObject         json.RawMessage `json:"gasObject,omitempty"`
	Dependencies      []string        `json:"dependencies,omitempty"`
}

// TransactionBlock is the answer of the sui_getTransactionBlock and
// sui_executeTransactionBlock methods.
type TransactionBlock struct {
	Digest         string              `json:"digest"`
	Transaction    json.RawMessage     `json:"transaction,omitempty"`
	RawTransaction string              `json:"rawTransaction,omitempty"`
	Effects        *TransactionEffects `json:"effects,omitempty"`
	Events         json.RawMessage     `json:"events,omitempty"`
	ObjectChanges  json.RawMessage     `json:"objectChanges,omitempty"`
	BalanceChanges json.RawMessage     `json:"balanceChanges,omitempty"`
	TimestampMs    string              `json:"timestampMs,omitempty"`
	Checkpoint     string              `json:"checkpoint,omitempty"`
	Errors         []string            `json:"errors,omitempty"`
}

// TransactionBlocksPage is one page of a paginated transaction listing as
// returned by suix_queryTransactionBlocks.
type TransactionBlocksPage struct {
	Data        []TransactionBlock `json:"data"`
	NextCursor  *string            `json:"nextCursor,omitempty"`
	HasNextPage bool               `json:"hasNextPage"`
}

// DryRun is the answer of the sui_dryRunTransactionBlock method.
type DryRun struct {
	Effects        *TransactionEffects `json:"effects,omitempty"`
	Events         json.RawMessage     `json:"events,omitempty"`
	ObjectChanges  json.RawMessage     `json:"objectChanges,omitempty"`
	BalanceChanges json.RawMessage     `json:"balanceChanges,omitempty"`
	Input          json.RawMessage     `json:"input,omitempty"`
}

// DevInspect is the answer of the sui_devInspectTransactionBlock method.
type DevInspect struct {
	Effects *TransactionEffects `json:"effects,omitempty"`
	Events  json.RawMessage     `json:"events,omitempty"`
	Results json.RawMessage     `json:"results,omitempty"`
	Error   string              `json:"error,omitempty"`
}
