package result

import (
	"encoding/json"
)

// Checkpoint is the answer of the sui_getCheckpoint method. Sequence numbers,
// totals and timestamps are decimal strings on the wire.
type Checkpoint struct {
	Epoch                      string          `json:"epoch"`
	SequenceNumber             string          `json:"sequenceNumber"`
	Digest                     string          `json:"digest"`
	NetworkTotalTransactions   string          `json:"networkTotalTransactions"`
	PreviousDigest             string          `json:"previousDigest,omitempty"`
	EpochRollingGasCostSummary *GasCostSummary `json:"epochRollingGasCostSummary,omitempty"`
	TimestampMs                string          `json:"timestampMs"`
	Transactions               []string        `json:"transactions,omitempty"`
	CheckpointCommitments      json.RawMessage `json:"checkpointCommitments,omitempty"`
	ValidatorSignature         string          `json:"validatorSignature,omitempty"`
}

// CheckpointPage is one page of a paginated checkpoint listing.
type CheckpointPage struct {
	Data        []Checkpoint `json:"data"`
	NextCursor  *string      `json:"nextCursor,omitempty"`
	HasNextPage bool         `json:"hasNextPage"`
}
