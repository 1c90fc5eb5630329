package rpcclient

import (
	"strconv"

	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

// GetCheckpoint returns the checkpoint with the given sequence number or
// digest via sui_getCheckpoint.
func (c *Client) GetCheckpoint(id string) (*result.Checkpoint, error) {
	var resp result.Checkpoint
	if err := c.performRequest("sui_getCheckpoint", []any{id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCheckpoints returns a page of checkpoints via sui_getCheckpoints.
func (c *Client) GetCheckpoints(cursor string, limit uint, descending bool) (*result.CheckpointPage, error) {
	var resp result.CheckpointPage
	params := []any{orNull(cursor), orNullUint(limit), descending}
	if err := c.performRequest("sui_getCheckpoints", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLatestCheckpointSequenceNumber returns the sequence number of the most
// recently executed checkpoint.
func (c *Client) GetLatestCheckpointSequenceNumber() (uint64, error) {
	var resp string
	if err := c.performRequest("sui_getLatestCheckpointSequenceNumber", nil, &resp); err != nil {
		return 0, err
	}
	seq, err := strconv.ParseUint(resp, 10, 64)
	if err != nil {
		return 0, suirpc.NewMissingFieldError("sui_getLatestCheckpointSequenceNumber", "result")
	}
	return seq, nil
}
