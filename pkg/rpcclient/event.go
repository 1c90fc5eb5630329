package rpcclient

import (
	"encoding/json"

	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

// QueryEvents returns a page of events matching the filter via
// suix_queryEvents. The filter is the node's event filter JSON (by sender,
// package, event type and so on); a nil cursor starts from the beginning.
func (c *Client) QueryEvents(filter json.RawMessage, cursor *result.EventID, limit uint, descending bool) (*result.EventPage, error) {
	var resp result.EventPage
	var cur any
	if cursor != nil {
		cur = cursor
	}
	params := []any{filter, cur, orNullUint(limit), descending}
	if err := c.performRequest("suix_queryEvents", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEvents returns the events a transaction emitted via sui_getEvents.
func (c *Client) GetEvents(digest string) ([]result.Event, error) {
	var resp []result.Event
	if err := c.performRequest("sui_getEvents", []any{digest}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
