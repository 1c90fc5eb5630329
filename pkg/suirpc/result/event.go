package result

import (
	"encoding/json"
)

// EventID identifies an event by the transaction that emitted it and the
// event's sequence number within that transaction.
type EventID struct {
	TxDigest string `json:"txDigest"`
	EventSeq string `json:"eventSeq"`
}

// Event is a single Move event as returned by suix_queryEvents.
type Event struct {
	ID                EventID         `json:"id"`
	PackageID         string          `json:"packageId"`
	TransactionModule string          `json:"transactionModule"`
	Sender            string          `json:"sender"`
	Type              string          `json:"type"`
	ParsedJSON        json.RawMessage `json:"parsedJson,omitempty"`
	Bcs               string          `json:"bcs,omitempty"`
	TimestampMs       string          `json:"timestampMs,omitempty"`
}

// EventPage is one page of a paginated event listing.
type EventPage struct {
	Data        []Event  `json:"data"`
	NextCursor  *EventID `json:"nextCursor,omitempty"`
	HasNextPage bool     `json:"hasNextPage"`
}
