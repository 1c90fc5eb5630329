package result

import (
	"encoding/json"
)

// ObjectData describes a single on-chain object.
type ObjectData struct {
	ObjectID            string          `json:"objectId"`
	Version             string          `json:"version"`
	Digest              string          `json:"digest"`
	Type                string          `json:"type,omitempty"`
	Owner               json.RawMessage `json:"owner,omitempty"`
	PreviousTransaction string          `json:"previousTransaction,omitempty"`
	StorageRebate       string          `json:"storageRebate,omitempty"`
	Content             json.RawMessage `json:"content,omitempty"`
	Bcs                 json.RawMessage `json:"bcs,omitempty"`
	Display             json.RawMessage `json:"display,omitempty"`
}

// ObjectResponseError is the per-object error the node reports for objects
// that can't be shown (deleted, never existed, version too high).
type ObjectResponseError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
	Version  string `json:"version,omitempty"`
	Digest   string `json:"digest,omitempty"`
}

// ObjectResponse is the answer of the sui_getObject and sui_multiGetObjects
// methods. Exactly one of Data and Error is set.
type ObjectResponse struct {
	Data  *ObjectData          `json:"data,omitempty"`
	Error *ObjectResponseError `json:"error,omitempty"`
}

// ObjectsPage is one page of a paginated object listing as returned by
// suix_getOwnedObjects.
type ObjectsPage struct {
	Data        []ObjectResponse `json:"data"`
	NextCursor  *string          `json:"nextCursor,omitempty"`
	HasNextPage bool             `json:"hasNextPage"`
}

// PastObject is the answer of the sui_tryGetPastObject method, a status
// string with object details for the "VersionFound" case.
type PastObject struct {
	Status  string      `json:"status"`
	Details *ObjectData `json:"details,omitempty"`
}

// DynamicFieldInfo describes one dynamic field attached to an object.
type DynamicFieldInfo struct {
	Name       json.RawMessage `json:"name"`
	BcsName    string          `json:"bcsName,omitempty"`
	Type       string          `json:"type"`
	ObjectType string          `json:"objectType"`
	ObjectID   string          `json:"objectId"`
	Version    json.Number     `json:"version"`
	Digest     string          `json:"digest"`
}

// DynamicFieldPage is one page of a paginated dynamic field listing.
type DynamicFieldPage struct {
	Data        []DynamicFieldInfo `json:"data"`
	NextCursor  *string            `json:"nextCursor,omitempty"`
	HasNextPage bool               `json:"hasNextPage"`
}
