package rpcclient

import (
	"encoding/json"

	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

// ObjectDataOptions selects which parts of object data the node should
// include in its answers.
type ObjectDataOptions struct {
	ShowType                bool `json:"showType,omitempty"`
	ShowOwner               bool `json:"showOwner,omitempty"`
	ShowPreviousTransaction bool `json:"showPreviousTransaction,omitempty"`
	ShowDisplay             bool `json:"showDisplay,omitempty"`
	ShowContent             bool `json:"showContent,omitempty"`
	ShowBcs                 bool `json:"showBcs,omitempty"`
	ShowStorageRebate       bool `json:"showStorageRebate,omitempty"`
}

// ObjectQuery filters and shapes suix_getOwnedObjects listings.
type ObjectQuery struct {
	Filter  json.RawMessage    `json:"filter,omitempty"`
	Options *ObjectDataOptions `json:"options,omitempty"`
}

// GetObject returns the object with the given ID via sui_getObject.
func (c *Client) GetObject(objectID string, opts *ObjectDataOptions) (*result.ObjectResponse, error) {
	var resp result.ObjectResponse
	if err := c.performRequest("sui_getObject", []any{objectID, opts}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MultiGetObjects returns multiple objects in one call via
// sui_multiGetObjects, in the same order as the requested IDs.
func (c *Client) MultiGetObjects(objectIDs []string, opts *ObjectDataOptions) ([]result.ObjectResponse, error) {
	var resp []result.ObjectResponse
	if err := c.performRequest("sui_multiGetObjects", []any{objectIDs, opts}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetOwnedObjects returns a page of objects owned by an address via
// suix_getOwnedObjects. A nil query lists everything with default detail.
func (c *Client) GetOwnedObjects(owner string, query *ObjectQuery, cursor string, limit uint) (*result.ObjectsPage, error) {
	var resp result.ObjectsPage
	params := []any{owner, query, orNull(cursor), orNullUint(limit)}
	if err := c.performRequest("suix_getOwnedObjects", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TryGetPastObject returns a historic version of an object via
// sui_tryGetPastObject. The node is not required to retain old versions, so
// the answer is a status wrapper rather than plain object data.
func (c *Client) TryGetPastObject(objectID string, version uint64, opts *ObjectDataOptions) (*result.PastObject, error) {
	var resp result.PastObject
	if err := c.performRequest("sui_tryGetPastObject", []any{objectID, version, opts}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDynamicFields returns a page of dynamic fields attached to an object.
func (c *Client) GetDynamicFields(parentObjectID string, cursor string, limit uint) (*result.DynamicFieldPage, error) {
	var resp result.DynamicFieldPage
	params := []any{parentObjectID, orNull(cursor), orNullUint(limit)}
	if err := c.performRequest("suix_getDynamicFields", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDynamicFieldObject returns the value object of a dynamic field. The name
// is the field's Move name as the node reported it in a listing.
func (c *Client) GetDynamicFieldObject(parentObjectID string, name json.RawMessage) (*result.ObjectResponse, error) {
	var resp result.ObjectResponse
	if err := c.performRequest("suix_getDynamicFieldObject", []any{parentObjectID, name}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
