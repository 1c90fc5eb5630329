/*
Package result contains structures the Sui JSON-RPC methods answer with. They
carry the node's JSON shapes faithfully; amounts that the node encodes as
decimal strings stay strings here, interpretation is left to the callers.
*/
package result

import (
	"encoding/json"
)

// Balance is the answer of the suix_getBalance and suix_getAllBalances
// methods.
type Balance struct {
	CoinType        string          `json:"coinType"`
	CoinObjectCount int             `json:"coinObjectCount"`
	TotalBalance    string          `json:"totalBalance"`
	LockedBalance   json.RawMessage `json:"lockedBalance,omitempty"`
}

// Coin is a single coin object owned by an address.
type Coin struct {
	CoinType            string `json:"coinType"`
	CoinObjectID        string `json:"coinObjectId"`
	Version             string `json:"version"`
	Digest              string `json:"digest"`
	Balance             string `json:"balance"`
	PreviousTransaction string `json:"previousTransaction"`
}

// CoinPage is one page of a paginated coin listing.
type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor,omitempty"`
	HasNextPage bool    `json:"hasNextPage"`
}

// CoinMetadata describes a coin type as registered on chain. Decimals is a
// pointer because the node may omit it, in which case callers fall back to a
// default precision.
type CoinMetadata struct {
	ID          *string `json:"id,omitempty"`
	Decimals    *uint8  `json:"decimals,omitempty"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description string  `json:"description"`
	IconURL     *string `json:"iconUrl,omitempty"`
}

// Supply is the answer of the suix_getTotalSupply method.
type Supply struct {
	Value string `json:"value"`
}
