package rpcclient

import (
	"math"
	"strconv"

	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

const (
	// CoinTypeSui is the fully qualified type of the native coin.
	CoinTypeSui = "0x2::sui::SUI"

	// suiDecimals is the fixed precision of the native coin, it is never
	// fetched from the node.
	suiDecimals = 9
	// defaultDecimals is assumed for coins whose metadata omits precision.
	defaultDecimals = 6
)

// GetBalance returns the total balance an address holds in coins of the given
// type via suix_getBalance. The answer must carry a totalBalance field,
// otherwise a MissingFieldError is returned.
func (c *Client) GetBalance(owner string, coinType string) (*result.Balance, error) {
	var resp result.Balance
	if err := c.performRequest("suix_getBalance", []any{owner, coinType}, &resp); err != nil {
		return nil, err
	}
	if resp.TotalBalance == "" {
		return nil, suirpc.NewMissingFieldError("suix_getBalance", "totalBalance")
	}
	return &resp, nil
}

// GetAllBalances returns the balances of all coin types an address holds.
func (c *Client) GetAllBalances(owner string) ([]result.Balance, error) {
	var resp []result.Balance
	if err := c.performRequest("suix_getAllBalances", []any{owner}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetCoins returns a page of coin objects of the given type owned by an
// address. An empty cursor or a zero limit makes the node use its defaults.
func (c *Client) GetCoins(owner string, coinType string, cursor string, limit uint) (*result.CoinPage, error) {
	var resp result.CoinPage
	params := []any{owner, coinType, orNull(cursor), orNullUint(limit)}
	if err := c.performRequest("suix_getCoins", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAllCoins returns a page of coin objects of any type owned by an address.
func (c *Client) GetAllCoins(owner string, cursor string, limit uint) (*result.CoinPage, error) {
	var resp result.CoinPage
	params := []any{owner, orNull(cursor), orNullUint(limit)}
	if err := c.performRequest("suix_getAllCoins", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTotalSupply returns the current circulating supply of the given coin
// type.
func (c *Client) GetTotalSupply(coinType string) (*result.Supply, error) {
	var resp result.Supply
	if err := c.performRequest("suix_getTotalSupply", []any{coinType}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCoinMetadata returns the metadata of the given coin type. Metadata is
// fetched from the node at most once per coin type for the client's lifetime,
// subsequent calls answer from the cache (even when the node answered with
// nothing, an absent metadata object is cached too).
func (c *Client) GetCoinMetadata(coinType string) (*result.CoinMetadata, error) {
	c.cacheLock.RLock()
	md, ok := c.metadataCache[coinType]
	c.cacheLock.RUnlock()
	if ok {
		return md, nil
	}

	var resp result.CoinMetadata
	if err := c.performRequest("suix_getCoinMetadata", []any{coinType}, &resp); err != nil {
		return nil, err
	}

	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()
	// Lost races keep the first write.
	if cached, ok := c.metadataCache[coinType]; ok {
		return cached, nil
	}
	c.metadataCache[coinType] = &resp
	return &resp, nil
}

// Balance returns the balance an address holds in coins of the given type
// scaled to whole coin units: totalBalance / 10^decimals as a float64, with
// the precision loss double division implies. The native coin always uses 9
// decimals, other coin types are resolved through cached metadata with a
// fallback of 6 when the metadata carries no precision.
func (c *Client) Balance(owner string, coinType string) (float64, error) {
	b, err := c.GetBalance(owner, coinType)
	if err != nil {
		return 0, err
	}
	rawBalance, err := strconv.ParseUint(b.TotalBalance, 10, 64)
	if err != nil {
		return 0, suirpc.NewMissingFieldError("suix_getBalance", "totalBalance")
	}
	dec, err := c.decimals(coinType)
	if err != nil {
		return 0, err
	}
	return float64(rawBalance) / math.Pow10(dec), nil
}

func (c *Client) decimals(coinType string) (int, error) {
	if coinType == CoinTypeSui {
		return suiDecimals, nil
	}
	md, err := c.GetCoinMetadata(coinType)
	if err != nil {
		return 0, err
	}
	if md == nil || md.Decimals == nil {
		return defaultDecimals, nil
	}
	return int(*md.Decimals), nil
}
