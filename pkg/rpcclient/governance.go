package rpcclient

import (
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

// GetStakes returns all delegated stakes an address holds via suix_getStakes.
func (c *Client) GetStakes(owner string) ([]result.DelegatedStake, error) {
	var resp []result.DelegatedStake
	if err := c.performRequest("suix_getStakes", []any{owner}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStakesByIDs returns delegated stakes by their staked SUI object IDs.
func (c *Client) GetStakesByIDs(stakedSuiIDs []string) ([]result.DelegatedStake, error) {
	var resp []result.DelegatedStake
	if err := c.performRequest("suix_getStakesByIds", []any{stakedSuiIDs}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetValidatorsApy returns the annual percentage yield of every active
// validator for the current epoch.
func (c *Client) GetValidatorsApy() (*result.ValidatorsApy, error) {
	var resp result.ValidatorsApy
	if err := c.performRequest("suix_getValidatorsApy", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLatestSuiSystemState returns a summary of the current system state
// object (epoch, gas price, validator set).
func (c *Client) GetLatestSuiSystemState() (*result.SuiSystemStateSummary, error) {
	var resp result.SuiSystemStateSummary
	if err := c.performRequest("suix_getLatestSuiSystemState", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCommitteeInfo returns the validator committee of the given epoch, or of
// the current one when epoch is empty.
func (c *Client) GetCommitteeInfo(epoch string) (*result.CommitteeInfo, error) {
	var resp result.CommitteeInfo
	if err := c.performRequest("suix_getCommitteeInfo", []any{orNull(epoch)}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
