package result

import (
	"encoding/json"
)

// Stake is one staked SUI position inside a validator's pool.
type Stake struct {
	StakedSuiID       string `json:"stakedSuiId"`
	StakeRequestEpoch string `json:"stakeRequestEpoch"`
	StakeActiveEpoch  string `json:"stakeActiveEpoch"`
	Principal         string `json:"principal"`
	Status            string `json:"status"`
	EstimatedReward   string `json:"estimatedReward,omitempty"`
}

// DelegatedStake is the answer of the suix_getStakes method: all stakes an
// address holds with one validator.
type DelegatedStake struct {
	ValidatorAddress string  `json:"validatorAddress"`
	StakingPool      string  `json:"stakingPool"`
	Stakes           []Stake `json:"stakes"`
}

// ValidatorApy is the annual percentage yield of a single validator.
type ValidatorApy struct {
	Address string  `json:"address"`
	Apy     float64 `json:"apy"`
}

// ValidatorsApy is the answer of the suix_getValidatorsApy method.
type ValidatorsApy struct {
	Apys  []ValidatorApy `json:"apys"`
	Epoch string         `json:"epoch"`
}

// CommitteeInfo is the answer of the suix_getCommitteeInfo method. Validators
// are (authority key, stake unit) pairs.
type CommitteeInfo struct {
	Epoch      string      `json:"epoch"`
	Validators [][2]string `json:"validators"`
}

// SuiSystemStateSummary is the relevant subset of the
// suix_getLatestSuiSystemState answer. The full validator set is kept raw.
type SuiSystemStateSummary struct {
	Epoch                 string          `json:"epoch"`
	ProtocolVersion       string          `json:"protocolVersion"`
	SystemStateVersion    string          `json:"systemStateVersion"`
	StorageFundBalance    json.RawMessage `json:"storageFund,omitempty"`
	ReferenceGasPrice     string          `json:"referenceGasPrice"`
	EpochStartTimestampMs string          `json:"epochStartTimestampMs,omitempty"`
	EpochDurationMs       string          `json:"epochDurationMs,omitempty"`
	TotalStake            string          `json:"totalStake,omitempty"`
	ActiveValidators      json.RawMessage `json:"activeValidators,omitempty"`
}
