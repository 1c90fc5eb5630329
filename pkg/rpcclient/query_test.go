package rpcclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suinet-dev/sui-go/pkg/suirpc"
	"github.com/suinet-dev/sui-go/pkg/suirpc/result"
)

func TestGetObject(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		require.Equal(t, "sui_getObject", r.Method)
		require.Equal(t, "0xobj", r.Params[0])
		return resultResponse(t, result.ObjectResponse{
			Data: &result.ObjectData{ObjectID: "0xobj", Version: "7", Digest: "abc"},
		}), nil
	})

	obj, err := c.GetObject("0xobj", &ObjectDataOptions{ShowContent: true})
	require.NoError(t, err)
	require.NotNil(t, obj.Data)
	require.Equal(t, "0xobj", obj.Data.ObjectID)
}

func TestGetObjectNotShown(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return resultResponse(t, result.ObjectResponse{
			Error: &result.ObjectResponseError{Code: "deleted", ObjectID: "0xobj"},
		}), nil
	})

	obj, err := c.GetObject("0xobj", nil)
	require.NoError(t, err)
	require.Nil(t, obj.Data)
	require.Equal(t, "deleted", obj.Error.Code)
}

func TestGetCheckpoint(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		require.Equal(t, "sui_getCheckpoint", r.Method)
		return resultResponse(t, result.Checkpoint{
			Epoch:          "5",
			SequenceNumber: "1000",
			Digest:         "cpdigest",
			TimestampMs:    "1700000000000",
		}), nil
	})

	cp, err := c.GetCheckpoint("1000")
	require.NoError(t, err)
	require.Equal(t, "cpdigest", cp.Digest)
}

func TestGetLatestCheckpointSequenceNumber(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return resultResponse(t, "31337"), nil
	})

	seq, err := c.GetLatestCheckpointSequenceNumber()
	require.NoError(t, err)
	require.Equal(t, uint64(31337), seq)
}

func TestQueryEvents(t *testing.T) {
	var params []any
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		require.Equal(t, "suix_queryEvents", r.Method)
		params = r.Params
		return resultResponse(t, result.EventPage{
			Data: []result.Event{{
				ID:     result.EventID{TxDigest: "txd", EventSeq: "0"},
				Sender: "0xabc",
				Type:   "0x42::token::Minted",
			}},
		}), nil
	})

	filter := json.RawMessage(`{"Sender":"0xabc"}`)
	page, err := c.QueryEvents(filter, nil, 10, false)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, "0x42::token::Minted", page.Data[0].Type)
	// Nil cursor must reach the wire as null, not as a typed nil pointer.
	require.Nil(t, params[1])
}

func TestGetStakes(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		require.Equal(t, "suix_getStakes", r.Method)
		return resultResponse(t, []result.DelegatedStake{{
			ValidatorAddress: "0xval",
			StakingPool:      "0xpool",
			Stakes: []result.Stake{{
				StakedSuiID: "0xstake",
				Principal:   "1000000000",
				Status:      "Active",
			}},
		}}), nil
	})

	stakes, err := c.GetStakes("0xabc")
	require.NoError(t, err)
	require.Len(t, stakes, 1)
	require.Equal(t, "Active", stakes[0].Stakes[0].Status)
}

func TestGetValidatorsApy(t *testing.T) {
	c := testClient(t, func(r *suirpc.Request) (*suirpc.Response, error) {
		return resultResponse(t, result.ValidatorsApy{
			Apys:  []result.ValidatorApy{{Address: "0xval", Apy: 0.049}},
			Epoch: "42",
		}), nil
	})

	apys, err := c.GetValidatorsApy()
	require.NoError(t, err)
	require.Equal(t, "42", apys.Epoch)
	require.InDelta(t, 0.049, apys.Apys[0].Apy, 1e-9)
}
