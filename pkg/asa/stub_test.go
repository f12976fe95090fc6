package asa

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

type stubNetwork struct {
	paramsErr error
	submitErr error
	txID      string
	waitFn    func(ctx context.Context, txID string, maxRounds uint64) (Confirmation, error)

	mutex         sync.Mutex
	paramsCalls   int
	submitted     [][]byte
	waitedRounds  []uint64
	nextSubmitted int
}

func newStubNetwork(assetIndex uint64, txID string) *stubNetwork {
	return &stubNetwork{
		txID: txID,
		waitFn: func(context.Context, string, uint64) (Confirmation, error) {
			return Confirmation{ConfirmedRound: 1000, AssetIndex: assetIndex}, nil
		},
	}
}

func (network *stubNetwork) SuggestedParams(context.Context) (types.SuggestedParams, error) {
	network.mutex.Lock()
	defer network.mutex.Unlock()
	network.paramsCalls++
	if network.paramsErr != nil {
		return types.SuggestedParams{}, network.paramsErr
	}
	return testSuggestedParams(), nil
}

func (network *stubNetwork) SubmitRawTransaction(_ context.Context, signed []byte) (string, error) {
	network.mutex.Lock()
	defer network.mutex.Unlock()
	if network.submitErr != nil {
		return "", network.submitErr
	}
	network.submitted = append(network.submitted, signed)
	network.nextSubmitted++
	if network.txID != "" {
		return network.txID, nil
	}
	return fmt.Sprintf("TX%d", network.nextSubmitted), nil
}

func (network *stubNetwork) WaitForConfirmation(ctx context.Context, txID string, maxRounds uint64) (Confirmation, error) {
	network.mutex.Lock()
	network.waitedRounds = append(network.waitedRounds, maxRounds)
	network.mutex.Unlock()
	return network.waitFn(ctx, txID, maxRounds)
}

func (network *stubNetwork) submissions() [][]byte {
	network.mutex.Lock()
	defer network.mutex.Unlock()
	return append([][]byte{}, network.submitted...)
}

func testSuggestedParams() types.SuggestedParams {
	genesisHash := make([]byte, 32)
	for index := range genesisHash {
		genesisHash[index] = byte(index + 1)
	}
	return types.SuggestedParams{
		Fee:             1000,
		FlatFee:         true,
		MinFee:          1000,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     genesisHash,
		FirstRoundValid: 100,
		LastRoundValid:  1100,
	}
}

func newTestAddress(t *testing.T) string {
	t.Helper()
	return crypto.GenerateAccount().Address.String()
}

func identitySigner() TransactionSigner {
	return SignerFunc(func(_ context.Context, unsigned [][]byte) ([][]byte, error) {
		return unsigned, nil
	})
}

func myTokenConfig() TokenConfig {
	return TokenConfig{
		Name:        "MyToken",
		UnitName:    "MTK",
		TotalSupply: 1000000,
		Decimals:    0,
	}
}
