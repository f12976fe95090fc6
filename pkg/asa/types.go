package asa

import (
	"context"

	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/algotoken/asa-sdk-go/pkg/logger"
)

const (
	// DefaultWaitRounds is how many rounds CreateToken waits for confirmation.
	DefaultWaitRounds uint64 = 4

	MaxAssetNameLength = 32
	MaxUnitNameLength  = 8
	MaxURLLength       = 96
	MaxDecimals        = 19
	MetadataHashLength = 32
)

// TokenConfig describes one asset to create. Empty role addresses default to
// the creator.
type TokenConfig struct {
	Name          string
	UnitName      string
	TotalSupply   uint64
	Decimals      uint32
	URL           string
	MetadataHash  string
	Manager       string
	Reserve       string
	Freeze        string
	Clawback      string
	DefaultFrozen bool
	Note          []byte
}

// CreatedAsset is the record of a confirmed asset creation.
type CreatedAsset struct {
	AssetID        uint64 `json:"assetId"`
	TxID           string `json:"txId"`
	Name           string `json:"name"`
	UnitName       string `json:"unitName"`
	TotalSupply    uint64 `json:"totalSupply"`
	ConfirmedRound uint64 `json:"confirmedRound"`
}

// Confirmation is the subset of confirmation metadata the issuer consumes.
type Confirmation struct {
	ConfirmedRound uint64
	AssetIndex     uint64
}

// NetworkClient is the ledger access CreateToken needs.
type NetworkClient interface {
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)
	SubmitRawTransaction(ctx context.Context, signed []byte) (string, error)
	// WaitForConfirmation blocks for at most maxRounds rounds. Exceeding the
	// budget returns an error wrapping ErrConfirmationTimeout.
	WaitForConfirmation(ctx context.Context, txID string, maxRounds uint64) (Confirmation, error)
}

// TransactionSigner signs a batch of msgpack-encoded transactions and returns
// the signed blobs in the same order.
type TransactionSigner interface {
	SignTransactions(ctx context.Context, unsigned [][]byte) ([][]byte, error)
}

// SignerFunc adapts a plain function to TransactionSigner.
type SignerFunc func(ctx context.Context, unsigned [][]byte) ([][]byte, error)

func (fn SignerFunc) SignTransactions(ctx context.Context, unsigned [][]byte) ([][]byte, error) {
	return fn(ctx, unsigned)
}

type CreateTokenProgress struct {
	Stage      string
	Percentage int
	TxID       string
	AssetID    uint64
	Error      string
}

type IssuerConfig struct {
	Network          NetworkClient
	CreatorAddress   string
	WaitRounds       uint64
	Logger           logger.Logger
	Metrics          *Metrics
	ProgressCallback func(CreateTokenProgress)
}

type FactoryConfig struct {
	Network          NetworkClient
	OwnerAddress     string
	WaitRounds       uint64
	Logger           logger.Logger
	Metrics          *Metrics
	ProgressCallback func(CreateTokenProgress)
}
