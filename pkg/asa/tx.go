package asa

import (
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

type AssetCreateTxParams struct {
	Creator         string
	Config          TokenConfig
	SuggestedParams types.SuggestedParams
}

// BuildAssetCreateTx builds an unsigned asset-creation transaction sent by the
// creator, with empty role addresses defaulted to the creator.
func BuildAssetCreateTx(params AssetCreateTxParams) (types.Transaction, error) {
	creator := strings.TrimSpace(params.Creator)
	if creator == "" {
		return types.Transaction{}, fmt.Errorf("creator address is required")
	}
	if err := ValidateAddress(creator); err != nil {
		return types.Transaction{}, err
	}
	if err := ValidateTokenConfig(params.Config); err != nil {
		return types.Transaction{}, err
	}
	return buildAssetCreateTx(creator, params.Config, params.SuggestedParams)
}

// buildAssetCreateTx assumes creator and config are already validated.
func buildAssetCreateTx(creator string, config TokenConfig, suggestedParams types.SuggestedParams) (types.Transaction, error) {
	metadataHash, err := DecodeMetadataHash(config.MetadataHash)
	if err != nil {
		return types.Transaction{}, err
	}

	tx, err := transaction.MakeAssetCreateTxn(
		creator,
		config.Note,
		suggestedParams,
		config.TotalSupply,
		config.Decimals,
		config.DefaultFrozen,
		orDefault(config.Manager, creator),
		orDefault(config.Reserve, creator),
		orDefault(config.Freeze, creator),
		orDefault(config.Clawback, creator),
		config.UnitName,
		config.Name,
		config.URL,
		string(metadataHash),
	)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("failed to build asset create transaction: %w", err)
	}

	return tx, nil
}

// EncodeTransaction returns the canonical msgpack encoding handed to signers.
func EncodeTransaction(tx types.Transaction) []byte {
	return msgpack.Encode(tx)
}

// DecodeTransaction is the inverse of EncodeTransaction.
func DecodeTransaction(encoded []byte) (types.Transaction, error) {
	var tx types.Transaction
	if err := msgpack.Decode(encoded, &tx); err != nil {
		return types.Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return tx, nil
}

func orDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
