package asa

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/algotoken/asa-sdk-go/pkg/logger"
)

// Issuer creates assets on behalf of one creator address.
type Issuer struct {
	network          NetworkClient
	creatorAddress   string
	waitRounds       uint64
	lggr             logger.Logger
	metrics          *Metrics
	progressCallback func(CreateTokenProgress)

	mutex        sync.Mutex
	totalCreated uint64
}

// NewIssuer creates an Issuer bound to config.CreatorAddress.
func NewIssuer(config IssuerConfig) (*Issuer, error) {
	if config.Network == nil {
		return nil, fmt.Errorf("network client is required")
	}

	creatorAddress := strings.TrimSpace(config.CreatorAddress)
	if creatorAddress == "" {
		return nil, fmt.Errorf("creator address is required")
	}
	if err := ValidateAddress(creatorAddress); err != nil {
		return nil, fmt.Errorf("invalid creator address: %w", err)
	}

	waitRounds := config.WaitRounds
	if waitRounds == 0 {
		waitRounds = DefaultWaitRounds
	}

	lggr := config.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Issuer{
		network:          config.Network,
		creatorAddress:   creatorAddress,
		waitRounds:       waitRounds,
		lggr:             lggr.Named("issuer"),
		metrics:          config.Metrics,
		progressCallback: config.ProgressCallback,
	}, nil
}

// Creator returns the address every asset of this issuer is created from.
func (issuer *Issuer) Creator() string {
	return issuer.creatorAddress
}

// TotalCreated returns the number of successful CreateToken calls.
func (issuer *Issuer) TotalCreated() uint64 {
	issuer.mutex.Lock()
	defer issuer.mutex.Unlock()
	return issuer.totalCreated
}

// CreateToken builds, signs, submits and confirms one asset creation. On any
// failure no record is produced and TotalCreated is unchanged.
func (issuer *Issuer) CreateToken(
	ctx context.Context,
	config TokenConfig,
	signer TransactionSigner,
) (CreatedAsset, error) {
	created, err := issuer.createToken(ctx, config, signer)
	if err != nil {
		issuer.metrics.recordFailure(err)
		issuer.reportProgress(CreateTokenProgress{Stage: "failed", Error: err.Error()})

		if txID, ambiguous := outcomeUnknown(err); ambiguous {
			issuer.lggr.Warnw("asset creation outcome unknown, transaction may still confirm",
				"name", config.Name,
				"txId", txID,
				"waitRounds", issuer.waitRounds,
				"err", err,
			)
		} else {
			issuer.lggr.Errorw("asset creation failed", "name", config.Name, "txId", submittedTxID(err), "err", err)
		}
		return CreatedAsset{}, err
	}

	issuer.mutex.Lock()
	issuer.totalCreated++
	issuer.mutex.Unlock()
	issuer.metrics.recordCreated()

	issuer.lggr.Infow("asset created",
		"name", created.Name,
		"unitName", created.UnitName,
		"assetId", created.AssetID,
		"txId", created.TxID,
		"round", created.ConfirmedRound,
	)
	issuer.reportProgress(CreateTokenProgress{
		Stage:      "complete",
		Percentage: 100,
		TxID:       created.TxID,
		AssetID:    created.AssetID,
	})
	return created, nil
}

func (issuer *Issuer) createToken(
	ctx context.Context,
	config TokenConfig,
	signer TransactionSigner,
) (CreatedAsset, error) {
	issuer.reportProgress(CreateTokenProgress{Stage: "validating", Percentage: 10})
	if signer == nil {
		return CreatedAsset{}, newSignerError(fmt.Errorf("signer is required"))
	}
	if err := ValidateTokenConfig(config); err != nil {
		return CreatedAsset{}, err
	}

	params, err := issuer.network.SuggestedParams(ctx)
	if err != nil {
		return CreatedAsset{}, newNetworkError("suggested-params", "", err)
	}

	issuer.reportProgress(CreateTokenProgress{Stage: "building", Percentage: 30})
	tx, err := buildAssetCreateTx(issuer.creatorAddress, config, params)
	if err != nil {
		return CreatedAsset{}, ConfigurationError{
			ASAError:         ASAError{Message: "invalid token config", Cause: err},
			ValidationErrors: []string{err.Error()},
		}
	}

	issuer.reportProgress(CreateTokenProgress{Stage: "signing", Percentage: 50})
	signed, err := signer.SignTransactions(ctx, [][]byte{EncodeTransaction(tx)})
	if err != nil {
		return CreatedAsset{}, newSignerError(err)
	}
	if len(signed) != 1 {
		return CreatedAsset{}, newSignerCountError(1, len(signed))
	}
	if len(signed[0]) == 0 {
		return CreatedAsset{}, newSignerError(fmt.Errorf("signer returned an empty transaction"))
	}

	issuer.reportProgress(CreateTokenProgress{Stage: "submitting", Percentage: 70})
	txID, err := issuer.network.SubmitRawTransaction(ctx, signed[0])
	if err != nil {
		return CreatedAsset{}, newNetworkError("submit", "", err)
	}

	issuer.reportProgress(CreateTokenProgress{Stage: "confirming", Percentage: 85, TxID: txID})
	confirmation, err := issuer.network.WaitForConfirmation(ctx, txID, issuer.waitRounds)
	if err != nil {
		if errors.Is(err, ErrConfirmationTimeout) ||
			errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, context.Canceled) {
			return CreatedAsset{}, newConfirmationTimeoutError(txID, issuer.waitRounds, err)
		}
		return CreatedAsset{}, newNetworkError("confirm", txID, err)
	}
	if confirmation.AssetIndex == 0 {
		return CreatedAsset{}, newNetworkError("confirm", txID, fmt.Errorf("confirmation for %s has no asset index", txID))
	}

	return CreatedAsset{
		AssetID:        confirmation.AssetIndex,
		TxID:           txID,
		Name:           config.Name,
		UnitName:       config.UnitName,
		TotalSupply:    config.TotalSupply,
		ConfirmedRound: confirmation.ConfirmedRound,
	}, nil
}

// outcomeUnknown reports whether err left a submitted transaction whose fate
// was not observed. A pool rejection is a definite outcome.
func outcomeUnknown(err error) (string, bool) {
	var timeoutError ConfirmationTimeoutError
	if errors.As(err, &timeoutError) {
		return timeoutError.TxID, true
	}
	var networkError NetworkError
	if errors.As(err, &networkError) &&
		networkError.Stage == "confirm" &&
		networkError.TxID != "" &&
		!errors.Is(err, ErrTransactionRejected) {
		return networkError.TxID, true
	}
	return "", false
}

func submittedTxID(err error) string {
	var networkError NetworkError
	if errors.As(err, &networkError) {
		return networkError.TxID
	}
	return ""
}

func (issuer *Issuer) reportProgress(progress CreateTokenProgress) {
	if issuer.progressCallback != nil {
		issuer.progressCallback(progress)
	}
}
