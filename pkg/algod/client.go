package algod

import (
	"context"
	"errors"
	"fmt"

	sdkalgod "github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/algotoken/asa-sdk-go/pkg/asa"
	"github.com/algotoken/asa-sdk-go/pkg/logger"
	"github.com/algotoken/asa-sdk-go/pkg/shared"
)

type Config struct {
	Network string
	Address string
	Token   string
	Logger  logger.Logger
}

// Client talks to one algod node.
type Client struct {
	network string
	algod   *sdkalgod.Client
	lggr    logger.Logger
}

var _ asa.NetworkClient = (*Client)(nil)

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	algodClient, err := shared.NewAlgodClient(network, config.Address, config.Token)
	if err != nil {
		return nil, err
	}

	lggr := config.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Client{
		network: network,
		algod:   algodClient,
		lggr:    lggr.Named("algod"),
	}, nil
}

// Network returns the normalized network name.
func (client *Client) Network() string {
	return client.network
}

// SuggestedParams returns the node's current transaction parameters.
func (client *Client) SuggestedParams(ctx context.Context) (types.SuggestedParams, error) {
	params, err := client.algod.SuggestedParams().Do(ctx)
	if err != nil {
		return types.SuggestedParams{}, fmt.Errorf("failed to fetch suggested params: %w", err)
	}
	return params, nil
}

// SubmitRawTransaction posts a signed transaction and returns its ID.
func (client *Client) SubmitRawTransaction(ctx context.Context, signed []byte) (string, error) {
	if len(signed) == 0 {
		return "", fmt.Errorf("signed transaction is required")
	}

	txID, err := client.algod.SendRawTransaction(signed).Do(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}
	client.lggr.Debugw("transaction submitted", "txId", txID, "bytes", len(signed))
	return txID, nil
}

// WaitForConfirmation checks the pending pool once per round, starting at the
// round after the node's current one, for at most maxRounds rounds. A zero
// maxRounds uses asa.DefaultWaitRounds.
func (client *Client) WaitForConfirmation(
	ctx context.Context,
	txID string,
	maxRounds uint64,
) (asa.Confirmation, error) {
	if txID == "" {
		return asa.Confirmation{}, fmt.Errorf("transaction ID is required")
	}
	if maxRounds == 0 {
		maxRounds = asa.DefaultWaitRounds
	}

	status, err := client.algod.Status().Do(ctx)
	if err != nil {
		return asa.Confirmation{}, contextOr(ctx, fmt.Errorf("failed to read node status: %w", err))
	}

	startRound := status.LastRound + 1
	for currentRound := startRound; currentRound < startRound+maxRounds; currentRound++ {
		pending, _, err := client.algod.PendingTransactionInformation(txID).Do(ctx)
		if err != nil {
			return asa.Confirmation{}, contextOr(ctx, fmt.Errorf("failed to read pending transaction %s: %w", txID, err))
		}
		if pending.ConfirmedRound > 0 {
			client.lggr.Debugw("transaction confirmed", "txId", txID, "round", pending.ConfirmedRound)
			return asa.Confirmation{
				ConfirmedRound: pending.ConfirmedRound,
				AssetIndex:     pending.AssetIndex,
			}, nil
		}
		if pending.PoolError != "" {
			return asa.Confirmation{}, fmt.Errorf("%w: %s", asa.ErrTransactionRejected, pending.PoolError)
		}

		client.lggr.Debugw("waiting for round", "txId", txID, "round", currentRound)
		if _, err := client.algod.StatusAfterBlock(currentRound).Do(ctx); err != nil {
			return asa.Confirmation{}, contextOr(ctx, fmt.Errorf("failed to wait for round %d: %w", currentRound, err))
		}
	}

	return asa.Confirmation{}, fmt.Errorf(
		"%w: transaction %s not confirmed after %d rounds",
		asa.ErrConfirmationTimeout,
		txID,
		maxRounds,
	)
}

// contextOr prefers the context's own error so callers can match it with errors.Is.
func contextOr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}
