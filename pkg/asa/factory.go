package asa

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/algotoken/asa-sdk-go/pkg/logger"
)

// Factory issues assets for one owner and keeps an ordered in-memory registry
// of everything it created. It is safe for concurrent use.
type Factory struct {
	network          NetworkClient
	ownerAddress     string
	waitRounds       uint64
	lggr             logger.Logger
	metrics          *Metrics
	progressCallback func(CreateTokenProgress)

	mutex          sync.RWMutex
	deployedTokens []CreatedAsset
}

// NewFactory creates a Factory owned by config.OwnerAddress.
func NewFactory(config FactoryConfig) (*Factory, error) {
	if config.Network == nil {
		return nil, fmt.Errorf("network client is required")
	}

	ownerAddress := strings.TrimSpace(config.OwnerAddress)
	if ownerAddress == "" {
		return nil, fmt.Errorf("owner address is required")
	}
	if err := ValidateAddress(ownerAddress); err != nil {
		return nil, fmt.Errorf("invalid owner address: %w", err)
	}

	lggr := config.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Factory{
		network:          config.Network,
		ownerAddress:     ownerAddress,
		waitRounds:       config.WaitRounds,
		lggr:             lggr.Named("factory"),
		metrics:          config.Metrics,
		progressCallback: config.ProgressCallback,
		deployedTokens:   make([]CreatedAsset, 0),
	}, nil
}

// Owner returns the address all tokens of this factory are created from.
func (factory *Factory) Owner() string {
	return factory.ownerAddress
}

// DeployToken creates one asset through a fresh Issuer bound to the owner and
// records it. Errors from the issuer are returned unchanged and leave the
// registry untouched.
func (factory *Factory) DeployToken(
	ctx context.Context,
	config TokenConfig,
	signer TransactionSigner,
) (CreatedAsset, error) {
	issuer, err := NewIssuer(IssuerConfig{
		Network:          factory.network,
		CreatorAddress:   factory.ownerAddress,
		WaitRounds:       factory.waitRounds,
		Logger:           factory.lggr,
		Metrics:          factory.metrics,
		ProgressCallback: factory.progressCallback,
	})
	if err != nil {
		return CreatedAsset{}, err
	}

	created, err := issuer.CreateToken(ctx, config, signer)
	if err != nil {
		return CreatedAsset{}, err
	}

	factory.mutex.Lock()
	factory.deployedTokens = append(factory.deployedTokens, created)
	count := len(factory.deployedTokens)
	factory.mutex.Unlock()
	factory.metrics.recordRegistered()

	factory.lggr.Debugw("token registered", "assetId", created.AssetID, "count", count)
	return created, nil
}

// AllTokens returns a snapshot of the registry in creation order.
func (factory *Factory) AllTokens() []CreatedAsset {
	factory.mutex.RLock()
	defer factory.mutex.RUnlock()

	tokens := make([]CreatedAsset, len(factory.deployedTokens))
	copy(tokens, factory.deployedTokens)
	return tokens
}

// TokenCount returns the number of registered tokens.
func (factory *Factory) TokenCount() int {
	factory.mutex.RLock()
	defer factory.mutex.RUnlock()
	return len(factory.deployedTokens)
}

// FindToken returns the first registered token, in creation order, matching query.
func (factory *Factory) FindToken(query TokenQuery) (CreatedAsset, bool) {
	factory.mutex.RLock()
	defer factory.mutex.RUnlock()

	for _, token := range factory.deployedTokens {
		if query.Matches(token) {
			return token, true
		}
	}
	return CreatedAsset{}, false
}

// FindTokenByID is shorthand for FindToken(ByAssetID(assetID)).
func (factory *Factory) FindTokenByID(assetID uint64) (CreatedAsset, bool) {
	return factory.FindToken(ByAssetID(assetID))
}

// FindTokenByName is shorthand for FindToken(ByName(search)).
func (factory *Factory) FindTokenByName(search string) (CreatedAsset, bool) {
	return factory.FindToken(ByName(search))
}
