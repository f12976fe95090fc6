package shared

import (
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
)

const (
	NetworkMainnet  = "mainnet"
	NetworkTestnet  = "testnet"
	NetworkBetanet  = "betanet"
	NetworkLocalnet = "localnet"

	// LocalnetAlgodToken is the well-known token of a local sandbox algod.
	LocalnetAlgodToken = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

// NormalizeNetwork lowercases and validates a network name, defaulting to testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet, NetworkBetanet, NetworkLocalnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// DefaultAlgodAddress returns the public algod endpoint for a normalized network.
func DefaultAlgodAddress(network string) string {
	switch network {
	case NetworkMainnet:
		return "https://mainnet-api.algonode.cloud"
	case NetworkBetanet:
		return "https://betanet-api.algonode.cloud"
	case NetworkLocalnet:
		return "http://localhost:4001"
	default:
		return "https://testnet-api.algonode.cloud"
	}
}

// NewAlgodClient creates an algod REST client. An empty address selects the
// network's public endpoint; localnet falls back to the sandbox token.
func NewAlgodClient(network string, address string, token string) (*algod.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	resolvedAddress := strings.TrimRight(strings.TrimSpace(address), "/")
	if resolvedAddress == "" {
		resolvedAddress = DefaultAlgodAddress(normalized)
	}
	resolvedToken := strings.TrimSpace(token)
	if resolvedToken == "" && normalized == NetworkLocalnet {
		resolvedToken = LocalnetAlgodToken
	}

	client, err := algod.MakeClient(resolvedAddress, resolvedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create algod client: %w", err)
	}
	return client, nil
}
