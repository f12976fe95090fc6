package signer

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/algotoken/asa-sdk-go/pkg/asa"
	"github.com/algotoken/asa-sdk-go/pkg/shared"
)

// Account signs with a single local key.
type Account struct {
	privateKey ed25519.PrivateKey
	address    types.Address
}

var _ asa.TransactionSigner = (*Account)(nil)

// NewAccountFromMnemonic recovers an Account from a 25-word mnemonic.
func NewAccountFromMnemonic(phrase string) (*Account, error) {
	privateKey, address, err := shared.ParseMnemonic(phrase)
	if err != nil {
		return nil, err
	}
	return &Account{privateKey: privateKey, address: address}, nil
}

// NewAccount wraps an existing ed25519 private key.
func NewAccount(privateKey ed25519.PrivateKey) (*Account, error) {
	account, err := crypto.AccountFromPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &Account{privateKey: account.PrivateKey, address: account.Address}, nil
}

func (account *Account) Address() string {
	return account.address.String()
}

// SignTransactions signs every transaction in order. A transaction sent from
// any other address fails the whole batch.
func (account *Account) SignTransactions(ctx context.Context, unsigned [][]byte) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	signed := make([][]byte, 0, len(unsigned))
	for index, encoded := range unsigned {
		tx, err := asa.DecodeTransaction(encoded)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", index, err)
		}
		if tx.Sender != account.address {
			return nil, fmt.Errorf(
				"transaction %d: sender %s is not signer %s",
				index,
				tx.Sender.String(),
				account.address.String(),
			)
		}

		_, signedBytes, err := crypto.SignTransaction(account.privateKey, tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: failed to sign: %w", index, err)
		}
		signed = append(signed, signedBytes)
	}
	return signed, nil
}
