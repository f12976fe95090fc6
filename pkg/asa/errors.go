package asa

import (
	"errors"
	"fmt"
)

var (
	// ErrConfirmationTimeout marks a confirmation wait that ran out of rounds.
	ErrConfirmationTimeout = errors.New("confirmation wait rounds exceeded")
	// ErrTransactionRejected marks a transaction the node dropped from its pool.
	ErrTransactionRejected = errors.New("transaction rejected")
)

type ASAError struct {
	Message string
	Cause   error
}

func (errorValue ASAError) Error() string {
	if errorValue.Cause == nil {
		return errorValue.Message
	}
	return fmt.Sprintf("%s: %v", errorValue.Message, errorValue.Cause)
}

func (errorValue ASAError) Unwrap() error {
	return errorValue.Cause
}

type ConfigurationError struct {
	ASAError
	ValidationErrors []string
}

func NewConfigurationError(validationErrors []string) error {
	return ConfigurationError{
		ASAError:         ASAError{Message: fmt.Sprintf("invalid token config: %v", validationErrors)},
		ValidationErrors: append([]string{}, validationErrors...),
	}
}

type SignerError struct {
	ASAError
	Expected int
	Got      int
}

func newSignerCountError(expected int, got int) error {
	return SignerError{
		ASAError: ASAError{Message: fmt.Sprintf("signer returned %d signed transactions, expected %d", got, expected)},
		Expected: expected,
		Got:      got,
	}
}

func newSignerError(cause error) error {
	return SignerError{
		ASAError: ASAError{Message: "signer failed", Cause: cause},
		Expected: 1,
	}
}

// NetworkError reports a failed ledger call. Stage is one of
// "suggested-params", "submit" or "confirm".
type NetworkError struct {
	ASAError
	Stage string
	TxID  string
}

func newNetworkError(stage string, txID string, cause error) error {
	return NetworkError{
		ASAError: ASAError{Message: fmt.Sprintf("network %s failed", stage), Cause: cause},
		Stage:    stage,
		TxID:     txID,
	}
}

// ConfirmationTimeoutError means the transaction was accepted for submission
// but no confirmation was observed. It may still be committed on chain.
type ConfirmationTimeoutError struct {
	ASAError
	TxID       string
	WaitRounds uint64
}

func newConfirmationTimeoutError(txID string, waitRounds uint64, cause error) error {
	return ConfirmationTimeoutError{
		ASAError: ASAError{
			Message: fmt.Sprintf("transaction %s not confirmed within %d rounds", txID, waitRounds),
			Cause:   cause,
		},
		TxID:       txID,
		WaitRounds: waitRounds,
	}
}

// errorKind returns the metric label for an issuance error.
func errorKind(err error) string {
	var configurationError ConfigurationError
	var signerError SignerError
	var networkError NetworkError
	var timeoutError ConfirmationTimeoutError
	switch {
	case errors.As(err, &configurationError):
		return "configuration"
	case errors.As(err, &signerError):
		return "signer"
	case errors.As(err, &timeoutError):
		return "confirmation_timeout"
	case errors.As(err, &networkError):
		return "network"
	default:
		return "other"
	}
}
