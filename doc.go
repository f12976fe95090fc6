// The ASA SDK for Go creates and tracks Algorand Standard Assets.
//
// # Packages
//
//   - pkg/asa: token config validation, asset-creation transactions, the
//     Issuer that signs, submits and confirms them, and the Factory registry.
//   - pkg/algod: an algod REST adapter implementing asa.NetworkClient.
//   - pkg/signer: a local mnemonic-backed asa.TransactionSigner.
//   - pkg/shared: network defaults and environment configuration.
//   - pkg/logger: the zap-backed structured logger used across packages.
//
// # Example
//
// See examples/asa-deploy-token for an end-to-end deployment driven by
// ALGORAND_MNEMONIC and ALGORAND_NETWORK.
//
// # Installation
//
//	go get github.com/algotoken/asa-sdk-go@latest
package asa_sdk_go
