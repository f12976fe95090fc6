// Package asa creates and tracks Algorand Standard Assets.
//
// An Issuer turns a TokenConfig into one confirmed asset: it fetches suggested
// parameters, builds an asset-creation transaction, hands the msgpack bytes to
// a TransactionSigner, submits the signed blob and waits a bounded number of
// rounds for confirmation. A Factory wraps issuance for one owner address and
// keeps an ordered, in-memory registry of what it created.
//
// # Deploy a Token
//
//	network, err := algod.NewClient(algod.Config{Network: "testnet"})
//
//	factory, err := asa.NewFactory(asa.FactoryConfig{
//		Network:      network,
//		OwnerAddress: "<creator-address>",
//	})
//
//	created, err := factory.DeployToken(ctx, asa.TokenConfig{
//		Name:        "MyToken",
//		UnitName:    "MTK",
//		TotalSupply: 1_000_000,
//	}, signer)
//
// # Lookup
//
//	token, ok := factory.FindToken(asa.ByAssetID(created.AssetID))
//	token, ok = factory.FindToken(asa.ByName("mytok"))
//
// # Errors
//
// Failures are one of ConfigurationError, SignerError, NetworkError or
// ConfirmationTimeoutError. A ConfirmationTimeoutError means the transaction
// was submitted but not seen confirmed; callers must reconcile its TxID.
package asa
