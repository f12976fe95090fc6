// Package shared provides common utilities used across the ASA SDK: network
// normalization, default algod endpoints, algod client construction, operator
// environment loading and mnemonic parsing.
//
// # Environment Variables
//
// OperatorConfigFromEnv reads, in order of preference:
//
//   - ALGORAND_NETWORK (or NETWORK), default testnet
//   - ALGORAND_CREATOR_ADDRESS (or CREATOR_ADDRESS)
//   - ALGORAND_MNEMONIC (or MNEMONIC)
//   - ALGOD_ADDRESS, ALGOD_TOKEN
//
// Each of the above can be overridden per network with a MAINNET_ or TESTNET_
// prefix. A .env file in the working directory or any parent is loaded once.
package shared
