// Package signer provides in-process transaction signers for asa.
//
// Account holds an ed25519 key recovered from a 25-word mnemonic and signs
// asset-creation transactions whose sender is its own address.
package signer
