// Package algod adapts an algod REST node to asa.NetworkClient.
//
// The client reads suggested parameters, submits signed transaction blobs and
// waits for confirmation by polling the pending-transaction endpoint once per
// round, stepping with the node's wait-for-block call.
//
//	client, err := algod.NewClient(algod.Config{Network: "testnet"})
//	confirmation, err := client.WaitForConfirmation(ctx, txID, 4)
package algod
