package utils

import (
	"github.com/nan01ab/neo/protocol"
)

// GetContractGroupsKey builds the storage key for a contract's cached group
// membership (protocol.PrefixContractGroups).
func GetContractGroupsKey(contract protocol.Hash160) []byte {
	return []byte(protocol.PrefixContractGroups + hash160Hex(contract))
}

// GetLedgerTxKey builds the storage key for a transaction's on-chain
// presence marker (protocol.PrefixLedgerTx).
func GetLedgerTxKey(txHash protocol.Hash256) []byte {
	return []byte(protocol.PrefixLedgerTx + HashToString(txHash))
}

// GetOracleRequestKey builds the storage key for a pending oracle
// request's presence marker (protocol.PrefixOracleRequest).
func GetOracleRequestKey(id uint64) []byte {
	return []byte(protocol.PrefixOracleRequest + Uint64ToString(id))
}

// GetCommitteeKey builds the storage key for a committee member's presence
// marker (protocol.PrefixCommittee).
func GetCommitteeKey(account protocol.Hash160) []byte {
	return []byte(protocol.PrefixCommittee + hash160Hex(account))
}

// GetWalletAccountKey builds the storage key for a wallet-held account's
// gob-encoded record (protocol.PrefixWalletAccount).
func GetWalletAccountKey(account protocol.Hash160) []byte {
	return []byte(protocol.PrefixWalletAccount + hash160Hex(account))
}

// hash160Hex renders a Hash160 as hex without the 0x prefix, the compact
// form used for storage key suffixes (as opposed to the 0x-prefixed JSON
// wire form).
func hash160Hex(h protocol.Hash160) string {
	return h.String()[2:]
}
