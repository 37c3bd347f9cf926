package protocol

// Storage key prefixes for the leveldb-backed collaborator caches in package
// storage, using a flat "noun:qualifier:" key convention. This core only
// needs the narrower set below, since the ledger and chain store themselves
// are external collaborators.
const (
	// PrefixContractGroups: group:ScriptHash = JSON array of compressed pubkeys.
	PrefixContractGroups = "group:"

	// PrefixLedgerTx: ledgertx:Hash256 = presence marker, used by
	// LedgerView.ContainsTransaction.
	PrefixLedgerTx = "ledgertx:"

	// PrefixOracleRequest: oracle:Id = presence marker for a pending request.
	PrefixOracleRequest = "oracle:"

	// PrefixCommittee: committee:ScriptHash = presence marker.
	PrefixCommittee = "committee:"

	// PrefixWalletAccount: wallet:ScriptHash = gob-encoded wallet account.
	PrefixWalletAccount = "wallet:"
)
