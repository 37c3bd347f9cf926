package witness

import "github.com/nan01ab/neo/protocol"

// GroupSet is the read-only result of a manifest-group lookup: the set of
// public keys a contract's deployment manifest declares as trust-group keys.
type GroupSet map[protocol.PublicKey]struct{}

// Contains reports whether pk is a member of the set. A nil/empty set
// behaves like the empty set: a missing contract manifest yields an
// empty group set, treated as false.
func (s GroupSet) Contains(pk protocol.PublicKey) bool {
	_, ok := s[pk]
	return ok
}

// NewGroupSet builds a GroupSet from a slice of public keys.
func NewGroupSet(keys []protocol.PublicKey) GroupSet {
	s := make(GroupSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// ContextView is the immutable snapshot of the current call site the
// condition evaluator and scope evaluator are pure functions of.
// It is supplied by the VM collaborator; the core never holds one itself.
type ContextView interface {
	// CurrentScriptHash is the script hash currently executing.
	CurrentScriptHash() protocol.Hash160
	// CallingScriptHash is the script hash that invoked the current one, or
	// the zero hash if the current script is the entry.
	CallingScriptHash() protocol.Hash160
	// EntryScriptHash is the top-level script the transaction invoked.
	EntryScriptHash() protocol.Hash160
	// LookupContractGroups returns the manifest groups declared by the
	// contract deployed at h, or an empty set if h has no known manifest.
	LookupContractGroups(h protocol.Hash160) GroupSet
}
