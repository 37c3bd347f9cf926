package storage

import (
	"encoding/json"

	"github.com/nan01ab/neo/common/utils"
	"github.com/nan01ab/neo/protocol"
	"github.com/nan01ab/neo/witness"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

// Store backs the read-only collaborator interfaces the witness and
// txattr packages depend on with the node's leveldb instance. None of
// the evaluators import this package; it is wired in by cmd/witnessctl.
type Store struct {
	db *leveldb.DB
}

// NewStore wraps an already-opened leveldb handle.
func NewStore(db *leveldb.DB) *Store {
	return &Store{db: db}
}

// PutContractGroups caches the manifest group keys declared by contract, as
// a JSON array of compressed public keys under protocol.PrefixContractGroups.
func (s *Store) PutContractGroups(contract protocol.Hash160, groups []protocol.PublicKey) error {
	hexGroups := make([]string, len(groups))
	for i, pk := range groups {
		hexGroups[i] = pk.String()
	}
	data, err := json.Marshal(hexGroups)
	if err != nil {
		return err
	}
	return s.db.Put(utils.GetContractGroupsKey(contract), data, nil)
}

// LookupContractGroups implements witness.ContextView's collaborator hook:
// a missing manifest yields an empty set rather than an error.
func (s *Store) LookupContractGroups(contract protocol.Hash160) witness.GroupSet {
	data, err := s.db.Get(utils.GetContractGroupsKey(contract), nil)
	if err != nil {
		return nil
	}

	var hexGroups []string
	if err := json.Unmarshal(data, &hexGroups); err != nil {
		return nil
	}

	keys := make([]protocol.PublicKey, 0, len(hexGroups))
	for _, h := range hexGroups {
		pk, err := protocol.PublicKeyFromHex(h)
		if err != nil {
			continue
		}
		keys = append(keys, pk)
	}
	return witness.NewGroupSet(keys)
}

// MarkTransaction records txHash as present on chain, under
// protocol.PrefixLedgerTx.
func (s *Store) MarkTransaction(txHash protocol.Hash256) error {
	return s.db.Put(utils.GetLedgerTxKey(txHash), []byte{1}, nil)
}

// ContainsTransaction implements txattr.LedgerView.
func (s *Store) ContainsTransaction(txHash protocol.Hash256) bool {
	ok, err := s.db.Has(utils.GetLedgerTxKey(txHash), nil)
	return err == nil && ok
}

// MarkCommitteeMember records account as a current committee member, under
// protocol.PrefixCommittee.
func (s *Store) MarkCommitteeMember(account protocol.Hash160) error {
	return s.db.Put(utils.GetCommitteeKey(account), []byte{1}, nil)
}

// IsCommitteeMember implements txattr.CommitteeView.
func (s *Store) IsCommitteeMember(account protocol.Hash160) bool {
	ok, err := s.db.Has(utils.GetCommitteeKey(account), nil)
	return err == nil && ok
}

// MarkOracleRequestPending records id as an outstanding oracle request,
// under protocol.PrefixOracleRequest.
func (s *Store) MarkOracleRequestPending(id uint64) error {
	return s.db.Put(utils.GetOracleRequestKey(id), []byte{1}, nil)
}

// ClearOracleRequest removes id once its response lands on chain.
func (s *Store) ClearOracleRequest(id uint64) error {
	err := s.db.Delete(utils.GetOracleRequestKey(id), nil)
	if err == errors.ErrNotFound {
		return nil
	}
	return err
}

// HasPendingRequest implements txattr.OracleState.
func (s *Store) HasPendingRequest(id uint64) bool {
	ok, err := s.db.Has(utils.GetOracleRequestKey(id), nil)
	return err == nil && ok
}
