// Package txattr implements the open transaction-attribute framework: a
// polymorphic family of typed attributes, each carrying its own consensus
// verify hook and network-fee hook, registered once at process start and
// never touched by reflection afterward.
package txattr

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

// TxView is the narrow read-only slice of transaction state an attribute's
// hooks need: who pays the fee and how many signers are present. The full
// transaction type is an external collaborator.
type TxView interface {
	Sender() protocol.Hash160
	SignerCount() int
}

// Views bundles the read-only collaborators an attribute's hooks may
// consult, plus the per-attribute fee constants. None of it is owned by
// this package; it is supplied by the caller each verification.
type Views struct {
	Ledger    LedgerView
	Committee CommitteeView
	Oracle    OracleState
	Clock     Clock

	ConflictsBaseFee    uint64
	NotaryServiceFee    uint64
	NotaryAssistedLimit int
	NotaryActive        bool
}

// LedgerView answers whether a transaction hash is already on chain, used
// by Conflicts.
type LedgerView interface {
	ContainsTransaction(h protocol.Hash256) bool
}

// CommitteeView answers committee membership, used by HighPriority.
type CommitteeView interface {
	IsCommitteeMember(account protocol.Hash160) bool
}

// OracleState answers whether an oracle request is outstanding, used by
// OracleResponse.
type OracleState interface {
	HasPendingRequest(id uint64) bool
}

// Clock answers the current block height, used by NotValidBefore.
type Clock interface {
	CurrentHeight() uint32
}

// Attribute is implemented by every attribute variant: a type tag, a
// cardinality flag, and the two consensus hooks. Deserialize/Serialize
// handle only the payload; the one-byte type tag is handled by the registry
// so a new attribute type is wired in one place (DESIGN.md).
type Attribute interface {
	Type() protocol.AttributeType
	Deserialize(r *codec.Reader) error
	Serialize(w *codec.Writer)
	Verify(views *Views, tx TxView) (bool, error)
	NetworkFee(views *Views, tx TxView) int64
}

type registryEntry struct {
	allowMultiple bool
	jsonName      string
	new           func() Attribute
}

// registry is populated once by the init() calls in each attribute's file
// and never mutated afterward.
var registry = map[protocol.AttributeType]registryEntry{}

// jsonNameToType is the inverse index used by UnmarshalAttributeJSON.
var jsonNameToType = map[string]protocol.AttributeType{}

func register(t protocol.AttributeType, allowMultiple bool, jsonName string, new func() Attribute) {
	registry[t] = registryEntry{allowMultiple: allowMultiple, jsonName: jsonName, new: new}
	jsonNameToType[jsonName] = t
}

// AllowsMultiple reports whether t may appear more than once in a
// transaction's attribute vector.
func AllowsMultiple(t protocol.AttributeType) bool {
	return registry[t].allowMultiple
}

// DeserializeAttribute reads the one-byte type tag and delegates payload
// parsing to the registered constructor.
func DeserializeAttribute(r *codec.Reader) (Attribute, error) {
	tagByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	entry, ok := registry[protocol.AttributeType(tagByte)]
	if !ok {
		return nil, codec.NewFormatError("transaction attribute: unknown type 0x%02x", tagByte)
	}

	attr := entry.new()
	if err := attr.Deserialize(r); err != nil {
		return nil, err
	}
	return attr, nil
}

// SerializeAttribute writes the one-byte type tag followed by attr's payload.
func SerializeAttribute(w *codec.Writer, attr Attribute) {
	w.WriteByte(byte(attr.Type()))
	attr.Serialize(w)
}

// DeserializeAttributeList reads a var_int count followed by that many
// attributes, then enforces the at-most-one-per-type cardinality rule for
// any type that does not declare allowMultiple.
func DeserializeAttributeList(r *codec.Reader, maxCount int) ([]Attribute, error) {
	n, err := r.ReadArrayLen(maxCount)
	if err != nil {
		return nil, err
	}

	attrs := make([]Attribute, n)
	for i := 0; i < n; i++ {
		attr, err := DeserializeAttribute(r)
		if err != nil {
			return nil, err
		}
		attrs[i] = attr
	}

	if err := ValidateCardinality(attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// ValidateCardinality rejects an attribute vector containing more than one
// instance of a type whose registry entry does not set allowMultiple.
func ValidateCardinality(attrs []Attribute) error {
	seen := make(map[protocol.AttributeType]int)
	for _, attr := range attrs {
		seen[attr.Type()]++
	}
	for t, count := range seen {
		if count > 1 && !AllowsMultiple(t) {
			return codec.NewFormatError("transaction attribute: type 0x%02x may not repeat (got %d)", byte(t), count)
		}
	}
	return nil
}

// VerifyAll runs every attribute's Verify hook, short-circuiting on the
// first failure. A policy failure (ok == false) is distinct from a format
// error: it returns (false, nil), not an error.
func VerifyAll(views *Views, tx TxView, attrs []Attribute) (bool, error) {
	for _, attr := range attrs {
		ok, err := attr.Verify(views, tx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// TotalNetworkFee sums every attribute's fee contribution.
func TotalNetworkFee(views *Views, tx TxView, attrs []Attribute) int64 {
	var total int64
	for _, attr := range attrs {
		total += attr.NetworkFee(views, tx)
	}
	return total
}

type typeEnvelope struct {
	Type string `json:"type"`
}

// UnmarshalAttributeJSON decodes a single JSON-encoded attribute by first
// peeking its "type" field, then delegating the remaining fields to that
// type's own json.Unmarshaler.
func UnmarshalAttributeJSON(data []byte) (Attribute, error) {
	var env typeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	t, ok := jsonNameToType[env.Type]
	if !ok {
		return nil, codec.NewFormatError("transaction attribute: unknown type %q", env.Type)
	}

	attr := registry[t].new()
	unmarshaler, ok := attr.(json.Unmarshaler)
	if !ok {
		return nil, codec.NewFormatError("transaction attribute: type %q has no JSON form", env.Type)
	}
	if err := unmarshaler.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return attr, nil
}
