package txattr

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

func init() {
	register(protocol.AttributeConflicts, true, "Conflicts", func() Attribute { return &Conflicts{} })
}

// Conflicts declares that this transaction invalidates another transaction
// hash still sitting in the mempool (not yet on chain), letting a fee-bumped
// replacement displace the original. Unlike the other built-in attributes,
// several Conflicts entries may appear on one transaction, one per
// displaced hash.
type Conflicts struct {
	Hash protocol.Hash256
}

func (a *Conflicts) Type() protocol.AttributeType { return protocol.AttributeConflicts }

func (a *Conflicts) Deserialize(r *codec.Reader) error {
	h, err := r.ReadHash256()
	if err != nil {
		return err
	}
	a.Hash = h
	return nil
}

func (a *Conflicts) Serialize(w *codec.Writer) {
	w.WriteHash256(a.Hash)
}

// Verify accepts unless the conflicting hash is already confirmed on chain
// — a confirmed transaction cannot retroactively be displaced.
func (a *Conflicts) Verify(views *Views, tx TxView) (bool, error) {
	if views == nil || views.Ledger == nil {
		return false, nil
	}
	return !views.Ledger.ContainsTransaction(a.Hash), nil
}

// NetworkFee charges the conflicts base fee once per signer on the
// displacing transaction, matching the convention that a Conflicts
// attribute costs more the more signatures must be re-verified.
func (a *Conflicts) NetworkFee(views *Views, tx TxView) int64 {
	if views == nil {
		return 0
	}
	return int64(views.ConflictsBaseFee) * int64(tx.SignerCount())
}

type conflictsJSON struct {
	Type string `json:"type"`
	Hash string `json:"hash"`
}

// MarshalJSON renders the conflicting hash as 0x-prefixed big-endian hex,
// the same convention as every other hash value in this core.
func (a *Conflicts) MarshalJSON() ([]byte, error) {
	return json.Marshal(conflictsJSON{Type: "Conflicts", Hash: a.Hash.String()})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (a *Conflicts) UnmarshalJSON(data []byte) error {
	var in conflictsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	h, err := protocol.Hash256FromHex(in.Hash)
	if err != nil {
		return codec.NewFormatError("conflicts: hash: %v", err)
	}
	a.Hash = h
	return nil
}
