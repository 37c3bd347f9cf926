package witness

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/common/crypto"
	"github.com/nan01ab/neo/protocol"
)

// MaxScriptLength bounds the size of an invocation or verification script
// accepted off the wire, a generous but finite guard against an adversarial
// peer claiming a multi-gigabyte script.
const MaxScriptLength = 65536

// Witness is the invocation-script + verification-script pair proving a
// signer authorized a transaction. The pair is opaque to the scope
// evaluator: verification itself is delegated to the VM collaborator.
type Witness struct {
	InvocationScript   []byte
	VerificationScript []byte
}

// ScriptHash is the derived identity of the witness: Hash160 of the
// verification script, which must equal the paired signer's Account.
func (w *Witness) ScriptHash() protocol.Hash160 {
	return crypto.ScriptHash(w.VerificationScript)
}

// DeserializeWitness reads invocationScript || verificationScript, each
// var_int length-prefixed and capped at MaxScriptLength.
func DeserializeWitness(r *codec.Reader) (*Witness, error) {
	invocation, err := r.ReadVarBytes(MaxScriptLength)
	if err != nil {
		return nil, err
	}
	verification, err := r.ReadVarBytes(MaxScriptLength)
	if err != nil {
		return nil, err
	}
	return &Witness{InvocationScript: invocation, VerificationScript: verification}, nil
}

// Serialize appends the binary form of w to out.
func (w *Witness) Serialize(out *codec.Writer) {
	out.WriteVarBytes(w.InvocationScript)
	out.WriteVarBytes(w.VerificationScript)
}

type witnessJSON struct {
	Invocation   string `json:"invocation"`
	Verification string `json:"verification"`
}

// MarshalJSON renders both scripts as base64.
func (w *Witness) MarshalJSON() ([]byte, error) {
	return json.Marshal(witnessJSON{
		Invocation:   codec.Base64Bytes(w.InvocationScript),
		Verification: codec.Base64Bytes(w.VerificationScript),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (w *Witness) UnmarshalJSON(data []byte) error {
	var in witnessJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	invocation, err := codec.DecodeBase64Bytes(in.Invocation)
	if err != nil {
		return err
	}
	verification, err := codec.DecodeBase64Bytes(in.Verification)
	if err != nil {
		return err
	}

	w.InvocationScript = invocation
	w.VerificationScript = verification
	return nil
}
