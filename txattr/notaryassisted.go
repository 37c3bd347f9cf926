package txattr

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

func init() {
	register(protocol.AttributeNotaryAssisted, false, "NotaryAssisted", func() Attribute { return &NotaryAssisted{} })
}

// NotaryAssisted marks a transaction as relying on the notary service to
// complete its multisignature witnesses, declaring how many additional
// signatures the service is expected to collect.
type NotaryAssisted struct {
	NKeys uint8
}

func (a *NotaryAssisted) Type() protocol.AttributeType { return protocol.AttributeNotaryAssisted }

func (a *NotaryAssisted) Deserialize(r *codec.Reader) error {
	n, err := r.ReadByte()
	if err != nil {
		return err
	}
	a.NKeys = n
	return nil
}

func (a *NotaryAssisted) Serialize(w *codec.Writer) {
	w.WriteByte(a.NKeys)
}

// Verify accepts only while the notary service is active and the declared
// key count is within the configured limit.
func (a *NotaryAssisted) Verify(views *Views, tx TxView) (bool, error) {
	if views == nil || !views.NotaryActive {
		return false, nil
	}
	return int(a.NKeys) <= views.NotaryAssistedLimit, nil
}

// NetworkFee charges the notary service fee per key the service must
// collect, plus one for the sender's own signature.
func (a *NotaryAssisted) NetworkFee(views *Views, tx TxView) int64 {
	if views == nil {
		return 0
	}
	return int64(views.NotaryServiceFee) * (int64(a.NKeys) + 1)
}

type notaryAssistedJSON struct {
	Type  string `json:"type"`
	NKeys uint8  `json:"nkeys"`
}

// MarshalJSON renders {"type":"NotaryAssisted","nkeys":N}.
func (a *NotaryAssisted) MarshalJSON() ([]byte, error) {
	return json.Marshal(notaryAssistedJSON{Type: "NotaryAssisted", NKeys: a.NKeys})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (a *NotaryAssisted) UnmarshalJSON(data []byte) error {
	var in notaryAssistedJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.NKeys = in.NKeys
	return nil
}
