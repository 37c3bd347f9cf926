package txattr

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

func init() {
	register(protocol.AttributeNotValidBefore, false, "NotValidBefore", func() Attribute { return &NotValidBefore{} })
}

// NotValidBefore makes a transaction invalid until the chain reaches a given
// height, the mirror image of the transaction's existing expiry field.
type NotValidBefore struct {
	Height uint32
}

func (a *NotValidBefore) Type() protocol.AttributeType { return protocol.AttributeNotValidBefore }

func (a *NotValidBefore) Deserialize(r *codec.Reader) error {
	h, err := r.ReadUint32LE()
	if err != nil {
		return err
	}
	a.Height = h
	return nil
}

func (a *NotValidBefore) Serialize(w *codec.Writer) {
	w.WriteUint32LE(a.Height)
}

// Verify accepts only once the clock's current height has reached a.Height.
func (a *NotValidBefore) Verify(views *Views, tx TxView) (bool, error) {
	if views == nil || views.Clock == nil {
		return false, nil
	}
	return views.Clock.CurrentHeight() >= a.Height, nil
}

// NetworkFee contributes nothing.
func (a *NotValidBefore) NetworkFee(views *Views, tx TxView) int64 { return 0 }

type notValidBeforeJSON struct {
	Type   string `json:"type"`
	Height uint32 `json:"height"`
}

// MarshalJSON renders {"type":"NotValidBefore","height":N}.
func (a *NotValidBefore) MarshalJSON() ([]byte, error) {
	return json.Marshal(notValidBeforeJSON{Type: "NotValidBefore", Height: a.Height})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (a *NotValidBefore) UnmarshalJSON(data []byte) error {
	var in notValidBeforeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.Height = in.Height
	return nil
}
