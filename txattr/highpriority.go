package txattr

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

func init() {
	register(protocol.AttributeHighPriority, false, "HighPriority", func() Attribute { return &HighPriority{} })
}

// HighPriority marks a transaction as exempt from the regular mempool
// priority ordering. It carries no payload; only committee members may use
// it.
type HighPriority struct{}

func (a *HighPriority) Type() protocol.AttributeType { return protocol.AttributeHighPriority }

func (a *HighPriority) Deserialize(r *codec.Reader) error { return nil }

func (a *HighPriority) Serialize(w *codec.Writer) {}

// Verify accepts only if the sending account is a committee member.
func (a *HighPriority) Verify(views *Views, tx TxView) (bool, error) {
	if views == nil || views.Committee == nil {
		return false, nil
	}
	return views.Committee.IsCommitteeMember(tx.Sender()), nil
}

// NetworkFee contributes nothing; high-priority status is not itself billed.
func (a *HighPriority) NetworkFee(views *Views, tx TxView) int64 { return 0 }

// MarshalJSON renders {"type":"HighPriority"}.
func (a *HighPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(typeEnvelope{Type: "HighPriority"})
}

// UnmarshalJSON accepts any envelope with type "HighPriority"; there is no
// further payload to decode.
func (a *HighPriority) UnmarshalJSON(data []byte) error {
	return nil
}
