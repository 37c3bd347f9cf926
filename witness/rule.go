package witness

import (
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

// Rule is the (action, condition) allow/deny wrapper over a Condition tree.
// Rules are evaluated left to right within a Signer; the first matching
// rule decides.
type Rule struct {
	Action    protocol.RuleAction
	Condition *Condition
}

// NewRule builds a Rule, primarily for tests and builders.
func NewRule(action protocol.RuleAction, condition *Condition) *Rule {
	return &Rule{Action: action, Condition: condition}
}

// Matches reports whether the rule's condition holds against ctx.
func (r *Rule) Matches(ctx ContextView) bool {
	return r.Condition.Evaluate(ctx)
}

// DeserializeRule reads a WitnessRule: one action byte followed by a
// condition. Any action byte other than Allow/Deny is a format error.
func DeserializeRule(r *codec.Reader) (*Rule, error) {
	actionByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	action := protocol.RuleAction(actionByte)
	if action != protocol.RuleAllow && action != protocol.RuleDeny {
		return nil, codec.NewFormatError("witness rule: invalid action byte 0x%02x", actionByte)
	}

	cond, err := DeserializeCondition(r)
	if err != nil {
		return nil, err
	}

	return &Rule{Action: action, Condition: cond}, nil
}

// Serialize appends the binary form of the rule to w.
func (r *Rule) Serialize(w *codec.Writer) {
	w.WriteByte(byte(r.Action))
	r.Condition.Serialize(w)
}

type ruleJSON struct {
	Action    string     `json:"action"`
	Condition *Condition `json:"condition"`
}

// MarshalJSON renders {"action": "Allow"|"Deny", "condition": {...}}.
func (r *Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ruleJSON{Action: r.Action.String(), Condition: r.Condition})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var in ruleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var action protocol.RuleAction
	switch in.Action {
	case "Allow":
		action = protocol.RuleAllow
	case "Deny":
		action = protocol.RuleDeny
	default:
		return codec.NewFormatError("witness rule: invalid action %q", in.Action)
	}

	r.Action = action
	r.Condition = in.Condition
	return nil
}
