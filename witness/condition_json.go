package witness

import (
	"encoding/json"
	"fmt"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

// conditionTypeNames maps each tag to the JSON "type" string.
var conditionTypeNames = map[protocol.ConditionTag]string{
	protocol.ConditionBoolean:          "Boolean",
	protocol.ConditionNot:              "Not",
	protocol.ConditionAnd:              "And",
	protocol.ConditionOr:               "Or",
	protocol.ConditionScriptHash:       "ScriptHash",
	protocol.ConditionGroup:            "Group",
	protocol.ConditionCalledByEntry:    "CalledByEntry",
	protocol.ConditionCalledByContract: "CalledByContract",
	protocol.ConditionCalledByGroup:    "CalledByGroup",
}

var conditionTagByName = func() map[string]protocol.ConditionTag {
	m := make(map[string]protocol.ConditionTag, len(conditionTypeNames))
	for tag, name := range conditionTypeNames {
		m[name] = tag
	}
	return m
}()

type conditionJSON struct {
	Type        string            `json:"type"`
	Expression  json.RawMessage   `json:"expression,omitempty"`
	Expressions []json.RawMessage `json:"expressions,omitempty"`
	Hash        string            `json:"hash,omitempty"`
	Group       string            `json:"group,omitempty"`
}

// MarshalJSON renders the canonical condition JSON: "type" is the variant
// name, with payload under variant-specific keys.
func (c *Condition) MarshalJSON() ([]byte, error) {
	out := conditionJSON{Type: conditionTypeNames[c.Tag]}

	switch c.Tag {
	case protocol.ConditionBoolean:
		b, err := json.Marshal(boolString(c.Boolean))
		if err != nil {
			return nil, err
		}
		out.Expression = b

	case protocol.ConditionNot:
		b, err := json.Marshal(c.Inner)
		if err != nil {
			return nil, err
		}
		out.Expression = b

	case protocol.ConditionAnd, protocol.ConditionOr:
		out.Expressions = make([]json.RawMessage, len(c.Children))
		for i, child := range c.Children {
			b, err := json.Marshal(child)
			if err != nil {
				return nil, err
			}
			out.Expressions[i] = b
		}

	case protocol.ConditionScriptHash, protocol.ConditionCalledByContract:
		out.Hash = c.Hash.String()

	case protocol.ConditionGroup, protocol.ConditionCalledByGroup:
		out.Group = c.Group.String()

	case protocol.ConditionCalledByEntry:
		// no payload
	}

	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON. It enforces the same nesting
// budget as the binary codec so a JSON peer cannot bypass the depth limit
// the wire format enforces.
func (c *Condition) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalConditionAtDepth(data, protocol.MaxConditionDepth)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

func unmarshalConditionAtDepth(data []byte, maxDepth int) (*Condition, error) {
	var in conditionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	tag, ok := conditionTagByName[in.Type]
	if !ok {
		return nil, codec.NewFormatError("witness condition: unknown JSON type %q", in.Type)
	}

	c := &Condition{Tag: tag}

	switch tag {
	case protocol.ConditionBoolean:
		var s string
		if err := json.Unmarshal(in.Expression, &s); err != nil {
			return nil, err
		}
		b, err := parseBoolString(s)
		if err != nil {
			return nil, err
		}
		c.Boolean = b

	case protocol.ConditionNot:
		if maxDepth == 0 {
			return nil, codec.NewFormatError("witness condition: nesting exceeded")
		}
		inner, err := unmarshalConditionAtDepth(in.Expression, maxDepth-1)
		if err != nil {
			return nil, err
		}
		c.Inner = inner

	case protocol.ConditionAnd, protocol.ConditionOr:
		if maxDepth == 0 {
			return nil, codec.NewFormatError("witness condition: nesting exceeded")
		}
		if len(in.Expressions) > protocol.MaxConditionChildren {
			return nil, codec.NewFormatError("witness condition: too many expressions: %d", len(in.Expressions))
		}
		children := make([]*Condition, len(in.Expressions))
		for i, raw := range in.Expressions {
			child, err := unmarshalConditionAtDepth(raw, maxDepth-1)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		c.Children = children

	case protocol.ConditionScriptHash, protocol.ConditionCalledByContract:
		h, err := protocol.Hash160FromHex(in.Hash)
		if err != nil {
			return nil, codec.NewFormatError("witness condition: %v", err)
		}
		c.Hash = h

	case protocol.ConditionGroup, protocol.ConditionCalledByGroup:
		pk, err := protocol.PublicKeyFromHex(in.Group)
		if err != nil {
			return nil, codec.NewFormatError("witness condition: %v", err)
		}
		c.Group = pk

	case protocol.ConditionCalledByEntry:
		// no payload
	}

	return c, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseBoolString(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("witness condition: invalid boolean expression %q", s)
	}
}
