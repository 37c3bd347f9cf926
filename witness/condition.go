// Package witness implements the signer model, the witness-condition
// predicate language, and the scope evaluator that together decide whether a
// transaction's signatures authorize the side effects of its script
// execution.
package witness

import (
	"fmt"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

// Condition is the tagged predicate AST. It is implemented as a
// closed tagged union — a discriminant plus per-variant payload fields —
// rather than an interface hierarchy, so dispatch is a single switch on Tag
// and the bounded-depth budget is threaded explicitly through construction.
type Condition struct {
	Tag protocol.ConditionTag

	Boolean  bool               // ConditionBoolean
	Inner    *Condition         // ConditionNot
	Children []*Condition       // ConditionAnd, ConditionOr
	Hash     protocol.Hash160   // ConditionScriptHash, ConditionCalledByContract
	Group    protocol.PublicKey // ConditionGroup, ConditionCalledByGroup
	// ConditionCalledByEntry carries no payload.
}

func NewBoolean(b bool) *Condition { return &Condition{Tag: protocol.ConditionBoolean, Boolean: b} }

func NewNot(inner *Condition) *Condition { return &Condition{Tag: protocol.ConditionNot, Inner: inner} }

func NewAnd(children []*Condition) *Condition {
	return &Condition{Tag: protocol.ConditionAnd, Children: children}
}

func NewOr(children []*Condition) *Condition {
	return &Condition{Tag: protocol.ConditionOr, Children: children}
}

func NewScriptHash(h protocol.Hash160) *Condition {
	return &Condition{Tag: protocol.ConditionScriptHash, Hash: h}
}

func NewGroup(pk protocol.PublicKey) *Condition {
	return &Condition{Tag: protocol.ConditionGroup, Group: pk}
}

func NewCalledByEntry() *Condition { return &Condition{Tag: protocol.ConditionCalledByEntry} }

func NewCalledByContract(h protocol.Hash160) *Condition {
	return &Condition{Tag: protocol.ConditionCalledByContract, Hash: h}
}

func NewCalledByGroup(pk protocol.PublicKey) *Condition {
	return &Condition{Tag: protocol.ConditionCalledByGroup, Group: pk}
}

// DeserializeCondition reads a WitnessCondition from the front of r, bounded
// to the protocol's nesting depth.
func DeserializeCondition(r *codec.Reader) (*Condition, error) {
	return deserializeCondition(r, protocol.MaxConditionDepth)
}

func deserializeCondition(r *codec.Reader, maxDepth int) (*Condition, error) {
	tagByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	tag := protocol.ConditionTag(tagByte)

	switch tag {
	case protocol.ConditionBoolean:
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		return NewBoolean(b != 0), nil

	case protocol.ConditionNot:
		if maxDepth == 0 {
			return nil, codec.NewFormatError("witness condition: nesting exceeded")
		}
		inner, err := deserializeCondition(r, maxDepth-1)
		if err != nil {
			return nil, err
		}
		return NewNot(inner), nil

	case protocol.ConditionAnd, protocol.ConditionOr:
		if maxDepth == 0 {
			return nil, codec.NewFormatError("witness condition: nesting exceeded")
		}
		n, err := r.ReadArrayLen(protocol.MaxConditionChildren)
		if err != nil {
			return nil, err
		}
		children := make([]*Condition, n)
		for i := 0; i < n; i++ {
			c, err := deserializeCondition(r, maxDepth-1)
			if err != nil {
				return nil, err
			}
			children[i] = c
		}
		if tag == protocol.ConditionAnd {
			return NewAnd(children), nil
		}
		return NewOr(children), nil

	case protocol.ConditionScriptHash:
		h, err := r.ReadHash160()
		if err != nil {
			return nil, err
		}
		return NewScriptHash(h), nil

	case protocol.ConditionGroup:
		pk, err := r.ReadPublicKey()
		if err != nil {
			return nil, err
		}
		return NewGroup(pk), nil

	case protocol.ConditionCalledByEntry:
		return NewCalledByEntry(), nil

	case protocol.ConditionCalledByContract:
		h, err := r.ReadHash160()
		if err != nil {
			return nil, err
		}
		return NewCalledByContract(h), nil

	case protocol.ConditionCalledByGroup:
		pk, err := r.ReadPublicKey()
		if err != nil {
			return nil, err
		}
		return NewCalledByGroup(pk), nil

	default:
		return nil, codec.NewFormatError("witness condition: unknown tag 0x%02x", tagByte)
	}
}

// Serialize appends the binary form of c to w.
func (c *Condition) Serialize(w *codec.Writer) {
	w.WriteByte(byte(c.Tag))
	switch c.Tag {
	case protocol.ConditionBoolean:
		if c.Boolean {
			w.WriteByte(1)
		} else {
			w.WriteByte(0)
		}
	case protocol.ConditionNot:
		c.Inner.Serialize(w)
	case protocol.ConditionAnd, protocol.ConditionOr:
		w.WriteVarInt(uint64(len(c.Children)))
		for _, child := range c.Children {
			child.Serialize(w)
		}
	case protocol.ConditionScriptHash, protocol.ConditionCalledByContract:
		w.WriteHash160(c.Hash)
	case protocol.ConditionGroup, protocol.ConditionCalledByGroup:
		w.WritePublicKey(c.Group)
	case protocol.ConditionCalledByEntry:
		// no payload
	}
}

// Evaluate walks the condition tree against ctx. It is total and side-effect
// free for any well-formed tree: short circuiting in And/Or only skips
// further boolean combination, never a collaborator call that would be
// needed regardless — short-circuit evaluators must still be total.
func (c *Condition) Evaluate(ctx ContextView) bool {
	switch c.Tag {
	case protocol.ConditionBoolean:
		return c.Boolean

	case protocol.ConditionNot:
		return !c.Inner.Evaluate(ctx)

	case protocol.ConditionAnd:
		for _, child := range c.Children {
			if !child.Evaluate(ctx) {
				return false
			}
		}
		return true

	case protocol.ConditionOr:
		for _, child := range c.Children {
			if child.Evaluate(ctx) {
				return true
			}
		}
		return false

	case protocol.ConditionScriptHash:
		return ctx.CurrentScriptHash() == c.Hash

	case protocol.ConditionCalledByEntry:
		entry := ctx.EntryScriptHash()
		return ctx.CurrentScriptHash() == entry || ctx.CallingScriptHash() == entry

	case protocol.ConditionCalledByContract:
		return ctx.CallingScriptHash() == c.Hash

	case protocol.ConditionGroup:
		return ctx.LookupContractGroups(ctx.CurrentScriptHash()).Contains(c.Group)

	case protocol.ConditionCalledByGroup:
		return ctx.LookupContractGroups(ctx.CallingScriptHash()).Contains(c.Group)

	default:
		// Unreachable for any tree built via the constructors or
		// DeserializeCondition; both close the tag space.
		panic(fmt.Sprintf("witness: condition has unknown tag 0x%02x", byte(c.Tag)))
	}
}
