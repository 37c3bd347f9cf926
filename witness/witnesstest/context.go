// Package witnesstest provides a ContextView test double so the condition
// and scope evaluators are directly testable without a VM collaborator.
package witnesstest

import (
	"github.com/nan01ab/neo/protocol"
	"github.com/nan01ab/neo/witness"
)

// Context is a fixed, in-memory ContextView for tests.
type Context struct {
	Current protocol.Hash160
	Calling protocol.Hash160
	Entry   protocol.Hash160
	Groups  map[protocol.Hash160]witness.GroupSet
}

func (c *Context) CurrentScriptHash() protocol.Hash160 { return c.Current }
func (c *Context) CallingScriptHash() protocol.Hash160 { return c.Calling }
func (c *Context) EntryScriptHash() protocol.Hash160   { return c.Entry }

// LookupContractGroups returns the configured group set for h, or an empty
// set if h has no entry.
func (c *Context) LookupContractGroups(h protocol.Hash160) witness.GroupSet {
	if c.Groups == nil {
		return nil
	}
	return c.Groups[h]
}
