package witness_test

import (
	"testing"

	"github.com/nan01ab/neo/protocol"
	"github.com/nan01ab/neo/witness"
	"github.com/nan01ab/neo/witness/witnesstest"
)

func TestAuthorizesGlobal(t *testing.T) {
	signer := &witness.Signer{Scope: protocol.ScopeGlobal}
	ctx := &witnesstest.Context{Current: protocol.Hash160{1}, Calling: protocol.Hash160{2}, Entry: protocol.Hash160{3}}
	if !witness.Authorizes(signer, ctx) {
		t.Error("Global scope should authorize any call site")
	}
}

func TestAuthorizesCalledByEntry(t *testing.T) {
	entry := protocol.Hash160{9}
	signer := &witness.Signer{Scope: protocol.ScopeCalledByEntry}

	atEntry := &witnesstest.Context{Current: entry, Calling: protocol.Hash160{}, Entry: entry}
	if !witness.Authorizes(signer, atEntry) {
		t.Error("CalledByEntry should authorize when the current script is the entry")
	}

	calledFromEntry := &witnesstest.Context{Current: protocol.Hash160{2}, Calling: entry, Entry: entry}
	if !witness.Authorizes(signer, calledFromEntry) {
		t.Error("CalledByEntry should authorize when the calling script is the entry")
	}

	deepCall := &witnesstest.Context{Current: protocol.Hash160{2}, Calling: protocol.Hash160{3}, Entry: entry}
	if witness.Authorizes(signer, deepCall) {
		t.Error("CalledByEntry should not authorize a call nested past the entry's direct callee")
	}
}

func TestAuthorizesCustomContracts(t *testing.T) {
	allowed := protocol.Hash160{5}
	signer := &witness.Signer{Scope: protocol.ScopeCustomContracts, AllowedContracts: []protocol.Hash160{allowed}}

	match := &witnesstest.Context{Current: allowed}
	if !witness.Authorizes(signer, match) {
		t.Error("expected authorization for an allow-listed contract")
	}

	noMatch := &witnesstest.Context{Current: protocol.Hash160{6}}
	if witness.Authorizes(signer, noMatch) {
		t.Error("expected no authorization for a contract not on the allow list")
	}
}

func TestAuthorizesCustomGroups(t *testing.T) {
	current := protocol.Hash160{5}
	pk := protocol.PublicKey{0x02, 1}
	signer := &witness.Signer{Scope: protocol.ScopeCustomGroups, AllowedGroups: []protocol.PublicKey{pk}}

	ctx := &witnesstest.Context{
		Current: current,
		Groups:  map[protocol.Hash160]witness.GroupSet{current: witness.NewGroupSet([]protocol.PublicKey{pk})},
	}
	if !witness.Authorizes(signer, ctx) {
		t.Error("expected authorization when the current contract is in an allowed group")
	}
}

// Deny rules must only fail the rules clause — never revoke authorization
// already granted by an earlier clause.
func TestAuthorizesDenyRuleDoesNotRevokeEarlierGrant(t *testing.T) {
	current := protocol.Hash160{5}
	signer := &witness.Signer{
		Scope:            protocol.ScopeCustomContracts | protocol.ScopeWitnessRules,
		AllowedContracts: []protocol.Hash160{current},
		Rules: []*witness.Rule{
			witness.NewRule(protocol.RuleDeny, witness.NewScriptHash(current)),
		},
	}
	ctx := &witnesstest.Context{Current: current}

	if !witness.Authorizes(signer, ctx) {
		t.Error("a Deny rule must not revoke the grant already made by CustomContracts")
	}
}

func TestAuthorizesWitnessRulesFirstMatchWins(t *testing.T) {
	current := protocol.Hash160{5}
	signer := &witness.Signer{
		Scope: protocol.ScopeWitnessRules,
		Rules: []*witness.Rule{
			witness.NewRule(protocol.RuleDeny, witness.NewBoolean(true)),
			witness.NewRule(protocol.RuleAllow, witness.NewBoolean(true)),
		},
	}
	ctx := &witnesstest.Context{Current: current}

	if witness.Authorizes(signer, ctx) {
		t.Error("the first matching rule (Deny) should decide, not the later Allow rule")
	}
}

func TestAuthorizesNoneGrantsNothing(t *testing.T) {
	signer := &witness.Signer{Scope: protocol.ScopeNone}
	ctx := &witnesstest.Context{Current: protocol.Hash160{1}}
	if witness.Authorizes(signer, ctx) {
		t.Error("a signer with no scope flags should authorize nothing")
	}
}
