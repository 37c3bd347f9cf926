package witness

import "github.com/nan01ab/neo/protocol"

// Authorizes decides whether signer authorizes the current call site
// described by ctx. The scope clauses are OR-combined: a matching Deny
// rule only fails the rules clause, it never revokes an authorization
// already granted by an earlier clause — flags and rules are independent
// permits, and none can revoke another's grant.
func Authorizes(signer *Signer, ctx ContextView) bool {
	if signer.Scope.Has(protocol.ScopeGlobal) {
		return true
	}

	if signer.Scope.Has(protocol.ScopeCalledByEntry) {
		entry := ctx.EntryScriptHash()
		if ctx.CurrentScriptHash() == entry || ctx.CallingScriptHash() == entry {
			return true
		}
	}

	if signer.Scope.Has(protocol.ScopeCustomContracts) {
		current := ctx.CurrentScriptHash()
		for _, h := range signer.AllowedContracts {
			if h == current {
				return true
			}
		}
	}

	if signer.Scope.Has(protocol.ScopeCustomGroups) {
		groups := ctx.LookupContractGroups(ctx.CurrentScriptHash())
		for _, pk := range signer.AllowedGroups {
			if groups.Contains(pk) {
				return true
			}
		}
	}

	if signer.Scope.Has(protocol.ScopeWitnessRules) {
		for _, rule := range signer.Rules {
			if rule.Matches(ctx) {
				return rule.Action == protocol.RuleAllow
			}
		}
	}

	return false
}
