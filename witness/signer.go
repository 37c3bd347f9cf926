package witness

import (
	"encoding/json"
	"strings"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

// Signer is a transaction party whose witness authorizes some scope of
// calls: an account plus the coarse scope bitmask and, depending on
// which flags are set, the fine-grained allow-lists.
type Signer struct {
	Account          protocol.Hash160
	Scope            protocol.WitnessScope
	AllowedContracts []protocol.Hash160
	AllowedGroups    []protocol.PublicKey
	Rules            []*Rule
}

// Validate enforces the invariants on Signer: no reserved scope bits, no
// Global-plus-other-flag combination, and no list present without its
// gating flag.
func (s *Signer) Validate() error {
	if err := s.Scope.Validate(); err != nil {
		return err
	}
	if len(s.AllowedContracts) > 0 && !s.Scope.Has(protocol.ScopeCustomContracts) {
		return codec.NewFormatError("signer: allowedContracts present without CustomContracts scope")
	}
	if len(s.AllowedGroups) > 0 && !s.Scope.Has(protocol.ScopeCustomGroups) {
		return codec.NewFormatError("signer: allowedGroups present without CustomGroups scope")
	}
	if len(s.Rules) > 0 && !s.Scope.Has(protocol.ScopeWitnessRules) {
		return codec.NewFormatError("signer: rules present without WitnessRules scope")
	}
	if len(s.AllowedContracts) > protocol.MaxAllowedContracts {
		return codec.NewFormatError("signer: too many allowedContracts: %d", len(s.AllowedContracts))
	}
	if len(s.AllowedGroups) > protocol.MaxAllowedGroups {
		return codec.NewFormatError("signer: too many allowedGroups: %d", len(s.AllowedGroups))
	}
	if len(s.Rules) > protocol.MaxWitnessRules {
		return codec.NewFormatError("signer: too many rules: %d", len(s.Rules))
	}
	return nil
}

// DeserializeSigner reads a Signer: account(20) || scope(1) ||
// [allowedContracts if CustomContracts] || [allowedGroups if CustomGroups]
// || [rules if WitnessRules], validating as it goes.
func DeserializeSigner(r *codec.Reader) (*Signer, error) {
	account, err := r.ReadHash160()
	if err != nil {
		return nil, err
	}

	scopeByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	scope := protocol.WitnessScope(scopeByte)
	if err := scope.Validate(); err != nil {
		return nil, codec.NewFormatError("signer: %v", err)
	}

	s := &Signer{Account: account, Scope: scope}

	if scope.Has(protocol.ScopeCustomContracts) {
		n, err := r.ReadArrayLen(protocol.MaxAllowedContracts)
		if err != nil {
			return nil, err
		}
		s.AllowedContracts = make([]protocol.Hash160, n)
		for i := 0; i < n; i++ {
			h, err := r.ReadHash160()
			if err != nil {
				return nil, err
			}
			s.AllowedContracts[i] = h
		}
	}

	if scope.Has(protocol.ScopeCustomGroups) {
		n, err := r.ReadArrayLen(protocol.MaxAllowedGroups)
		if err != nil {
			return nil, err
		}
		s.AllowedGroups = make([]protocol.PublicKey, n)
		for i := 0; i < n; i++ {
			pk, err := r.ReadPublicKey()
			if err != nil {
				return nil, err
			}
			s.AllowedGroups[i] = pk
		}
	}

	if scope.Has(protocol.ScopeWitnessRules) {
		n, err := r.ReadArrayLen(protocol.MaxWitnessRules)
		if err != nil {
			return nil, err
		}
		s.Rules = make([]*Rule, n)
		for i := 0; i < n; i++ {
			rule, err := DeserializeRule(r)
			if err != nil {
				return nil, err
			}
			s.Rules[i] = rule
		}
	}

	return s, nil
}

// Serialize appends the binary form of s to w. The caller is responsible for
// having built a valid Signer (e.g. via Validate); Serialize does not
// re-check invariants.
func (s *Signer) Serialize(w *codec.Writer) {
	w.WriteHash160(s.Account)
	w.WriteByte(byte(s.Scope))

	if s.Scope.Has(protocol.ScopeCustomContracts) {
		w.WriteVarInt(uint64(len(s.AllowedContracts)))
		for _, h := range s.AllowedContracts {
			w.WriteHash160(h)
		}
	}
	if s.Scope.Has(protocol.ScopeCustomGroups) {
		w.WriteVarInt(uint64(len(s.AllowedGroups)))
		for _, pk := range s.AllowedGroups {
			w.WritePublicKey(pk)
		}
	}
	if s.Scope.Has(protocol.ScopeWitnessRules) {
		w.WriteVarInt(uint64(len(s.Rules)))
		for _, rule := range s.Rules {
			rule.Serialize(w)
		}
	}
}

type signerJSON struct {
	Account          string   `json:"account"`
	Scopes           string   `json:"scopes"`
	AllowedContracts []string `json:"allowedcontracts,omitempty"`
	AllowedGroups    []string `json:"allowedgroups,omitempty"`
	Rules            []*Rule  `json:"rules,omitempty"`
}

// MarshalJSON renders the canonical keys: account, scopes (comma
// joined), allowedcontracts, allowedgroups, rules.
func (s *Signer) MarshalJSON() ([]byte, error) {
	out := signerJSON{
		Account: s.Account.String(),
		Scopes:  s.Scope.String(),
	}
	for _, h := range s.AllowedContracts {
		out.AllowedContracts = append(out.AllowedContracts, h.String())
	}
	for _, pk := range s.AllowedGroups {
		out.AllowedGroups = append(out.AllowedGroups, pk.String())
	}
	out.Rules = s.Rules
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Signer) UnmarshalJSON(data []byte) error {
	var in signerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	account, err := protocol.Hash160FromHex(in.Account)
	if err != nil {
		return codec.NewFormatError("signer: account: %v", err)
	}

	scope, err := protocol.ParseWitnessScope(strings.TrimSpace(in.Scopes))
	if err != nil {
		return codec.NewFormatError("signer: %v", err)
	}

	s.Account = account
	s.Scope = scope
	s.AllowedContracts = nil
	for _, h := range in.AllowedContracts {
		parsed, err := protocol.Hash160FromHex(h)
		if err != nil {
			return codec.NewFormatError("signer: allowedcontracts: %v", err)
		}
		s.AllowedContracts = append(s.AllowedContracts, parsed)
	}
	s.AllowedGroups = nil
	for _, g := range in.AllowedGroups {
		parsed, err := protocol.PublicKeyFromHex(g)
		if err != nil {
			return codec.NewFormatError("signer: allowedgroups: %v", err)
		}
		s.AllowedGroups = append(s.AllowedGroups, parsed)
	}
	s.Rules = in.Rules

	return nil
}
