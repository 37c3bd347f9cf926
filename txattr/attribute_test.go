package txattr_test

import (
	"encoding/json"
	"testing"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
	"github.com/nan01ab/neo/txattr"
)

type fakeTxView struct {
	sender      protocol.Hash160
	signerCount int
}

func (f fakeTxView) Sender() protocol.Hash160 { return f.sender }
func (f fakeTxView) SignerCount() int         { return f.signerCount }

type fakeLedger struct{ onChain map[protocol.Hash256]bool }

func (l fakeLedger) ContainsTransaction(h protocol.Hash256) bool { return l.onChain[h] }

type fakeCommittee struct{ members map[protocol.Hash160]bool }

func (c fakeCommittee) IsCommitteeMember(h protocol.Hash160) bool { return c.members[h] }

type fakeOracle struct{ pending map[uint64]bool }

func (o fakeOracle) HasPendingRequest(id uint64) bool { return o.pending[id] }

type fakeClock struct{ height uint32 }

func (c fakeClock) CurrentHeight() uint32 { return c.height }

func roundTripBinary(t *testing.T, attr txattr.Attribute) txattr.Attribute {
	t.Helper()
	w := codec.NewWriter()
	txattr.SerializeAttribute(w, attr)

	r := codec.NewReader(w.Bytes())
	got, err := txattr.DeserializeAttribute(r)
	if err != nil {
		t.Fatalf("DeserializeAttribute: %v", err)
	}
	if !r.AtEnd() {
		t.Fatal("trailing bytes after deserializing attribute")
	}
	return got
}

func TestHighPriorityRoundTripAndVerify(t *testing.T) {
	attr := &txattr.HighPriority{}
	got := roundTripBinary(t, attr)
	if got.Type() != protocol.AttributeHighPriority {
		t.Fatalf("unexpected type: %v", got.Type())
	}

	sender := protocol.Hash160{1}
	views := &txattr.Views{Committee: fakeCommittee{members: map[protocol.Hash160]bool{sender: true}}}
	ok, err := attr.Verify(views, fakeTxView{sender: sender})
	if err != nil || !ok {
		t.Fatalf("expected verify true for a committee sender, got %v, %v", ok, err)
	}

	views2 := &txattr.Views{Committee: fakeCommittee{}}
	ok, err = attr.Verify(views2, fakeTxView{sender: sender})
	if err != nil || ok {
		t.Fatalf("expected verify false for a non-committee sender, got %v, %v", ok, err)
	}

	if attr.NetworkFee(views, fakeTxView{}) != 0 {
		t.Error("HighPriority must not contribute to network fee")
	}
}

func TestNotValidBeforeRoundTripAndVerify(t *testing.T) {
	attr := &txattr.NotValidBefore{Height: 100}
	got := roundTripBinary(t, attr).(*txattr.NotValidBefore)
	if got.Height != 100 {
		t.Fatalf("round trip height mismatch: got %d", got.Height)
	}

	views := &txattr.Views{Clock: fakeClock{height: 99}}
	if ok, _ := attr.Verify(views, fakeTxView{}); ok {
		t.Error("expected verify false before the configured height")
	}
	views.Clock = fakeClock{height: 100}
	if ok, _ := attr.Verify(views, fakeTxView{}); !ok {
		t.Error("expected verify true once the chain reaches the configured height")
	}
}

func TestOracleResponseRoundTripAndVerify(t *testing.T) {
	attr := &txattr.OracleResponse{ID: 42, Code: txattr.OracleSuccess, Result: []byte("payload")}
	got := roundTripBinary(t, attr).(*txattr.OracleResponse)
	if got.ID != 42 || got.Code != txattr.OracleSuccess || string(got.Result) != "payload" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	views := &txattr.Views{Oracle: fakeOracle{pending: map[uint64]bool{42: true}}}
	if ok, _ := attr.Verify(views, fakeTxView{}); !ok {
		t.Error("expected verify true for an outstanding request")
	}
	views.Oracle = fakeOracle{}
	if ok, _ := attr.Verify(views, fakeTxView{}); ok {
		t.Error("expected verify false when no matching request is pending")
	}
}

func TestNotaryAssistedRoundTripAndFee(t *testing.T) {
	attr := &txattr.NotaryAssisted{NKeys: 3}
	got := roundTripBinary(t, attr).(*txattr.NotaryAssisted)
	if got.NKeys != 3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	views := &txattr.Views{NotaryActive: true, NotaryAssistedLimit: 5, NotaryServiceFee: 10}
	if ok, _ := attr.Verify(views, fakeTxView{}); !ok {
		t.Error("expected verify true within the configured key limit")
	}
	if fee := attr.NetworkFee(views, fakeTxView{}); fee != 10*(3+1) {
		t.Errorf("expected fee %d, got %d", 10*(3+1), fee)
	}

	views.NotaryActive = false
	if ok, _ := attr.Verify(views, fakeTxView{}); ok {
		t.Error("expected verify false when the notary service is inactive")
	}

	overLimit := &txattr.NotaryAssisted{NKeys: 6}
	views.NotaryActive = true
	if ok, _ := overLimit.Verify(views, fakeTxView{}); ok {
		t.Error("expected verify false when nKeys exceeds the configured limit")
	}
}

// With 2 signers and 3 Conflicts attributes, none referencing an on-chain
// hash, verification succeeds with a combined fee of 3 * (2 * base_fee);
// once any referenced hash lands on chain, verification must fail.
func TestConflictsMultipleAttributesAccumulateFee(t *testing.T) {
	h1 := protocol.Hash256{1}
	h2 := protocol.Hash256{2}
	h3 := protocol.Hash256{3}

	attrs := []txattr.Attribute{
		&txattr.Conflicts{Hash: h1},
		&txattr.Conflicts{Hash: h2},
		&txattr.Conflicts{Hash: h3},
	}

	tx := fakeTxView{signerCount: 2}
	views := &txattr.Views{Ledger: fakeLedger{onChain: map[protocol.Hash256]bool{}}, ConflictsBaseFee: 7}

	ok, err := txattr.VerifyAll(views, tx, attrs)
	if err != nil || !ok {
		t.Fatalf("expected verify true with no conflicting hash on chain, got %v, %v", ok, err)
	}

	fee := txattr.TotalNetworkFee(views, tx, attrs)
	want := int64(3) * (int64(2) * 7)
	if fee != want {
		t.Errorf("expected combined fee %d, got %d", want, fee)
	}

	views.Ledger = fakeLedger{onChain: map[protocol.Hash256]bool{h2: true}}
	ok, err = txattr.VerifyAll(views, tx, attrs)
	if err != nil || ok {
		t.Fatalf("expected verify false once a referenced hash is on chain, got %v, %v", ok, err)
	}
}

func TestConflictsAllowsMultiple(t *testing.T) {
	if !txattr.AllowsMultiple(protocol.AttributeConflicts) {
		t.Error("Conflicts must allow multiple instances per transaction")
	}
	for _, typ := range []protocol.AttributeType{
		protocol.AttributeHighPriority,
		protocol.AttributeOracleResponse,
		protocol.AttributeNotValidBefore,
		protocol.AttributeNotaryAssisted,
	} {
		if txattr.AllowsMultiple(typ) {
			t.Errorf("type 0x%02x must not allow multiple instances", byte(typ))
		}
	}
}

func TestValidateCardinalityRejectsDuplicateSingleton(t *testing.T) {
	attrs := []txattr.Attribute{&txattr.HighPriority{}, &txattr.HighPriority{}}
	if err := txattr.ValidateCardinality(attrs); !codec.IsFormatError(err) {
		t.Fatalf("expected a format error for duplicate HighPriority attributes, got %v", err)
	}
}

func TestValidateCardinalityAcceptsMultipleConflicts(t *testing.T) {
	attrs := []txattr.Attribute{
		&txattr.Conflicts{Hash: protocol.Hash256{1}},
		&txattr.Conflicts{Hash: protocol.Hash256{2}},
	}
	if err := txattr.ValidateCardinality(attrs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeserializeAttributeListEnforcesCardinality(t *testing.T) {
	w := codec.NewWriter()
	w.WriteVarInt(2)
	txattr.SerializeAttribute(w, &txattr.HighPriority{})
	txattr.SerializeAttribute(w, &txattr.HighPriority{})

	r := codec.NewReader(w.Bytes())
	if _, err := txattr.DeserializeAttributeList(r, 16); !codec.IsFormatError(err) {
		t.Fatalf("expected a format error for a duplicated singleton attribute, got %v", err)
	}
}

func TestDeserializeAttributeUnknownTag(t *testing.T) {
	w := codec.NewWriter()
	w.WriteByte(0xee)
	if _, err := txattr.DeserializeAttribute(codec.NewReader(w.Bytes())); !codec.IsFormatError(err) {
		t.Fatal("expected a format error for an unknown attribute type tag")
	}
}

func TestAttributeJSONRoundTrip(t *testing.T) {
	cases := []txattr.Attribute{
		&txattr.HighPriority{},
		&txattr.NotValidBefore{Height: 55},
		&txattr.Conflicts{Hash: protocol.Hash256{9}},
		&txattr.NotaryAssisted{NKeys: 2},
		&txattr.OracleResponse{ID: 1, Code: txattr.OracleTimeout, Result: []byte("x")},
	}

	for _, attr := range cases {
		data, err := json.Marshal(attr)
		if err != nil {
			t.Fatalf("Marshal %T: %v", attr, err)
		}

		got, err := txattr.UnmarshalAttributeJSON(data)
		if err != nil {
			t.Fatalf("UnmarshalAttributeJSON %T: %v", attr, err)
		}
		if got.Type() != attr.Type() {
			t.Fatalf("type mismatch: got %v, want %v", got.Type(), attr.Type())
		}

		data2, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("re-marshal %T: %v", attr, err)
		}
		if string(data) != string(data2) {
			t.Errorf("JSON round trip mismatch for %T:\n  got:  %s\n  want: %s", attr, data2, data)
		}
	}
}

func TestUnmarshalAttributeJSONUnknownType(t *testing.T) {
	_, err := txattr.UnmarshalAttributeJSON([]byte(`{"type":"NotARealType"}`))
	if !codec.IsFormatError(err) {
		t.Fatalf("expected a format error for an unknown JSON type, got %v", err)
	}
}
