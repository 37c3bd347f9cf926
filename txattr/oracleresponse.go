package txattr

import (
	"encoding/base64"
	"encoding/json"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
)

func init() {
	register(protocol.AttributeOracleResponse, false, "OracleResponse", func() Attribute { return &OracleResponse{} })
}

// OracleResponseCode mirrors the small fixed set of outcome codes an oracle
// node may report for a request.
type OracleResponseCode byte

const (
	OracleSuccess            OracleResponseCode = 0x00
	OracleProtocolNotSupport OracleResponseCode = 0x10
	OracleConsensusUnreachable OracleResponseCode = 0x12
	OracleNotFound            OracleResponseCode = 0x14
	OracleTimeout             OracleResponseCode = 0x16
	OracleForbidden           OracleResponseCode = 0x18
	OracleResponseTooLarge    OracleResponseCode = 0x1a
	OracleInsufficientFunds   OracleResponseCode = 0x1c
	OracleError               OracleResponseCode = 0xff
)

// MaxOracleResult bounds the oracle response payload.
const MaxOracleResult = 65536

// OracleResponse carries the outcome of an oracle request this transaction
// is the system-level answer to. Only one may appear per transaction; the
// OracleState collaborator is asked whether a request with ID is pending.
type OracleResponse struct {
	ID     uint64
	Code   OracleResponseCode
	Result []byte
}

func (a *OracleResponse) Type() protocol.AttributeType { return protocol.AttributeOracleResponse }

func (a *OracleResponse) Deserialize(r *codec.Reader) error {
	id, err := r.ReadUint64LE()
	if err != nil {
		return err
	}
	codeByte, err := r.ReadByte()
	if err != nil {
		return err
	}
	result, err := r.ReadVarBytes(MaxOracleResult)
	if err != nil {
		return err
	}

	a.ID = id
	a.Code = OracleResponseCode(codeByte)
	a.Result = result
	return nil
}

func (a *OracleResponse) Serialize(w *codec.Writer) {
	w.WriteUint64LE(a.ID)
	w.WriteByte(byte(a.Code))
	w.WriteVarBytes(a.Result)
}

// Verify accepts only if a and matching pending oracle request exists.
func (a *OracleResponse) Verify(views *Views, tx TxView) (bool, error) {
	if views == nil || views.Oracle == nil {
		return false, nil
	}
	return views.Oracle.HasPendingRequest(a.ID), nil
}

// NetworkFee contributes nothing directly; the oracle contract's own
// native-call pricing covers the cost (out of this core's scope).
func (a *OracleResponse) NetworkFee(views *Views, tx TxView) int64 { return 0 }

type oracleResponseJSON struct {
	Type   string `json:"type"`
	ID     uint64 `json:"id"`
	Code   byte   `json:"code"`
	Result string `json:"result"`
}

// MarshalJSON renders the response's result as base64, matching the
// convention used for other opaque byte blobs.
func (a *OracleResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(oracleResponseJSON{
		Type:   "OracleResponse",
		ID:     a.ID,
		Code:   byte(a.Code),
		Result: base64.StdEncoding.EncodeToString(a.Result),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (a *OracleResponse) UnmarshalJSON(data []byte) error {
	var in oracleResponseJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	result, err := base64.StdEncoding.DecodeString(in.Result)
	if err != nil {
		return codec.NewFormatError("oracle response: result: %v", err)
	}
	a.ID = in.ID
	a.Code = OracleResponseCode(in.Code)
	a.Result = result
	return nil
}
