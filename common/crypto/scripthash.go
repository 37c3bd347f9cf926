package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"

	"github.com/nan01ab/neo/protocol"
	"golang.org/x/crypto/ripemd160"
)

// CompressPublicKey serializes an ECDSA public key to its 33-byte
// compressed form (0x02/0x03 || X).
func CompressPublicKey(publicKey *ecdsa.PublicKey) protocol.PublicKey {
	var pk protocol.PublicKey
	compressed := elliptic.MarshalCompressed(publicKey.Curve, publicKey.X, publicKey.Y)
	copy(pk[:], compressed)
	return pk
}

// ScriptHash derives a script-hash identity as RIPEMD160(SHA256(script)),
// the standard two-hash construction used throughout this domain's UTXO and
// account-scripting designs: the Hash160 of a verification script.
func ScriptHash(script []byte) protocol.Hash160 {
	sha := sha256.Sum256(script)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	sum := ripe.Sum(nil)

	var h protocol.Hash160
	copy(h[:], sum)
	return h
}
