package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"fmt"
)

// MaxSignatureLength bounds an ASN.1 DER ECDSA signature over secp256r1: a
// SEQUENCE of two INTEGERs, each at most 33 bytes with tag+length overhead.
const MaxSignatureLength = 72

// SignData produces an ASN.1 DER ECDSA signature over data.
func SignData(privateKey *ecdsa.PrivateKey, data []byte) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key is nil")
	}

	signature, err := ecdsa.SignASN1(rand.Reader, privateKey, data)
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}
	if len(signature) > MaxSignatureLength {
		return nil, fmt.Errorf("signature too long: %d bytes", len(signature))
	}

	return signature, nil
}

// VerifySignature verifies an ASN.1 DER ECDSA signature.
func VerifySignature(publicKey *ecdsa.PublicKey, data []byte, sig []byte) bool {
	if publicKey == nil {
		return false
	}
	return ecdsa.VerifyASN1(publicKey, data, sig)
}

// VerifySignatureWithBytes verifies signature with a PKIX-encoded public key.
func VerifySignatureWithBytes(publicKeyBytes []byte, data []byte, sig []byte) (bool, error) {
	if len(publicKeyBytes) == 0 {
		return false, fmt.Errorf("public key bytes is empty")
	}

	pub, err := x509.ParsePKIXPublicKey(publicKeyBytes)
	if err != nil {
		return false, fmt.Errorf("failed to parse public key: %w", err)
	}

	publicKey, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return false, fmt.Errorf("not an ECDSA public key")
	}

	return VerifySignature(publicKey, data, sig), nil
}

// PublicKeyToBytes converts a public key to its PKIX DER encoding.
func PublicKeyToBytes(publicKey *ecdsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key is nil")
	}
	return x509.MarshalPKIXPublicKey(publicKey)
}

// BytesToPublicKey parses a PKIX DER-encoded public key.
func BytesToPublicKey(data []byte) (*ecdsa.PublicKey, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("public key bytes is empty")
	}

	pub, err := x509.ParsePKIXPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	publicKey, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an ECDSA public key")
	}

	return publicKey, nil
}
