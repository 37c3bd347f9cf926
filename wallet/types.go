package wallet

import (
	"github.com/nan01ab/neo/protocol"
)

// CipherParams describes the symmetric cipher used to encrypt a keystore's
// private key material.
type CipherParams struct {
	IV string `json:"iv"` // Initialization vector
}

// KDFParams describes the key-derivation function used to stretch a
// passphrase into a cipher key.
type KDFParams struct {
	DkLen int    `json:"dklen"` // Derived key length
	N     int    `json:"n"`     // CPU/Memory cost
	P     int    `json:"p"`     // Parallelization parameter
	R     int    `json:"r"`     // Block size
	Salt  string `json:"salt"`  // Salt
}

// Crypto is the encrypted-keystore envelope this wallet would persist if
// passphrase protection were enabled (not yet wired into SaveWallet/
// LoadWalletFile, which currently store the seed in the clear — see
// DESIGN.md).
type Crypto struct {
	Cipher       string       `json:"cipher"`     // "aes-128-ctr"
	CipherText   string       `json:"ciphertext"` // Encrypted private key
	CipherParams CipherParams `json:"cipherparams"`
	KDF          string       `json:"kdf"` // "scrypt"
	KDFParams    KDFParams    `json:"kdfparams"`
	MAC          string       `json:"mac"` // Integrity check
}

// MnemonicWallet is a BIP-39 mnemonic-derived keystore: one seed, one or
// more derived accounts.
type MnemonicWallet struct {
	Mnemonic     string     `json:"mnemonic"`      // 12/15/18/21/24 words
	Seed         []byte     `json:"seed"`          // Seed derived from mnemonic
	MasterKey    []byte     `json:"master_key"`    // Master private key (bytes)
	Accounts     []*Account `json:"accounts"`      // Derived accounts
	CurrentIndex int        `json:"current_index"` // Currently used account index
}

// Account is one derived signer: an Account script hash ready to drop into
// a witness.Signer, plus the key material behind it.
type Account struct {
	Index      int              `json:"index"`       // Account index (0, 1, 2...)
	Address    protocol.Hash160 `json:"address"`     // verification-script hash
	PrivateKey []byte           `json:"private_key"` // Private key (bytes)
	PublicKey  []byte           `json:"public_key"`  // Public key (bytes)
	Path       string           `json:"path"`        // derivation path
	Unlocked   bool             `json:"unlocked"`    // Unlock status
}

// BIP-44-shaped path constants. CoinType has no registered assignment for
// this chain; it is a local placeholder, not a consensus value.
const (
	BIP44Purpose  = 44
	BIP44CoinType = 888
	BIP44Account  = 0
	BIP44Change   = 0 // External
)
