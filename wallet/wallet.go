package wallet

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nan01ab/neo/common/crypto"
	"github.com/nan01ab/neo/witness"
	"github.com/tyler-smith/go-bip39"
)

// WalletManager owns one MnemonicWallet on disk under walletDir.
type WalletManager struct {
	walletDir string
	Wallet    *MnemonicWallet
}

// NewWalletManager points a manager at dir without touching disk.
func NewWalletManager(dir string) *WalletManager {
	return &WalletManager{walletDir: dir}
}

// CreateWallet generates a fresh 12-word mnemonic, derives account 0, and
// sets it as the manager's current wallet.
func (wm *WalletManager) CreateWallet() (*MnemonicWallet, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	mw, err := wm.walletFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	wm.Wallet = mw
	return mw, nil
}

// RestoreWallet rebuilds a wallet's seed and account 0 from a previously
// generated mnemonic, and sets it as the manager's current wallet.
func (wm *WalletManager) RestoreWallet(mnemonic string) (*MnemonicWallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	mw, err := wm.walletFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	wm.Wallet = mw
	return mw, nil
}

func (wm *WalletManager) walletFromMnemonic(mnemonic string) (*MnemonicWallet, error) {
	seed := bip39.NewSeed(mnemonic, "")

	masterKey, err := crypto.DeriveMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive master key: %w", err)
	}
	masterKeyBytes, err := crypto.PrivateKeyToBytes(masterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode master key: %w", err)
	}

	account, err := deriveAccount(masterKey, 0)
	if err != nil {
		return nil, err
	}

	return &MnemonicWallet{
		Mnemonic:     mnemonic,
		Seed:         seed,
		MasterKey:    masterKeyBytes,
		Accounts:     []*Account{account},
		CurrentIndex: 0,
	}, nil
}

func accountPath(index int) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d", BIP44Purpose, BIP44CoinType, BIP44Account, BIP44Change, index)
}

func deriveAccount(masterKey *ecdsa.PrivateKey, index int) (*Account, error) {
	path := accountPath(index)

	privateKey, publicKey, err := crypto.DeriveAccountKey(masterKey, path)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account %d: %w", index, err)
	}

	privBytes, err := crypto.PrivateKeyToBytes(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode account private key: %w", err)
	}
	compressed := crypto.CompressPublicKey(publicKey)

	return &Account{
		Index:      index,
		Address:    crypto.ScriptHash(compressed[:]),
		PrivateKey: privBytes,
		PublicKey:  compressed[:],
		Path:       path,
		Unlocked:   true,
	}, nil
}

// GetCurrentPrivateKey decodes the current account's stored private key.
func (wm *WalletManager) GetCurrentPrivateKey() (*ecdsa.PrivateKey, error) {
	account, err := wm.currentAccount()
	if err != nil {
		return nil, err
	}
	return crypto.BytesToPrivateKey(account.PrivateKey)
}

// GetCurrentPublicKey returns the current account's public key.
func (wm *WalletManager) GetCurrentPublicKey() (*ecdsa.PublicKey, error) {
	privateKey, err := wm.GetCurrentPrivateKey()
	if err != nil {
		return nil, err
	}
	return &privateKey.PublicKey, nil
}

func (wm *WalletManager) currentAccount() (*Account, error) {
	if wm.Wallet == nil {
		return nil, fmt.Errorf("wallet not loaded")
	}
	for _, a := range wm.Wallet.Accounts {
		if a.Index == wm.Wallet.CurrentIndex {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no account at index %d", wm.Wallet.CurrentIndex)
}

// SignWitness produces a witness.Witness for the current account, whose
// verification script is the account's compressed public key and whose invocation script
// is simply the raw ASN.1 DER signature over message (no VM opcodes: the VM
// collaborator is responsible for wrapping it into an executable script).
func (wm *WalletManager) SignWitness(message []byte) (*witness.Witness, error) {
	privateKey, err := wm.GetCurrentPrivateKey()
	if err != nil {
		return nil, err
	}
	account, err := wm.currentAccount()
	if err != nil {
		return nil, err
	}

	sig, err := crypto.SignData(privateKey, message)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	return &witness.Witness{
		InvocationScript:   sig,
		VerificationScript: account.PublicKey,
	}, nil
}

func (wm *WalletManager) walletFilePath() string {
	return filepath.Join(wm.walletDir, "wallet.json")
}

// SaveWallet writes the manager's current wallet as JSON under walletDir.
// The seed is stored in the clear; passphrase-encrypted keystores (the
// Crypto/CipherParams/KDFParams envelope in types.go) are not yet wired up.
func (wm *WalletManager) SaveWallet() error {
	if wm.Wallet == nil {
		return fmt.Errorf("no wallet to save")
	}
	if err := os.MkdirAll(wm.walletDir, 0o700); err != nil {
		return fmt.Errorf("failed to create wallet dir: %w", err)
	}

	data, err := json.MarshalIndent(wm.Wallet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode wallet: %w", err)
	}
	return os.WriteFile(wm.walletFilePath(), data, 0o600)
}

// LoadWalletFile reads the wallet previously written by SaveWallet.
func (wm *WalletManager) LoadWalletFile() error {
	data, err := os.ReadFile(wm.walletFilePath())
	if err != nil {
		return fmt.Errorf("failed to read wallet file: %w", err)
	}

	mw := new(MnemonicWallet)
	if err := json.Unmarshal(data, mw); err != nil {
		return fmt.Errorf("failed to decode wallet: %w", err)
	}
	wm.Wallet = mw
	return nil
}
