package wallet

import (
	"fmt"
	"os"
	"testing"

	"github.com/nan01ab/neo/common/crypto"
	"github.com/nan01ab/neo/common/utils"
)

func TestCreateWallet(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	wallet, err := wm.CreateWallet()
	if err != nil {
		t.Fatalf("Error: %v", err)
	}

	fmt.Printf("wallet mnemonic length (characters): %d\n", len(wallet.Mnemonic))
	fmt.Printf("accounts: %v\n", wallet.Accounts[0])
	fmt.Printf("address: %v\n", wallet.Accounts[0].Address.String())
	fmt.Printf("path: %v\n", wallet.Accounts[0].Path)

	if wallet.CurrentIndex != 0 {
		t.Fatalf("expected current index 0, got %d", wallet.CurrentIndex)
	}
	if len(wallet.Accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(wallet.Accounts))
	}
}

func TestRestoreWallet(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	wallet, err := wm.CreateWallet()
	if err != nil {
		t.Fatalf("Error: %v", err)
	}

	newAddress := wallet.Accounts[0].Address.String()

	restored, err := wm.RestoreWallet(wallet.Mnemonic)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}

	restoredAddress := restored.Accounts[0].Address.String()
	if restoredAddress != newAddress {
		t.Fatalf("address differs after restore: %s vs %s", newAddress, restoredAddress)
	}
}

func TestSaveAndLoadWallet(t *testing.T) {
	dir := t.TempDir()

	wm := NewWalletManager(dir)
	wallet, err := wm.CreateWallet()
	if err != nil {
		t.Fatalf("Error: %v", err)
	}

	if err := wm.SaveWallet(); err != nil {
		t.Fatalf("err: %v", err)
	}

	loaded := NewWalletManager(dir)
	if err := loaded.LoadWalletFile(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if loaded.Wallet.Accounts[0].Address != wallet.Accounts[0].Address {
		t.Fatalf("loaded address differs: %v vs %v", loaded.Wallet.Accounts[0].Address, wallet.Accounts[0].Address)
	}
	fmt.Printf("loaded address: %v\n", utils.AddressToString(loaded.Wallet.Accounts[0].Address))
}

func TestLoadWalletFile_Missing(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	if err := wm.LoadWalletFile(); err == nil {
		t.Fatal("expected an error loading a wallet file that was never saved")
	}
}

func TestSignAndVerify(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	if _, err := wm.CreateWallet(); err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}

	privateKey, err := wm.GetCurrentPrivateKey()
	if err != nil {
		t.Fatalf("Failed to get private key: %v", err)
	}
	publicKey, err := wm.GetCurrentPublicKey()
	if err != nil {
		t.Fatalf("Failed to get public key: %v", err)
	}

	testData := []byte("test transaction data for signing")

	sig, err := crypto.SignData(privateKey, testData)
	if err != nil {
		t.Fatalf("Failed to sign data: %v", err)
	}

	if !crypto.VerifySignature(publicKey, testData, sig) {
		t.Error("Signature verification failed")
	}
}

func TestSignAndVerify_WrongData(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	if _, err := wm.CreateWallet(); err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}

	privateKey, err := wm.GetCurrentPrivateKey()
	if err != nil {
		t.Fatalf("Failed to get private key: %v", err)
	}
	publicKey, err := wm.GetCurrentPublicKey()
	if err != nil {
		t.Fatalf("Failed to get public key: %v", err)
	}

	sig, err := crypto.SignData(privateKey, []byte("original data"))
	if err != nil {
		t.Fatalf("Failed to sign data: %v", err)
	}

	if crypto.VerifySignature(publicKey, []byte("wrong data"), sig) {
		t.Error("should fail with wrong data")
	}
}

func TestSignAndVerify_WrongKey(t *testing.T) {
	wm1 := NewWalletManager(t.TempDir())
	if _, err := wm1.CreateWallet(); err != nil {
		t.Fatalf("Failed to create wallet1: %v", err)
	}
	wm2 := NewWalletManager(t.TempDir())
	if _, err := wm2.CreateWallet(); err != nil {
		t.Fatalf("Failed to create wallet2: %v", err)
	}

	privateKey1, err := wm1.GetCurrentPrivateKey()
	if err != nil {
		t.Fatalf("Failed to get private key: %v", err)
	}
	sig, err := crypto.SignData(privateKey1, []byte("test data"))
	if err != nil {
		t.Fatalf("Failed to sign data: %v", err)
	}

	publicKey2, err := wm2.GetCurrentPublicKey()
	if err != nil {
		t.Fatalf("Failed to get public key: %v", err)
	}
	if crypto.VerifySignature(publicKey2, []byte("test data"), sig) {
		t.Error("should fail with wrong public key")
	}
}

func TestVerifyWithBytes(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	if _, err := wm.CreateWallet(); err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}

	privateKey, err := wm.GetCurrentPrivateKey()
	if err != nil {
		t.Fatalf("Failed to get private key: %v", err)
	}
	publicKey, err := wm.GetCurrentPublicKey()
	if err != nil {
		t.Fatalf("Failed to get public key: %v", err)
	}

	testData := []byte("test data for bytes verification")
	sig, err := crypto.SignData(privateKey, testData)
	if err != nil {
		t.Fatalf("Failed to sign data: %v", err)
	}

	publicKeyDER, err := crypto.PublicKeyToBytes(publicKey)
	if err != nil {
		t.Fatalf("failed to encode public key: %v", err)
	}

	valid, err := crypto.VerifySignatureWithBytes(publicKeyDER, testData, sig)
	if err != nil {
		t.Fatalf("Failed to verify: %v", err)
	}
	if !valid {
		t.Error("Signature verification with bytes failed")
	}
}

func TestSignWitness(t *testing.T) {
	wm := NewWalletManager(t.TempDir())
	if _, err := wm.CreateWallet(); err != nil {
		t.Fatalf("Failed to create wallet: %v", err)
	}

	w, err := wm.SignWitness([]byte("transaction hash bytes"))
	if err != nil {
		t.Fatalf("Failed to sign witness: %v", err)
	}
	if len(w.InvocationScript) == 0 {
		t.Error("expected non-empty invocation script")
	}
	if len(w.VerificationScript) != 33 {
		t.Errorf("expected 33-byte compressed verification script, got %d", len(w.VerificationScript))
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
