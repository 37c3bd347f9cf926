// Command witnessctl is a small operator tool for the witness-authorization
// core: decode wire-format signers/conditions to JSON, check whether a
// signer's scope authorizes a given call site, and drive the local wallet.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nan01ab/neo/codec"
	"github.com/nan01ab/neo/protocol"
	"github.com/nan01ab/neo/storage"
	"github.com/nan01ab/neo/wallet"
	"github.com/nan01ab/neo/witness"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "witnessctl",
		Short: "Witness authorization core operator tool",
		Long:  `Decode witness wire formats, check scope authorization, and manage the local wallet.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(decodeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(walletCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Failed to execute command:", err)
		os.Exit(1)
	}
}

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a hex-encoded wire object to JSON",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "signer <hex>",
		Short: "Decode a Signer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				fmt.Println("invalid hex:", err)
				os.Exit(1)
			}
			r := codec.NewReader(raw)
			signer, err := witness.DeserializeSigner(r)
			if err != nil {
				fmt.Println("decode failed:", err)
				os.Exit(1)
			}
			if !r.AtEnd() {
				fmt.Println("decode failed: trailing bytes")
				os.Exit(1)
			}
			printJSON(signer)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "condition <hex>",
		Short: "Decode a WitnessCondition",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				fmt.Println("invalid hex:", err)
				os.Exit(1)
			}
			r := codec.NewReader(raw)
			c, err := witness.DeserializeCondition(r)
			if err != nil {
				fmt.Println("decode failed:", err)
				os.Exit(1)
			}
			if !r.AtEnd() {
				fmt.Println("decode failed: trailing bytes")
				os.Exit(1)
			}
			printJSON(c)
		},
	})
	return cmd
}

// cliContext is a flag-driven witness.ContextView, the CLI's equivalent of
// witnesstest.Context: a call site supplied by the operator rather than the
// VM, optionally backed by a real leveldb contract-group cache.
type cliContext struct {
	current protocol.Hash160
	calling protocol.Hash160
	entry   protocol.Hash160
	store   *storage.Store
}

func (c *cliContext) CurrentScriptHash() protocol.Hash160 { return c.current }
func (c *cliContext) CallingScriptHash() protocol.Hash160 { return c.calling }
func (c *cliContext) EntryScriptHash() protocol.Hash160   { return c.entry }

func (c *cliContext) LookupContractGroups(h protocol.Hash160) witness.GroupSet {
	if c.store == nil {
		return nil
	}
	return c.store.LookupContractGroups(h)
}

func checkCmd() *cobra.Command {
	var signerHex, currentHex, callingHex, entryHex, dbPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a Signer authorizes a call site",
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := hex.DecodeString(signerHex)
			if err != nil {
				fmt.Println("invalid --signer hex:", err)
				os.Exit(1)
			}
			signer, err := witness.DeserializeSigner(codec.NewReader(raw))
			if err != nil {
				fmt.Println("decode failed:", err)
				os.Exit(1)
			}

			ctx := &cliContext{}
			ctx.current, err = protocol.Hash160FromHex(currentHex)
			if err != nil {
				fmt.Println("invalid --current:", err)
				os.Exit(1)
			}
			if callingHex != "" {
				ctx.calling, err = protocol.Hash160FromHex(callingHex)
				if err != nil {
					fmt.Println("invalid --calling:", err)
					os.Exit(1)
				}
			}
			ctx.entry, err = protocol.Hash160FromHex(entryHex)
			if err != nil {
				fmt.Println("invalid --entry:", err)
				os.Exit(1)
			}

			if dbPath != "" {
				db, err := leveldb.OpenFile(dbPath, nil)
				if err != nil {
					fmt.Println("failed to open contract-group store:", err)
					os.Exit(1)
				}
				defer db.Close()
				ctx.store = storage.NewStore(db)
			}

			authorized := witness.Authorizes(signer, ctx)
			fmt.Println(authorized)
		},
	}

	cmd.Flags().StringVar(&signerHex, "signer", "", "hex-encoded Signer")
	cmd.Flags().StringVar(&currentHex, "current", "", "currently executing script hash")
	cmd.Flags().StringVar(&callingHex, "calling", "", "calling script hash (omit for an entry-level call)")
	cmd.Flags().StringVar(&entryHex, "entry", "", "entry script hash")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to a leveldb contract-group cache (optional)")
	cmd.MarkFlagRequired("signer")
	cmd.MarkFlagRequired("current")
	cmd.MarkFlagRequired("entry")

	return cmd
}

func getDefaultWalletDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./wallets"
	}
	return filepath.Join(homeDir, ".witnessctl", "wallets")
}

var walletDir string

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Local signer wallet commands",
	}
	cmd.PersistentFlags().StringVarP(&walletDir, "wallet-dir", "w", getDefaultWalletDir(), "wallet directory path")

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create a new mnemonic-derived wallet",
		Run: func(cmd *cobra.Command, args []string) {
			wm := wallet.NewWalletManager(walletDir)
			walletFile := filepath.Join(walletDir, "wallet.json")
			if _, err := os.Stat(walletFile); err == nil {
				fmt.Println("wallet already exists at:", walletFile)
				return
			}

			mw, err := wm.CreateWallet()
			if err != nil {
				fmt.Println("failed to create wallet:", err)
				os.Exit(1)
			}
			if err := wm.SaveWallet(); err != nil {
				fmt.Println("failed to save wallet:", err)
				os.Exit(1)
			}

			fmt.Println("mnemonic:", mw.Mnemonic)
			fmt.Println("account:", mw.Accounts[0].Address.String())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <mnemonic>",
		Short: "Restore a wallet from its mnemonic",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			wm := wallet.NewWalletManager(walletDir)
			mw, err := wm.RestoreWallet(args[0])
			if err != nil {
				fmt.Println("failed to restore wallet:", err)
				os.Exit(1)
			}
			if err := wm.SaveWallet(); err != nil {
				fmt.Println("failed to save wallet:", err)
				os.Exit(1)
			}
			fmt.Println("account:", mw.Accounts[0].Address.String())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sign <hex-message>",
		Short: "Sign a message and print the resulting Witness as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			msg, err := hex.DecodeString(args[0])
			if err != nil {
				fmt.Println("invalid hex message:", err)
				os.Exit(1)
			}

			wm := wallet.NewWalletManager(walletDir)
			if err := wm.LoadWalletFile(); err != nil {
				fmt.Println("failed to load wallet:", err)
				os.Exit(1)
			}

			w, err := wm.SignWitness(msg)
			if err != nil {
				fmt.Println("failed to sign:", err)
				os.Exit(1)
			}
			printJSON(w)
		},
	})

	return cmd
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("failed to render JSON:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
