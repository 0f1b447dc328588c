package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sicko7947/claimflow/identity"
)

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Manage claim identities",
}

var identityNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate an ed25519 key and print its base58 identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, _ := cmd.Flags().GetString("prefix")
		if prefix == "" {
			cfg, err := loadConfig(cfgFile, nil)
			if err != nil {
				return err
			}
			prefix = cfg.Identity.Prefix
		}

		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		id, err := identity.DeriveBase58(prefix, pub)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "identity:    %s\n", id)
		fmt.Fprintf(out, "public_key:  %s\n", hex.EncodeToString(pub))
		fmt.Fprintf(out, "private_key: %s\n", hex.EncodeToString(priv.Seed()))
		return nil
	},
}

func init() {
	identityNewCmd.Flags().String("prefix", "", "identity prefix (default: identity.prefix from config)")
	identityCmd.AddCommand(identityNewCmd)
	rootCmd.AddCommand(identityCmd)
}
