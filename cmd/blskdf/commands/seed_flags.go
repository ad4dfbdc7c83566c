package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addSeedFlags(cmd *cobra.Command, st *state) {
	cmd.Flags().StringVar(&st.seedHex, "seed", "", "seed as hex (optional 0x prefix)")
	cmd.Flags().StringVar(&st.mnemonic, "mnemonic", "", "BIP-39 mnemonic to derive the seed from")
	cmd.Flags().StringVar(&st.passphrase, "passphrase", "", "BIP-39 passphrase (with --mnemonic)")
	cmd.MarkFlagsMutuallyExclusive("seed", "mnemonic")
	cmd.MarkFlagsOneRequired("seed", "mnemonic")
}

// readSeed returns the seed named by --seed or --mnemonic.
func (st *state) readSeed() ([]byte, error) {
	if st.mnemonic != "" {
		return st.appCtx.Seeds.SeedFromMnemonic(st.mnemonic, st.passphrase)
	}
	s := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(st.seedHex), "0x"), "0X")
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("--seed: %w", err)
	}
	return seed, nil
}
