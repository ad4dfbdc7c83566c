package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"blskdf/internal/util/memzero"
)

func mnemonicSeedCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic-seed",
		Short: "Print the BIP-39 seed of a mnemonic as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := st.appCtx.Seeds.SeedFromMnemonic(st.mnemonic, st.passphrase)
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(seed))
			return nil
		},
	}
	cmd.Flags().StringVar(&st.mnemonic, "mnemonic", "", "BIP-39 mnemonic")
	cmd.Flags().StringVar(&st.passphrase, "passphrase", "", "BIP-39 passphrase")
	_ = cmd.MarkFlagRequired("mnemonic")
	return cmd
}
