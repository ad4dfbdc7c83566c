package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blskdf/internal/domain/types"
	"blskdf/internal/util/memzero"
)

// path m/...: derive the key at a textual path.
func pathCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <m/a/b/...>",
		Short: "Derive the secret key at a derivation path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := types.ParsePath(args[0])
			if err != nil {
				return err
			}
			seed, err := st.readSeed()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			sk, err := st.appCtx.Keys.PathKey(seed, p)
			if err != nil {
				return fmt.Errorf("deriving %s: %w", p, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sk)
			return nil
		},
	}
	addSeedFlags(cmd, st)
	return cmd
}
