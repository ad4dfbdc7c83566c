package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blskdf/internal/util/memzero"
)

func masterCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master",
		Short: "Derive the master secret key of a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := st.readSeed()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			sk, err := st.appCtx.Keys.MasterKey(seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sk)
			return nil
		},
	}
	addSeedFlags(cmd, st)
	return cmd
}
