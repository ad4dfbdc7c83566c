package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blskdf/internal/util/memzero"
)

func fingerprintCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a short fingerprint of a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := st.readSeed()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", st.appCtx.Seeds.Fingerprint(seed))
			return nil
		},
	}
	addSeedFlags(cmd, st)
	return cmd
}
