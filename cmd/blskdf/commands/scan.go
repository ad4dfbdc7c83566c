package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blskdf/internal/domain"
	"blskdf/internal/domain/types"
	"blskdf/internal/util/memzero"
)

// scan: derive prefix/from .. prefix/from+count-1, one "path key" line each.
func scanCmd(st *state) *cobra.Command {
	var (
		prefix string
		from   uint32
		count  uint32
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Derive keys for a contiguous range of child indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := types.ParsePath(prefix)
			if err != nil {
				return fmt.Errorf("--prefix: %w", err)
			}
			seed, err := st.readSeed()
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			keys, err := st.appCtx.Keys.DeriveRange(cmd.Context(), seed, p, domain.Index(from), count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, sk := range keys {
				fmt.Fprintf(out, "%s %s\n", p.Child(domain.Index(from)+domain.Index(i)), sk)
			}
			return nil
		},
	}
	addSeedFlags(cmd, st)
	cmd.Flags().StringVar(&prefix, "prefix", "m/12381/3600", "path below which indices are scanned")
	cmd.Flags().Uint32Var(&from, "from", 0, "first index")
	cmd.Flags().Uint32Var(&count, "count", 1, "number of indices")
	return cmd
}
