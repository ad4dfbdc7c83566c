package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"blskdf/internal/domain"
	"blskdf/internal/domain/types"
)

func childCmd(st *state) *cobra.Command {
	var (
		parent string
		index  uint32
	)
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Derive the child of a decimal parent key at an index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := types.ParseSecretKey(parent)
			if err != nil {
				return fmt.Errorf("--parent: %w", err)
			}
			child := st.appCtx.Keys.ChildKey(sk, domain.Index(index))
			fmt.Fprintln(cmd.OutOrStdout(), child)
			return nil
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent secret key in decimal")
	cmd.Flags().Uint32Var(&index, "index", 0, "child index")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}
