package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errVectorsFailed = errors.New("test vectors failed")

func verifyCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check master and child derivation against test vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vectors, err := st.appCtx.Vectors.LoadVectors()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for i, res := range st.appCtx.Keys.Verify(vectors) {
				status := "ok"
				if !res.Passed() {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(out, "vector %d index %d: %s\n", i, res.Vector.ChildIndex, status)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(vectors), errVectorsFailed)
			}
			fmt.Fprintf(out, "%d vectors passed\n", len(vectors))
			return nil
		},
	}
}
