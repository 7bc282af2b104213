package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndissect/builder"
	"github.com/katalvlaran/ndissect/graphio"
)

// gridCommand writes a rows×cols grid graph document.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		rows, cols int
		cost       float64
		tri        bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Write a grid graph document",
		Example: `  # 5x5 unit-cost grid to stdout
  ndissect grid --rows 5 --cols 5

  # triangulated grid with cost 2 per vertex
  ndissect grid --rows 8 --cols 8 --tri --cost 2 -o tri.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cost < 0 {
				return fmt.Errorf("cost must be ≥ 0, got %g", cost)
			}
			con := builder.Grid(rows, cols)
			if tri {
				con = builder.TriGrid(rows, cols)
			}
			g, err := builder.Build(con, builder.WithUniformCost(cost))
			if err != nil {
				return err
			}
			c.Logger.Debug("grid built", "vertices", g.VertexCount(), "edges", g.EdgeCount())

			return writeOutput(cmd, output, func(w io.Writer) error {
				return graphio.WriteGraph(w, g)
			})
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 5, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 5, "number of columns")
	cmd.Flags().Float64Var(&cost, "cost", builder.DefaultVertexCost, "cost of every vertex")
	cmd.Flags().BoolVar(&tri, "tri", false, "add one diagonal per cell")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
