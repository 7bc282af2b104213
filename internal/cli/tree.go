package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndissect/graphio"
	"github.com/katalvlaran/ndissect/septree"
)

// treeCommand builds the separator tree of a graph document.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		output      string
		mode        string
		maxDepth    int
		parallelism int
	)

	cmd := &cobra.Command{
		Use:   "tree <graph.yaml>",
		Short: "Build and export the separator tree of a graph",
		Long: `Build the separator tree of a graph document and print its shape.

With -o the tree is also written as YAML. Use "-" to read the graph from stdin.`,
		Example: `  ndissect grid --rows 9 --cols 9 | ndissect tree - -o tree.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("mode") {
				cfg.Separator.Mode = mode
			}
			if flags.Changed("max-depth") {
				cfg.Tree.MaxDepth = maxDepth
			}
			if flags.Changed("parallelism") {
				cfg.Tree.Parallelism = parallelism
			}

			g, err := readGraph(cmd, args[0])
			if err != nil {
				return fmt.Errorf("read graph: %w", err)
			}
			tb, err := cfg.treeBuilder(c.Logger)
			if err != nil {
				return err
			}

			start := time.Now()
			root, err := tb.Build(cmd.Context(), g)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if output != "" {
				if err := writeOutput(cmd, output, func(w io.Writer) error {
					return graphio.WriteTree(w, root)
				}); err != nil {
					return fmt.Errorf("write tree: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "separator tree built")
			printTreeStats(out, septree.Stats(root), g.VertexCount())
			printKeyValue(out, "Elapsed", elapsed.Round(time.Millisecond))
			if output != "" {
				printKeyValue(out, "Output", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the tree as YAML to this file")
	cmd.Flags().StringVar(&mode, "mode", "", "separator mode (level-count, level-cost)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", septree.DefaultMaxDepth, "maximum tree depth")
	cmd.Flags().IntVar(&parallelism, "parallelism", septree.DefaultParallelism, "concurrent subtree builds")

	return cmd
}

func printTreeStats(w io.Writer, s septree.TreeStats, vertices int) {
	printKeyValue(w, "Vertices", vertices)
	printKeyValue(w, "Height", s.Height)
	printKeyValue(w, "Internal", s.Internal)
	printKeyValue(w, "Leaves", s.Leaves)
	printKeyValue(w, "Max separator", s.MaxSeparator)
	printKeyValue(w, "Max leaf", s.MaxLeaf)
}
