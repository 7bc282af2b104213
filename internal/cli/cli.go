// Package cli implements the ndissect command-line interface.
//
// # Commands
//
//   - grid: write a grid graph document
//   - tree: build and export the separator tree of a graph document
//   - factor: factorize the shifted Laplacian of a graph document and verify it
//
// # Configuration
//
// --config names a TOML file (see Config); flags given on the command line
// override its values. --verbose (-v) enables debug logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/graphio"
)

const appName = "ndissect"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Nested dissection for planar graphs",
		Long:         `ndissect finds Lipton–Tarjan separators, builds separator trees and factorizes the matrices of planar graphs in nested-dissection order.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.gridCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.factorCommand())

	return root
}

// config loads the --config file.
func (c *CLI) config() (Config, error) {
	return LoadConfig(c.configPath)
}

// readGraph reads a graph document from path, or stdin for "-".
func readGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	if path == "-" {
		return graphio.ReadGraph(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadGraph(f)
}

// writeOutput calls write on path, or on the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
