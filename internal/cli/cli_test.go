package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndissect/graphio"
	"github.com/katalvlaran/ndissect/separator"
	"github.com/katalvlaran/ndissect/septree"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogDebug)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, septree.DefaultMaxDepth, cfg.Tree.MaxDepth)

	path := writeFile(t, "ndissect.toml", `
[separator]
mode = "level-cost"
oracle = "gonum"

[tree]
parallelism = 3

[factor]
inverter = "gonum"
shift = 0.25
`)
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "level-cost", cfg.Separator.Mode)
	require.Equal(t, "gonum", cfg.Separator.Oracle)
	require.Equal(t, 3, cfg.Tree.Parallelism)
	require.Equal(t, septree.DefaultMaxDepth, cfg.Tree.MaxDepth) // untouched keys keep defaults
	require.Equal(t, 0.25, cfg.Factor.Shift)

	tb, err := cfg.treeBuilder(New(io.Discard, LogInfo).Logger)
	require.NoError(t, err)
	require.NotNil(t, tb)
	_, err = cfg.factorizer(New(io.Discard, LogInfo).Logger)
	require.NoError(t, err)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, ErrConfig)

	_, err = LoadConfig(writeFile(t, "bad.toml", "[tree]\nwidth = 3\n"))
	require.ErrorIs(t, err, ErrConfig)
	require.Contains(t, err.Error(), "tree.width")

	logger := New(io.Discard, LogInfo).Logger
	cases := []func(*Config){
		func(c *Config) { c.Separator.Mode = "median" },
		func(c *Config) { c.Separator.Oracle = "magic" },
		func(c *Config) { c.Tree.Parallelism = 0 },
		func(c *Config) { c.Tree.MaxDepth = -1 },
		func(c *Config) { c.Factor.Inverter = "qr" },
		func(c *Config) { c.Factor.SymmetryTol = -1 },
	}
	for i, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		_, err := cfg.factorizer(logger)
		require.ErrorIs(t, err, ErrConfig, "case %d", i)
	}

	cfg := DefaultConfig()
	cfg.Separator.Mode = "median"
	_, err = cfg.treeBuilder(logger)
	require.ErrorIs(t, err, separator.ErrOptionViolation)
}

func TestGridCommand(t *testing.T) {
	out, err := execute(t, nil, "grid", "--rows", "3", "--cols", "4")
	require.NoError(t, err)
	g, err := graphio.ReadGraph(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, 17, g.EdgeCount())

	path := filepath.Join(t.TempDir(), "tri.yaml")
	_, err = execute(t, nil, "grid", "--rows", "3", "--cols", "3", "--tri", "--cost", "2", "-o", path)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err = graphio.ReadGraph(f)
	require.NoError(t, err)
	require.Equal(t, 16, g.EdgeCount())
	require.Equal(t, 18.0, g.TotalCost())

	_, err = execute(t, nil, "grid", "--rows", "0")
	require.Error(t, err)
	_, err = execute(t, nil, "grid", "--cost", "-1")
	require.Error(t, err)
}

func gridDoc(t *testing.T, rows, cols string) string {
	t.Helper()
	out, err := execute(t, nil, "grid", "--rows", rows, "--cols", cols)
	require.NoError(t, err)

	return out
}

func TestTreeCommand(t *testing.T) {
	graph := writeFile(t, "g.yaml", gridDoc(t, "5", "5"))
	treePath := filepath.Join(t.TempDir(), "tree.yaml")

	out, err := execute(t, nil, "tree", graph, "-o", treePath, "--parallelism", "2")
	require.NoError(t, err)
	require.Contains(t, out, "separator tree built")
	require.Contains(t, out, "Vertices:")
	require.Contains(t, out, "Leaves:")
	require.FileExists(t, treePath)

	// Stdin input and a config file.
	cfg := writeFile(t, "c.toml", "[separator]\nmode = \"level-cost\"\n")
	out, err = execute(t, strings.NewReader(gridDoc(t, "4", "6")), "--config", cfg, "tree", "-")
	require.NoError(t, err)
	require.Contains(t, out, "Height:")

	_, err = execute(t, nil, "tree", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	_, err = execute(t, nil, "tree", graph, "--mode", "median")
	require.ErrorIs(t, err, ErrConfig)
	_, err = execute(t, nil, "tree")
	require.Error(t, err)
}

func TestFactorCommand(t *testing.T) {
	graph := writeFile(t, "g.yaml", gridDoc(t, "6", "6"))

	out, err := execute(t, nil, "factor", graph, "--shift", "0.5")
	require.NoError(t, err)
	require.Contains(t, out, "Steps:")
	require.Contains(t, out, "factorization verified")

	cfg := writeFile(t, "c.toml", "[factor]\ninverter = \"gonum\"\n[tree]\nparallelism = 4\n")
	out, err = execute(t, nil, "--config", cfg, "factor", graph)
	require.NoError(t, err)
	require.Contains(t, out, "factorization verified")

	_, err = execute(t, nil, "factor", writeFile(t, "bad.yaml", "vertices: [\n"))
	require.ErrorIs(t, err, graphio.ErrInvalidDocument)
}
