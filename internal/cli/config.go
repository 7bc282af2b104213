package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/ndissect/elim"
	"github.com/katalvlaran/ndissect/nd"
	"github.com/katalvlaran/ndissect/oracle"
	"github.com/katalvlaran/ndissect/separator"
	"github.com/katalvlaran/ndissect/septree"
)

// ErrConfig is returned for unreadable or inconsistent configuration.
var ErrConfig = errors.New("cli: invalid configuration")

// Config is the TOML configuration file. Command-line flags override it.
//
//	[separator]
//	mode = "level-cost"
//	check_planar = true
//	oracle = "gonum"
//
//	[tree]
//	max_depth = 64
//	parallelism = 4
//
//	[factor]
//	inverter = "lu"
//	shift = 1.0
//	symmetry_tol = 1e-9
//	seed = 1
type Config struct {
	Separator SeparatorConfig `toml:"separator"`
	Tree      TreeConfig      `toml:"tree"`
	Factor    FactorConfig    `toml:"factor"`
}

// SeparatorConfig selects the separator finder. Mode is level-count or
// level-cost; Oracle is native or gonum.
type SeparatorConfig struct {
	Mode        string `toml:"mode"`
	CheckPlanar bool   `toml:"check_planar"`
	Oracle      string `toml:"oracle"`
}

// TreeConfig bounds the separator tree build.
type TreeConfig struct {
	MaxDepth    int `toml:"max_depth"`
	Parallelism int `toml:"parallelism"`
}

// FactorConfig configures elimination and the solve check. Inverter is lu
// or gonum.
type FactorConfig struct {
	Inverter    string  `toml:"inverter"`
	Shift       float64 `toml:"shift"`
	SymmetryTol float64 `toml:"symmetry_tol"`
	Seed        int64   `toml:"seed"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Separator: SeparatorConfig{Mode: separator.ModeLevelCount.String(), Oracle: "native"},
		Tree:      TreeConfig{MaxDepth: septree.DefaultMaxDepth, Parallelism: septree.DefaultParallelism},
		Factor: FactorConfig{
			Inverter:    "lu",
			Shift:       1,
			SymmetryTol: elim.DefaultSymmetryTolerance,
			Seed:        1,
		},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys %s", ErrConfig, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func (c Config) graphOracle() (oracle.Graph, error) {
	switch c.Separator.Oracle {
	case "", "native":
		return oracle.Native{}, nil
	case "gonum":
		return oracle.Gonum{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown graph oracle %q", ErrConfig, c.Separator.Oracle)
	}
}

func (c Config) inverter() (oracle.Inverter, error) {
	switch c.Factor.Inverter {
	case "", "lu":
		return oracle.LUInverter{}, nil
	case "gonum":
		return oracle.GonumInverter{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown inverter %q", ErrConfig, c.Factor.Inverter)
	}
}

// treeBuilder wires the [separator] and [tree] sections.
func (c Config) treeBuilder(logger *log.Logger) (*septree.Builder, error) {
	mode, err := separator.ParseMode(c.Separator.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	o, err := c.graphOracle()
	if err != nil {
		return nil, err
	}
	finder, err := separator.NewFinder(
		separator.WithMode(mode),
		separator.WithGraphOracle(o),
		separator.WithPlanarityCheck(c.Separator.CheckPlanar),
		separator.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	b, err := septree.NewBuilder(
		septree.WithFinder(finder),
		septree.WithMaxDepth(c.Tree.MaxDepth),
		septree.WithParallelism(c.Tree.Parallelism),
		septree.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return b, nil
}

// factorizer wires every section into an nd.Factorizer.
func (c Config) factorizer(logger *log.Logger) (*nd.Factorizer, error) {
	tb, err := c.treeBuilder(logger)
	if err != nil {
		return nil, err
	}
	inv, err := c.inverter()
	if err != nil {
		return nil, err
	}
	el, err := elim.NewEliminator(elim.WithInverter(inv), elim.WithSymmetryTolerance(c.Factor.SymmetryTol))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	f, err := nd.NewFactorizer(nd.WithTreeBuilder(tb), nd.WithEliminator(el), nd.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return f, nil
}
