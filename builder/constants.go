// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodTriGrid is the canonical name for the TriGrid constructor.
	MethodTriGrid = "TriGrid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier for a central hub vertex in Star, Wheel,
// and stellated Platonic solids.
const CenterVertexID = "Center"

// GridIDFormat is the fixed "r,c" coordinate scheme of Grid and TriGrid.
const GridIDFormat = "%d,%d"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest size for a path; a single vertex is a legal P_1.
const MinPathNodes = 1

// MinStarNodes is the smallest meaningful size for a star topology.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for a complete graph.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest size for RandomSparse.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Default Costs and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultVertexCost is the cost assigned to each vertex when no cost option
// is provided.
const DefaultVertexCost = 1.0

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
