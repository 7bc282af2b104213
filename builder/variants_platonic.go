// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// variants_platonic.go - edge generators for the five Platonic graphs.
//
// All five are 3-connected planar graphs, which makes them useful separator
// fixtures with small, known sizes. Each shell is generated from its ring
// structure rather than stored as a table.

package builder

// chord is an index pair resolved through cfg.idFn.
type chord struct{ U, V int }

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Solids in stable order.
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// platonicShell returns the vertex count and edge list of the named solid.
// ok is false for an unknown name.
func platonicShell(name PlatonicName) (n int, edges []chord, ok bool) {
	switch name {
	case Tetrahedron:
		// K4.
		for u := 0; u < 4; u++ {
			for v := u + 1; v < 4; v++ {
				edges = append(edges, chord{u, v})
			}
		}
		return 4, edges, true

	case Cube:
		// Q3: vertices are 3-bit words, edges flip one bit.
		for u := 0; u < 8; u++ {
			for bit := 1; bit < 8; bit <<= 1 {
				if v := u ^ bit; u < v {
					edges = append(edges, chord{u, v})
				}
			}
		}
		return 8, edges, true

	case Octahedron:
		// K6 minus the three antipodal pairs {i, i+3}.
		for u := 0; u < 6; u++ {
			for v := u + 1; v < 6; v++ {
				if v != u+3 {
					edges = append(edges, chord{u, v})
				}
			}
		}
		return 6, edges, true

	case Dodecahedron:
		// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
		// Top vertex i meets the even middle vertex 10+2i, bottom vertex 5+i
		// meets the odd one 11+2i.
		for i := 0; i < 5; i++ {
			edges = append(edges,
				chord{i, (i + 1) % 5},
				chord{5 + i, 5 + (i+1)%5},
				chord{i, 10 + 2*i},
				chord{5 + i, 11 + 2*i},
			)
		}
		for i := 0; i < 10; i++ {
			edges = append(edges, chord{10 + i, 10 + (i+1)%10})
		}
		return 20, edges, true

	case Icosahedron:
		// Poles 0 and 11 over a pentagonal antiprism: top ring 1..5, bottom
		// ring 6..10, top i meeting bottom i and bottom i+1.
		for i := 0; i < 5; i++ {
			top, bot := 1+i, 6+i
			edges = append(edges,
				chord{0, top},
				chord{top, 1 + (i+1)%5},
				chord{top, bot},
				chord{top, 6 + (i+1)%5},
				chord{bot, 6 + (i+1)%5},
				chord{bot, 11},
			)
		}
		return 12, edges, true
	}

	return 0, nil, false
}
