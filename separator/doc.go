// Package separator finds one balanced vertex separator of a vertex-costed
// planar graph with the level-based search of Lipton and Tarjan.
//
// A Finder runs five stages:
//
//  1. Connected components and their costs (through an oracle.Graph).
//     When no component costs more than 2/3 of the total the graph is
//     already balanced and the Result is Trivial.
//  2. The costliest component becomes the target.
//  3. Breadth-first levels are grown from the target's smallest vertex ID.
//  4. The critical level l1 is the first level at which the running level
//     weight exceeds half of the target's cost; l0 ≤ l1 < l2 bound it from
//     both sides with the √k rule.
//  5. Level l1 is the separator. Component1 holds levels ≤ l1, Component2
//     holds levels > l1 plus the separator, and the remaining components are
//     dealt to whichever side is cheaper.
//
// Mode decides what "level weight" means: ModeLevelCount counts vertices,
// ModeLevelCost sums their costs.
//
// The sides overlap in exactly the separator and no edge joins
// Component1\Separator to Component2\Separator. The finder is not recursive;
// see package septree for the dissection tree.
package separator
