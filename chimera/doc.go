// Package chimera partitions a Chimera-structured quadratic model into
// a fixed sequence of sub-lattice tiles.
//
// A Chimera lattice C(M,N,t) is an M-by-N grid of cells, each cell a
// complete bipartite graph K_{t,t} between two shores of size t. Nodes
// are identified by their row-major linear index:
//
//	linear(i, j, u, k) = (i·N + j)·2t + u·t + k
//
// for cell (i,j), shore u ∈ {0,1}, and in-shore position k ∈ [0,t).
// A model is "Chimera-indexed" when every variable name is the decimal
// form of such an index.
//
// Tiles slices the source lattice into m-by-n windows, row-major, and
// reports for each window the problem variables it covers together with
// their positions local to a C(m,n,t) tile. Hardware-tiling decomposers
// consume the sequence one tile per call; the order is fixed at
// partition time, so repeated partitions of equal models agree.
package chimera
