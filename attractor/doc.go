// Package attractor computes attractor sets (§4.6): given a vertex subset S,
// a target player, and an output strategy vector, it computes the largest
// set A ⊇ S that the player can force play into, recording a winning move
// for every player-owned vertex added along the way.
//
// Per the open question in spec §9, this package implements only the
// liberties-counter variant (a per-vertex out-degree counter decremented as
// successors enter A), which is strictly O(V+E) — the original source's
// alternative dense-bitset "try all successors" variant is not carried
// forward, since the spec directs implementations toward the
// liberties-counter algorithm when a discrepancy would otherwise need
// resolving.
package attractor
