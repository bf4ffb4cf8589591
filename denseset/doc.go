// Package denseset implements the two vertex-set representations used by
// attractor computation (§4.6, §5, §9): a dense bitset, and a sparse hash
// set. Callers choose between them with the V/3 heuristic in New.
package denseset
