// Package costtable stores symmetric traversal costs between adjacent grid
// cells and is the only place where obstacle discovery is recorded.
//
// Each unordered pair {a,b} of 8-adjacent cells holds exactly one cost.
// The bootstrap policy (Build) is:
//
//	orthogonal neighbours        Orthogonal (1.0)
//	diagonal neighbours          Diagonal   (1.4)
//	either endpoint Blocked      Blocked    (10000, finite "infinity")
//
// Unknown cells are priced as traversable until discovery raises their edges.
//
// Mutation rules:
//
//   - SetOnce records a cost only if the pair is absent (bootstrap never clobbers).
//   - Raise overwrites a cost only if the pair is already present; an absent
//     pair is an invariant violation and returns ErrUnsetPair.
//   - Lookup of an absent pair returns ErrUnsetPair rather than a made-up value.
//
// Complexity:
//
//   - SetOnce, Raise, Lookup, Has: O(1) average.
//   - Build: O(R×C×8).
//   - Pairs: O(E log E).
package costtable
