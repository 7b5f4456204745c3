// Package dstar implements Stentz's D* incremental replanner on an
// 8-connected terrain grid.
//
// The planner searches backwards from the goal, so every expanded cell holds
// a cost-to-goal estimate h and a backpointer toward the goal. The
// backpointers form a tree rooted at the goal; the agent simply follows it.
// When the agent observes that its next cell is blocked, the incident edge
// costs are raised and only the affected part of the tree is repaired,
// reusing all earlier expansions.
//
// Per-cell state:
//
//	Tag  NEW (never queued) → OPEN (queued) → CLOSED (expanded) → OPEN (reopened) …
//	h    current best cost to the goal
//	k    frontier key: the smallest h held since the cell was last queued
//	b    backpointer (arena index of the next hop)
//
// Expansion (Step) pops the minimum-k cell X and compares k_old with h(X):
//
//	k_old <  h(X)  raise state: first try to lower h(X) through neighbours
//	               already final at k_old, then fall through.
//	k_old == h(X)  lower state: propagate h(X)+c to every neighbour that is
//	               NEW, routed through X with a stale h, or improvable via X.
//	otherwise      raise correction: push the increase to children of X,
//	               requeue X if a neighbour could use it later, and reopen
//	               closed neighbours that could lower X.
//
// Costs are rounded to one decimal before they are stored or compared so
// that accumulated 1.0/1.4 sums stay exact, and every candidate is clamped
// to costtable.Blocked, the finite stand-in for infinity.
//
// Entry points:
//
//   - Step: one expansion; returns the new minimum key or ok=false when exhausted.
//   - Plan: expand from the goal until the agent's cell is final.
//   - Advance: one caller-driven agent hop, repairing first if the hop is blocked.
//   - Traverse: Advance until the goal is reached or proven unreachable.
//   - Node, Frontier, Path, Stats: read-only introspection.
//
// Unreachability is a normal Outcome, never an error. A missing edge cost
// is an invariant violation: New rejects incomplete tables with
// ErrIncompleteCosts, and Step panics if one is ever observed.
//
// A Planner is single-threaded and not safe for concurrent use.
package dstar
