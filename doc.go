// Package dstar is the module root of an incremental path replanner for a
// single agent on an 8-connected terrain grid.
//
// What is in the box?
//
//	• gridmap   – terrain grid (Traversable, Blocked, Unknown), markers,
//	              adjacency, text map format, connected regions
//	• costtable – symmetric edge costs: 1.0 orthogonal, 1.4 diagonal,
//	              10000 for any edge touching a blocked cell
//	• dstar     – the D* planner: frontier, expansion step, obstacle
//	              discovery, incremental repair, agent traversal
//	• shortest  – reference Dijkstra used to check optimality
//	• render    – lipgloss drawing of the grid and the open list
//	• scenario  – YAML run descriptions with an optional truth map
//	• metrics   – Prometheus counters fed by planner hooks
//	• cmd/dstar – cobra CLI: run, step (bubbletea), costs, optimal
//
// Quick map example:
//
//	S O U O G      S start, G goal, O open, B blocked,
//	O O O O O      U unknown: priced as open until the agent looks
//
// The agent follows backpointers toward G; if the U cell turns out to be
// blocked, only the affected part of the search tree is repaired.
//
//	go install github.com/katalvlaran/dstar/cmd/dstar@latest
package dstar
