// Package render draws a planner's grid and frontier for terminals using
// lipgloss styles.
//
// Two layouts are available. The full layout prints, per cell, the agent,
// goal or start marker, the terrain letter, the tag initial, h/k and an
// arrow toward the backpointer. The compact layout (WithCompact) prints one
// glyph per cell and marks the current route with '*'.
//
// Colour is chosen by the lipgloss renderer bound to the output writer, so
// redirected output stays plain text.
package render
