package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
)

// Palette used for cell states.
var (
	colorOpen    = lipgloss.Color("#2CD7C7")
	colorClosed  = lipgloss.Color("#2C4A54")
	colorBlocked = lipgloss.Color("#E74C3C")
	colorUnknown = lipgloss.Color("#F4D03F")
	colorPath    = lipgloss.Color("#20B9B4")
)

// cellWidth fits "@O C 9999.9/9999.9 ↘" plus a separating space.
const cellWidth = 22

// Options configures rendering.
type Options struct {
	// Compact prints one glyph per cell instead of the full state.
	Compact bool
	// Renderer carries the colour profile; nil derives one from the writer.
	Renderer *lipgloss.Renderer
}

// Option is a functional option for Render and String.
type Option func(*Options)

// WithCompact selects the one-glyph-per-cell layout.
func WithCompact() Option {
	return func(o *Options) { o.Compact = true }
}

// WithRenderer sets an explicit lipgloss renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *Options) { o.Renderer = r }
}

// styles holds the per-state lipgloss styles bound to one renderer.
type styles struct {
	base, open, closed, blocked, unknown, path, marker, header lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle()
	return styles{
		base:    base,
		open:    base.Foreground(colorOpen),
		closed:  base.Foreground(colorClosed),
		blocked: base.Foreground(colorBlocked),
		unknown: base.Foreground(colorUnknown),
		path:    base.Foreground(colorPath).Bold(true),
		marker:  base.Bold(true),
		header:  base.Bold(true).Underline(true),
	}
}

func resolve(w io.Writer, opts []Option) (Options, styles) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Renderer == nil {
		if w != nil {
			cfg.Renderer = lipgloss.NewRenderer(w)
		} else {
			cfg.Renderer = lipgloss.DefaultRenderer()
		}
	}

	return cfg, newStyles(cfg.Renderer)
}

// Render writes the planner's grid to w.
func Render(w io.Writer, p *dstar.Planner, opts ...Option) error {
	cfg, st := resolve(w, opts)
	_, err := io.WriteString(w, grid(p, cfg, st)+"\n")

	return err
}

// String returns the rendered grid using the default renderer unless one
// is supplied.
func String(p *dstar.Planner, opts ...Option) string {
	cfg, st := resolve(nil, opts)

	return grid(p, cfg, st)
}

func grid(p *dstar.Planner, cfg Options, st styles) string {
	g := p.Grid()
	onPath := make(map[gridmap.Cell]struct{})
	for _, c := range p.Path() {
		onPath[c] = struct{}{}
	}

	rows := make([]string, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			v, _ := p.Node(gridmap.Cell{Row: r, Col: c})
			_, path := onPath[v.Cell]
			if cfg.Compact {
				cells[c] = styleFor(st, v, path).Render(string(Glyph(g, v.Cell, path)))
				continue
			}
			cells[c] = styleFor(st, v, path).Width(cellWidth).Render(Label(g, v))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// styleFor picks the colour for a cell: terrain first, then path, then tag.
func styleFor(st styles, v dstar.NodeView, path bool) lipgloss.Style {
	switch {
	case v.Terrain == gridmap.Blocked:
		return st.blocked
	case path:
		return st.path
	case v.Terrain == gridmap.Unknown:
		return st.unknown
	case v.Tag == dstar.TagOpen:
		return st.open
	case v.Tag == dstar.TagClosed:
		return st.closed
	default:
		return st.base
	}
}

// Glyph is the compact symbol for c:
//
//	@ agent   G goal   S start   # blocked   * on route   ? unknown   . clear
func Glyph(g *gridmap.Grid, c gridmap.Cell, onPath bool) rune {
	if m := marker(g, c); m != ' ' {
		return m
	}
	switch t := g.Terrain(c); {
	case t == gridmap.Blocked:
		return '#'
	case onPath:
		return '*'
	case t == gridmap.Unknown:
		return '?'
	default:
		return '.'
	}
}

// marker returns the agent, goal or start letter, or a space.
func marker(g *gridmap.Grid, c gridmap.Cell) rune {
	switch c {
	case g.Agent():
		return '@'
	case g.Goal():
		return 'G'
	case g.Start():
		return 'S'
	default:
		return ' '
	}
}

// Label is the full per-cell text: marker, terrain, tag initial, h/k and
// the backpointer arrow. NEW cells show dashes for h and k.
func Label(g *gridmap.Grid, v dstar.NodeView) string {
	var sb strings.Builder
	sb.WriteRune(marker(g, v.Cell))
	sb.WriteRune(terrainRune(v.Terrain))
	sb.WriteByte(' ')
	sb.WriteByte(v.Tag.String()[0])
	sb.WriteByte(' ')
	if v.Tag == dstar.TagNew {
		sb.WriteString("-/-")
	} else {
		sb.WriteString(cost(v.H))
		sb.WriteByte('/')
		sb.WriteString(cost(v.K))
	}
	sb.WriteByte(' ')
	sb.WriteRune(Arrow(v))

	return sb.String()
}

func terrainRune(t gridmap.Terrain) rune {
	switch t {
	case gridmap.Blocked:
		return 'B'
	case gridmap.Unknown:
		return 'U'
	default:
		return 'O'
	}
}

// cost prints one decimal, or "inf" for the blocked sentinel.
func cost(v float64) string {
	if v >= costtable.Blocked {
		return "inf"
	}

	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Arrow points from v toward its backpointer; '·' when there is none.
func Arrow(v dstar.NodeView) rune {
	if !v.HasParent {
		return '·'
	}
	switch [2]int{v.Parent.Row - v.Cell.Row, v.Parent.Col - v.Cell.Col} {
	case [2]int{-1, 0}:
		return '↑'
	case [2]int{1, 0}:
		return '↓'
	case [2]int{0, 1}:
		return '→'
	case [2]int{0, -1}:
		return '←'
	case [2]int{-1, 1}:
		return '↗'
	case [2]int{1, -1}:
		return '↙'
	case [2]int{1, 1}:
		return '↘'
	case [2]int{-1, -1}:
		return '↖'
	default:
		return '?'
	}
}

// FrontierTable writes the open list in expansion order as aligned columns.
func FrontierTable(w io.Writer, p *dstar.Planner, opts ...Option) error {
	cfg, st := resolve(w, opts)
	_, err := io.WriteString(w, frontierTable(p.Frontier(), cfg, st)+"\n")

	return err
}

// FrontierString returns the open-list table using the default renderer
// unless one is supplied.
func FrontierString(p *dstar.Planner, opts ...Option) string {
	cfg, st := resolve(nil, opts)

	return frontierTable(p.Frontier(), cfg, st)
}

func frontierTable(open []dstar.NodeView, _ Options, st styles) string {
	widths := []int{8, 9, 9, 8}
	row := func(s lipgloss.Style, fields ...string) string {
		cols := make([]string, len(fields))
		for i, f := range fields {
			cols[i] = s.Width(widths[i]).Render(f)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	lines := []string{row(st.header, "cell", "h", "k", "parent")}
	for _, v := range open {
		parent := "-"
		if v.HasParent {
			parent = v.Parent.String()
		}
		lines = append(lines, row(st.open, v.Cell.String(), cost(v.H), cost(v.K), parent))
	}
	lines = append(lines, st.closed.Render(fmt.Sprintf("%d queued", len(open))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
