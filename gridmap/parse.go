package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads the text map format from r. Each non-empty line is one row;
// surrounding whitespace is ignored. The agent starts on the 'S' cell.
//
// Errors carry the 1-based line and column of the offending rune:
//   - ErrEmptyGrid if no rows were read.
//   - ErrNonRectangular if a row differs in length from the first.
//   - ErrBadRune for runes outside O, B, U, S, G.
//   - ErrMissingStart / ErrMissingGoal / ErrDuplicateMarker for marker problems.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows          [][]Terrain
		start, goal   Cell
		haveS, haveG  bool
		sc            = bufio.NewScanner(r)
		line, lineNum int
	)
	for sc.Scan() {
		lineNum++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]Terrain, 0, len(text))
		for col, ch := range []rune(text) {
			t, err := ParseTerrain(ch)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d: %w", lineNum, col+1, err)
			}
			switch ch {
			case 'S':
				if haveS {
					return nil, fmt.Errorf("line %d col %d: %w", lineNum, col+1, ErrDuplicateMarker)
				}
				start, haveS = Cell{Row: line, Col: col}, true
			case 'G':
				if haveG {
					return nil, fmt.Errorf("line %d col %d: %w", lineNum, col+1, ErrDuplicateMarker)
				}
				goal, haveG = Cell{Row: line, Col: col}, true
			}
			row = append(row, t)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrNonRectangular)
		}
		rows = append(rows, row)
		line++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: read map: %w", err)
	}

	g, err := FromTerrain(rows)
	if err != nil {
		return nil, err
	}
	if !haveS {
		return nil, ErrMissingStart
	}
	if !haveG {
		return nil, ErrMissingGoal
	}
	// markers are validated by construction; errors cannot occur here
	_ = g.SetStart(start)
	_ = g.SetGoal(goal)

	return g, nil
}

// ParseString is Parse over a string literal.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load opens path and parses it with Parse.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("gridmap: %s: %w", path, err)
	}

	return g, nil
}

// Format writes g in the text map format, one row per line.
// Start and goal markers override the terrain rune of their cells. A grid
// whose start and goal coincide has no text form and yields
// ErrMarkersCoincide before anything is written.
func (g *Grid) Format(w io.Writer) error {
	if g.start == g.goal {
		return fmt.Errorf("%w: %v", ErrMarkersCoincide, g.start)
	}
	for r := 0; r < g.rows; r++ {
		if _, err := io.WriteString(w, g.row(r)); err != nil {
			return err
		}
	}

	return nil
}

// String returns the text map form of g. Unlike Format it never fails:
// coinciding markers print as a single 'S'.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.WriteString(g.row(r))
	}

	return sb.String()
}

// row renders row r with its trailing newline; S wins over G.
func (g *Grid) row(r int) string {
	var sb strings.Builder
	for c := 0; c < g.cols; c++ {
		cell := Cell{Row: r, Col: c}
		switch cell {
		case g.start:
			sb.WriteByte('S')
		case g.goal:
			sb.WriteByte('G')
		default:
			sb.WriteString(g.Terrain(cell).String())
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}
