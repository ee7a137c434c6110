// Package canvas paints a diagram plan onto a character grid.
//
// Node coordinates are pixel positions laid out left to right. The grid
// turns them top-down: x picks the row and y picks the column, so the
// feeder chain reads downwards in a terminal.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pontutor/internal/modules/tutor/dto"
	"pontutor/internal/ui/theme"
)

const (
	pxPerRow = 25.0
	pxPerCol = 2.2

	BoxWidth   = 28
	innerWidth = BoxWidth - 4
	labelGap   = 2
)

// Style tags a cell. Rendering maps tags to lipgloss styles.
type Style uint8

const (
	StyleNone Style = iota
	StyleEdge
	StyleEdgeLabel
	StyleBorder
	StyleBorderSelected
	StyleBorderFocused
	StyleNodeLabel
	StyleCaption
	StyleAnnotation
	StyleDim
)

var styles = map[Style]lipgloss.Style{
	StyleEdge:           lipgloss.NewStyle().Foreground(theme.Overlay0),
	StyleEdgeLabel:      lipgloss.NewStyle().Foreground(theme.Yellow),
	StyleBorder:         lipgloss.NewStyle().Foreground(theme.Surface1),
	StyleBorderSelected: lipgloss.NewStyle().Foreground(theme.Peach).Bold(true),
	StyleBorderFocused:  lipgloss.NewStyle().Foreground(theme.Lavender),
	StyleNodeLabel:      theme.Bold,
	StyleCaption:        theme.Muted,
	StyleAnnotation:     lipgloss.NewStyle().Foreground(theme.Green),
	StyleDim:            theme.Faint,
}

type cell struct {
	r  rune
	st Style
}

type point struct{ row, col int }

// Box is the grid area covered by one node.
type Box struct {
	ID     string
	Top    int
	Left   int
	Height int
}

func (b Box) contains(row, col int) bool {
	return row >= b.Top && row < b.Top+b.Height && col >= b.Left && col < b.Left+BoxWidth
}

func (b Box) center() int { return b.Left + BoxWidth/2 }

// Canvas is a painted diagram. The zero value is an empty canvas.
type Canvas struct {
	cells [][]cell
	boxes []Box
}

// Paint lays out the plan. focusID marks the node holding keyboard focus
// and may be empty.
func Paint(d dto.DiagramOutput, focusID string) *Canvas {
	sp := newSparse()

	boxes := make([]Box, 0, len(d.Nodes))
	byID := make(map[string]Box, len(d.Nodes))
	for _, n := range d.Nodes {
		h := 4
		if n.Annotation != "" {
			h = 5
		}
		b := Box{
			ID:     n.ID,
			Top:    round(n.X / pxPerRow),
			Left:   round(n.Y/pxPerCol) - BoxWidth/2,
			Height: h,
		}
		boxes = append(boxes, b)
		byID[n.ID] = b
	}

	for _, e := range d.Edges {
		from, ok := byID[e.From]
		if !ok {
			continue
		}
		to, ok := byID[e.To]
		if !ok {
			continue
		}
		pts := line(from.Top+from.Height, from.center(), to.Top-1, to.center())
		sp.stroke(pts)
		if e.ShowLabel && e.Label != "" {
			sp.label(pts, e.Label)
		}
	}

	// Nodes go last so they sit on top of any edge crossing them.
	for i, n := range d.Nodes {
		sp.box(boxes[i], n, n.ID == focusID)
	}

	return sp.materialize(boxes)
}

// NodeAt returns the node whose box covers the grid cell.
func (c *Canvas) NodeAt(row, col int) (string, bool) {
	for i := len(c.boxes) - 1; i >= 0; i-- {
		if c.boxes[i].contains(row, col) {
			return c.boxes[i].ID, true
		}
	}
	return "", false
}

// BoxOf returns the grid area of a node.
func (c *Canvas) BoxOf(id string) (Box, bool) {
	for _, b := range c.boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

func (c *Canvas) Size() (width, height int) {
	if len(c.cells) == 0 {
		return 0, 0
	}
	return len(c.cells[0]), len(c.cells)
}

// Plain renders the whole grid without styling and with trailing blanks
// trimmed.
func (c *Canvas) Plain() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		var sb strings.Builder
		for _, cl := range row {
			sb.WriteRune(cl.r)
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Window renders the styled cells of a rectangle. Cells outside the grid
// render as blanks so the result always has the requested size.
func (c *Canvas) Window(top, left, height, width int) string {
	lines := make([]string, 0, height)
	for r := top; r < top+height; r++ {
		var sb strings.Builder
		var run []rune
		cur := StyleNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := styles[cur]; ok {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for col := left; col < left+width; col++ {
			cl := cell{r: ' '}
			if r >= 0 && r < len(c.cells) && col >= 0 && col < len(c.cells[r]) {
				cl = c.cells[r][col]
			}
			if cl.st != cur {
				flush()
				cur = cl.st
			}
			run = append(run, cl.r)
		}
		flush()
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// ─── painting ────────────────────────────────────────────────────────────────

// sparse collects cells in unbounded coordinates; materialize shifts them
// so the top-left painted cell lands at (0, 0).
type sparse struct {
	cells                  map[point]cell
	minR, minC, maxR, maxC int
}

func newSparse() *sparse {
	return &sparse{
		cells: make(map[point]cell),
		minR:  math.MaxInt,
		minC:  math.MaxInt,
		maxR:  math.MinInt,
		maxC:  math.MinInt,
	}
}

func (s *sparse) set(row, col int, r rune, st Style) {
	s.cells[point{row, col}] = cell{r: r, st: st}
	s.minR = min(s.minR, row)
	s.minC = min(s.minC, col)
	s.maxR = max(s.maxR, row)
	s.maxC = max(s.maxC, col)
}

func (s *sparse) text(row, col int, str string, st Style) {
	for _, r := range str {
		s.set(row, col, r, st)
		col++
	}
}

func (s *sparse) stroke(pts []point) {
	last := len(pts) - 1
	for i, p := range pts {
		if i < last {
			next := pts[i+1]
			s.set(p.row, p.col, segment(next.row-p.row, next.col-p.col), StyleEdge)
			continue
		}
		var dr, dc int
		if i > 0 {
			dr, dc = p.row-pts[i-1].row, p.col-pts[i-1].col
		}
		s.set(p.row, p.col, arrow(dr, dc), StyleEdge)
	}
}

// label prints next to the line's midpoint, on the side the line leans
// away from.
func (s *sparse) label(pts []point, text string) {
	mid := pts[len(pts)/2]
	lo, hi := pts[0].col, pts[0].col
	for _, p := range pts {
		lo = min(lo, p.col)
		hi = max(hi, p.col)
	}
	first, last := pts[0], pts[len(pts)-1]
	switch {
	case last.col < first.col:
		s.text(mid.row, lo-labelGap-runeLen(text), text, StyleEdgeLabel)
	case last.col > first.col:
		s.text(mid.row, hi+labelGap, text, StyleEdgeLabel)
	default:
		s.text(mid.row, mid.col+labelGap, text, StyleEdgeLabel)
	}
}

func (s *sparse) box(b Box, n dto.DiagramNodeOutput, focused bool) {
	border := StyleBorder
	switch {
	case n.Selected:
		border = StyleBorderSelected
	case focused:
		border = StyleBorderFocused
	}
	labelSt, captionSt, annotSt := StyleNodeLabel, StyleCaption, StyleAnnotation
	if n.Dimmed {
		border, labelSt, captionSt, annotSt = StyleDim, StyleDim, StyleDim, StyleDim
	}

	tl, tr, bl, br, h, v := '╭', '╮', '╰', '╯', '─', '│'
	if focused {
		tl, tr, bl, br, h, v = '╔', '╗', '╚', '╝', '═', '║'
	}

	bottom := b.Top + b.Height - 1
	right := b.Left + BoxWidth - 1
	for r := b.Top; r <= bottom; r++ {
		for c := b.Left; c <= right; c++ {
			s.set(r, c, ' ', StyleNone)
		}
	}
	for c := b.Left + 1; c < right; c++ {
		s.set(b.Top, c, h, border)
		s.set(bottom, c, h, border)
	}
	for r := b.Top + 1; r < bottom; r++ {
		s.set(r, b.Left, v, border)
		s.set(r, right, v, border)
	}
	s.set(b.Top, b.Left, tl, border)
	s.set(b.Top, right, tr, border)
	s.set(bottom, b.Left, bl, border)
	s.set(bottom, right, br, border)

	s.text(b.Top+1, b.Left+2, fit(theme.Glyph(n.Icon)+" "+n.Label), labelSt)
	s.text(b.Top+2, b.Left+2, fit(n.Caption), captionSt)
	if n.Annotation != "" {
		s.text(b.Top+3, b.Left+2, fit(n.Annotation), annotSt)
	}
}

func (s *sparse) materialize(boxes []Box) *Canvas {
	if len(s.cells) == 0 {
		return &Canvas{}
	}
	height := s.maxR - s.minR + 1
	width := s.maxC - s.minC + 1
	grid := make([][]cell, height)
	for r := range grid {
		row := make([]cell, width)
		for c := range row {
			row[c] = cell{r: ' '}
		}
		grid[r] = row
	}
	for p, cl := range s.cells {
		grid[p.row-s.minR][p.col-s.minC] = cl
	}
	shifted := make([]Box, len(boxes))
	for i, b := range boxes {
		b.Top -= s.minR
		b.Left -= s.minC
		shifted[i] = b
	}
	return &Canvas{cells: grid, boxes: shifted}
}

// ─── geometry ────────────────────────────────────────────────────────────────

// line walks the cells between two points (Bresenham), both ends included.
func line(r0, c0, r1, c1 int) []point {
	dr, dc := abs(r1-r0), abs(c1-c0)
	sr, sc := sign(r1-r0), sign(c1-c0)
	err := dc - dr
	var pts []point
	for {
		pts = append(pts, point{r0, c0})
		if r0 == r1 && c0 == c1 {
			return pts
		}
		e2 := 2 * err
		if e2 > -dr {
			err -= dr
			c0 += sc
		}
		if e2 < dc {
			err += dc
			r0 += sr
		}
	}
}

func segment(dr, dc int) rune {
	switch {
	case dr == 0:
		return '─'
	case dc == 0:
		return '│'
	case (dr > 0) == (dc > 0):
		return '╲'
	default:
		return '╱'
	}
}

func arrow(dr, dc int) rune {
	switch {
	case dr < 0:
		return '▲'
	case dr == 0 && dc > 0:
		return '▶'
	case dr == 0 && dc < 0:
		return '◀'
	default:
		return '▼'
	}
}

func fit(s string) string {
	if runeLen(s) <= innerWidth {
		return s
	}
	r := []rune(s)
	return string(r[:innerWidth-1]) + "…"
}

func runeLen(s string) int { return len([]rune(s)) }

func round(f float64) int { return int(math.Round(f)) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
