package overlay

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sensor-compare.klederson.com/internal/sensor"
)

var (
	colorCenter  = lipgloss.Color("#00FF41")
	colorOutline = lipgloss.Color("#AAAAAA")

	styleCenter = lipgloss.NewStyle().Foreground(colorCenter).Bold(true)
)

// Cell is the size of one terminal character in canvas pixels.
type Cell struct {
	Width  float64
	Height float64
}

// CanvasViewport returns the pixel viewport covered by a cols x rows grid,
// centered horizontally.
func CanvasViewport(cols, rows int, cell Cell) Viewport {
	w := float64(cols) * cell.Width
	return Viewport{
		Width:   w,
		Height:  float64(rows) * cell.Height,
		CenterX: w / 2,
	}
}

type span struct{ start, end int }

type canvas struct {
	cols, rows int
	ch         [][]rune
	owner      [][]int // index into boxes, -1 = empty
	label      [][]bool
	occupied   map[int][]span
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{
		cols:     cols,
		rows:     rows,
		ch:       make([][]rune, rows),
		owner:    make([][]int, rows),
		label:    make([][]bool, rows),
		occupied: make(map[int][]span),
	}
	for r := 0; r < rows; r++ {
		c.ch[r] = make([]rune, cols)
		c.owner[r] = make([]int, cols)
		c.label[r] = make([]bool, cols)
		for col := 0; col < cols; col++ {
			c.ch[r][col] = ' '
			c.owner[r][col] = -1
		}
	}
	return c
}

func (c *canvas) set(col, row int, ch rune, owner int) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.ch[row][col] = ch
	c.owner[row][col] = owner
	c.label[row][col] = false
}

// cellRect converts a pixel box to inclusive cell bounds.
func cellRect(b Box, cell Cell) (c0, r0, c1, r1 int) {
	c0 = int(math.Round(b.Left / cell.Width))
	r0 = int(math.Round(b.Top / cell.Height))
	c1 = int(math.Round((b.Left+b.PixelWidth)/cell.Width)) - 1
	r1 = int(math.Round((b.Top+b.PixelHeight)/cell.Height)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return
}

func (c *canvas) outline(c0, r0, c1, r1, owner int) {
	for col := c0; col <= c1; col++ {
		c.set(col, r0, '-', owner)
		c.set(col, r1, '-', owner)
	}
	for row := r0 + 1; row < r1; row++ {
		c.set(c0, row, '|', owner)
		c.set(c1, row, '|', owner)
	}
	c.set(c0, r0, '+', owner)
	c.set(c1, r0, '+', owner)
	c.set(c0, r1, '+', owner)
	c.set(c1, r1, '+', owner)
}

func (c *canvas) collides(row, start, end int) bool {
	for _, seg := range c.occupied[row] {
		if start < seg.end && end > seg.start {
			return true
		}
	}
	return false
}

// placeLabel writes text on the box border per its alignment. If another
// label is already there it tries one row inward, then gives up.
func (c *canvas) placeLabel(b Box, c0, r0, c1, r1 int, text string, owner int) {
	inner := c1 - c0 - 1
	runes := []rune(text)
	if inner < 1 || len(runes) == 0 {
		return
	}
	if len(runes) > inner {
		runes = runes[:inner]
	}
	n := len(runes)

	var col int
	switch b.JustifyContent {
	case sensor.AlignStart:
		col = c0 + 1
	case sensor.AlignCenter:
		col = c0 + 1 + (inner-n)/2
	default:
		col = c1 - n
	}

	row, inward := r1, r1-1
	if b.AlignItems == sensor.AlignStart {
		row, inward = r0, r0+1
	}
	if c.collides(row, col, col+n) {
		if inward <= r0 || inward >= r1 || c.collides(inward, col, col+n) {
			return
		}
		row = inward
	}
	if row < 0 || row >= c.rows {
		return
	}

	for i, ch := range runes {
		x := col + i
		if x < 0 || x >= c.cols {
			continue
		}
		c.ch[row][x] = ch
		c.owner[row][x] = owner
		c.label[row][x] = true
	}
	c.occupied[row] = append(c.occupied[row], span{col, col + n})
}

// Render draws the visible boxes as outlined rectangles on a cols x rows
// character grid. Boxes extending past the grid are clipped. sensors must
// be the catalog the boxes were laid out from.
func Render(cols, rows int, cell Cell, boxes []Box, sensors []sensor.Sensor) string {
	if cols < 4 || rows < 3 || cell.Width <= 0 || cell.Height <= 0 {
		return ""
	}

	// Largest first so smaller outlines stay on top.
	order := make([]int, 0, len(boxes))
	for i, b := range boxes {
		if b.Visible {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		ba, bb := boxes[order[a]], boxes[order[b]]
		return ba.PixelWidth*ba.PixelHeight > bb.PixelWidth*bb.PixelHeight
	})

	cv := newCanvas(cols, rows)
	cv.set(cols/2, rows/2, '+', -1)

	for _, i := range order {
		c0, r0, c1, r1 := cellRect(boxes[i], cell)
		cv.outline(c0, r0, c1, r1, i)
	}
	// Labels after outlines, smallest box first so inner labels win.
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		c0, r0, c1, r1 := cellRect(boxes[i], cell)
		cv.placeLabel(boxes[i], c0, r0, c1, r1, labelFor(boxes[i], sensors), i)
	}

	outline := make(map[int]lipgloss.Style)
	label := make(map[int]lipgloss.Style)
	for _, i := range order {
		s := sensorFor(boxes[i], sensors)
		outline[i] = outlineStyle(s)
		label[i] = labelStyle(s)
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch := cv.ch[row][col]
			owner := cv.owner[row][col]
			switch {
			case owner < 0 && ch == '+':
				sb.WriteString(styleCenter.Render(string(ch)))
			case owner < 0:
				sb.WriteRune(ch)
			case cv.label[row][col]:
				sb.WriteString(label[owner].Render(string(ch)))
			default:
				sb.WriteString(outline[owner].Render(string(ch)))
			}
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func sensorFor(b Box, sensors []sensor.Sensor) *sensor.Sensor {
	if b.Index >= 0 && b.Index < len(sensors) && sensors[b.Index].Model == b.Model {
		return &sensors[b.Index]
	}
	return nil
}

func labelFor(b Box, sensors []sensor.Sensor) string {
	if s := sensorFor(b, sensors); s != nil {
		return s.DisplayName()
	}
	return b.Model
}

func outlineStyle(s *sensor.Sensor) lipgloss.Style {
	if s == nil || s.Color == "" {
		return lipgloss.NewStyle().Foreground(colorOutline)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
}

func labelStyle(s *sensor.Sensor) lipgloss.Style {
	if s == nil || s.Color == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(colorOutline)
	}
	fg := s.TextColor
	if fg == "" {
		fg = "#FFFFFF"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(s.Color))
}
