package renderer

import (
	"image"

	"github.com/ivlev/motiongfx/internal/timeline"
)

// gridLayouts maps an item count to columns x rows.
var gridLayouts = map[int][2]int{
	2: {2, 1}, 3: {3, 1}, 4: {2, 2}, 5: {3, 2}, 6: {3, 2},
	7: {4, 2}, 8: {4, 2}, 9: {3, 3}, 10: {4, 3}, 11: {4, 3}, 12: {4, 3},
}

// GridShape returns the columns and rows used for n items. Past twelve
// items the grid is five wide and grows downwards.
func GridShape(n int) (cols, rows int) {
	if n <= 1 {
		return 1, 1
	}
	if s, ok := gridLayouts[n]; ok {
		return s[0], s[1]
	}
	return 5, (n + 4) / 5
}

// GridLayout is the static overview of listicle_grid_highlight. Cards never
// move; rows with fewer items are centered.
type GridLayout struct {
	slots  []image.Rectangle
	card   image.Point
	border int
}

func NewGridLayout(n, width, height int, title bool) *GridLayout {
	const (
		margin = 30
		gap    = 12
		bottom = 30
	)
	titleH := 10
	if title {
		titleH = 70
	}

	cols, rows := GridShape(n)
	availW := width - margin*2 - (cols-1)*gap
	availH := height - titleH - margin - (rows-1)*gap - bottom

	cardW := availW / cols
	cardH := cardW * 9 / 16
	if cardH*rows+(rows-1)*gap > availH {
		cardH = availH / rows
		cardW = cardH * 16 / 9
	}

	gridW := cols*cardW + (cols-1)*gap
	gridH := rows*cardH + (rows-1)*gap
	x0 := (width - gridW) / 2
	y0 := titleH + (height-titleH-gridH)/2

	slots := make([]image.Rectangle, n)
	for i := range slots {
		row, col := i/cols, i%cols
		inRow := min(cols, n-row*cols)
		rowOffset := (cols - inRow) * (cardW + gap) / 2
		x := x0 + col*(cardW+gap) + rowOffset
		y := y0 + row*(cardH+gap)
		slots[i] = image.Rect(x, y, x+cardW, y+cardH)
	}

	return &GridLayout{
		slots:  slots,
		card:   image.Pt(cardW, cardH),
		border: 6,
	}
}

func (g *GridLayout) CardSize() image.Point { return g.card }
func (g *GridLayout) Border() int           { return g.border }
func (g *GridLayout) Bands() []Band         { return nil }

func (g *GridLayout) Slot(i int, _ timeline.FrameState) image.Rectangle {
	return g.slots[i]
}
