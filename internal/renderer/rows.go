package renderer

import (
	"image"
	"image/color"

	"github.com/ivlev/motiongfx/internal/timeline"
)

// RowSpec describes one row of a TwoRowLayout.
type RowSpec struct {
	List  string
	Label string
	Color color.RGBA
}

// TwoRowLayout is the good/bad overview: one labelled row per list, at
// most three cards visible. Longer rows slide together so that the focused
// column stays in view.
type TwoRowLayout struct {
	card      image.Point
	gapX      int
	viewportX int
	rowY      [2]int
	bands     []Band
	row       []int // row of each display index
	col       []int // column of each display index
	cols      int
}

const maxVisibleColumns = 3

func NewTwoRowLayout(seq *timeline.Sequence, rows [2]RowSpec, width, height int) *TwoRowLayout {
	const (
		labelH  = 28
		gapY    = 10
		gapX    = 8
		marginX = 10
	)

	cardW := (width - marginX*2 - (maxVisibleColumns-1)*gapX) / maxVisibleColumns
	cardH := cardW * 9 / 16
	contentH := cardH*2 + labelH*2 + gapY
	top := (height - contentH) / 2

	viewportW := maxVisibleColumns*cardW + (maxVisibleColumns-1)*gapX
	viewportX := (width - viewportW) / 2

	l := &TwoRowLayout{
		card:      image.Pt(cardW, cardH),
		gapX:      gapX,
		viewportX: viewportX,
		row:       make([]int, seq.Len()),
		col:       make([]int, seq.Len()),
	}

	labelY := top
	for r, spec := range rows {
		l.bands = append(l.bands, Band{
			Rect:   image.Rect(0, labelY, width, labelY+labelH),
			Label:  spec.Label,
			Color:  spec.Color,
			LabelX: viewportX,
		})
		l.rowY[r] = labelY + labelH
		labelY = l.rowY[r] + cardH + gapY
	}

	for i := 0; i < seq.Len(); i++ {
		e := seq.At(i)
		if e.List == rows[1].List {
			l.row[i] = 1
		}
		l.col[i] = e.SourceIndex
		l.cols = max(l.cols, e.SourceIndex+1)
	}
	return l
}

func (l *TwoRowLayout) CardSize() image.Point { return l.card }
func (l *TwoRowLayout) Border() int           { return 6 }
func (l *TwoRowLayout) Bands() []Band         { return l.bands }

// firstColumn is the leftmost visible column when col is focused.
func (l *TwoRowLayout) firstColumn(col int) float64 {
	if l.cols <= maxVisibleColumns {
		return 0
	}
	return float64(min(max(col-1, 0), l.cols-maxVisibleColumns))
}

// Shift is the number of columns the rows are slid left for state fs.
func (l *TwoRowLayout) Shift(fs timeline.FrameState) float64 {
	from := l.firstColumn(l.col[fs.ScrollFrom])
	to := l.firstColumn(l.col[fs.ScrollTo])
	return timeline.Lerp(from, to, fs.ScrollFraction)
}

func (l *TwoRowLayout) Slot(i int, fs timeline.FrameState) image.Rectangle {
	step := float64(l.card.X + l.gapX)
	x := l.viewportX + int((float64(l.col[i])-l.Shift(fs))*step)
	y := l.rowY[l.row[i]]
	return image.Rect(x, y, x+l.card.X, y+l.card.Y)
}
