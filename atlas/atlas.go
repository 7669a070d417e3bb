// Package atlas provides the texture-atlas collaborator the anim package
// consumes: grid-sliced cell geometry over an optional sprite sheet, plus
// the shared, appendable sequence collection defined on it. Definitions can
// be authored as YAML files, tengo scripts, or in code.
package atlas

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cellanim/anim"
)

var _ anim.Atlas = (*Atlas)(nil)

// Atlas is a grid of equally sized cells over one sprite sheet, together
// with the sequences authored on it. It is an externally owned resource:
// several managers may read the same atlas, and Append is a side effect
// visible to all of them. Access follows a single-writer, single-threaded
// discipline; the atlas does no locking of its own.
type Atlas struct {
	image     *ebiten.Image
	cells     []image.Rectangle
	sequences []*anim.Sequence
}

// NewGrid slices a sheetW x sheetH sheet into cellW x cellH cells, left to
// right, top to bottom. Remainder pixels that don't fill a whole cell are
// ignored.
func NewGrid(sheetW, sheetH, cellW, cellH int) (*Atlas, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("atlas: cell size must be positive, got %dx%d", cellW, cellH)
	}
	cols := sheetW / cellW
	rows := sheetH / cellH
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlas: sheet %dx%d holds no %dx%d cell", sheetW, sheetH, cellW, cellH)
	}
	cells := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col * cellW
			y := row * cellH
			cells = append(cells, image.Rect(x, y, x+cellW, y+cellH))
		}
	}
	return &Atlas{cells: cells}, nil
}

// FromImage slices an already loaded sprite sheet.
func FromImage(img *ebiten.Image, cellW, cellH int) (*Atlas, error) {
	if img == nil {
		return nil, fmt.Errorf("atlas: nil sheet image")
	}
	b := img.Bounds()
	a, err := NewGrid(b.Dx(), b.Dy(), cellW, cellH)
	if err != nil {
		return nil, err
	}
	a.image = img
	return a, nil
}

// AttachImage binds the sheet image cells are cut from. Useful when the
// geometry is known before the image is loaded.
func (a *Atlas) AttachImage(img *ebiten.Image) { a.image = img }

// CellCount returns the number of cells in the grid.
func (a *Atlas) CellCount() int { return len(a.cells) }

// Cell returns the pixel rectangle of cell i, clamping out-of-range
// indices into the grid.
func (a *Atlas) Cell(i int) image.Rectangle {
	if i < 0 {
		i = 0
	}
	if i >= len(a.cells) {
		i = len(a.cells) - 1
	}
	return a.cells[i]
}

// SubImage returns the sheet region for cell i, or nil when the atlas has
// no image attached.
func (a *Atlas) SubImage(i int) *ebiten.Image {
	if a.image == nil || len(a.cells) == 0 {
		return nil
	}
	return a.image.SubImage(a.Cell(i)).(*ebiten.Image)
}

// Sequences returns the shared sequence collection in definition order.
// Callers must not mutate the returned slice.
func (a *Atlas) Sequences() []*anim.Sequence { return a.sequences }

// Append adds seq to the shared collection. Every manager reading this
// atlas observes the new sequence.
func (a *Atlas) Append(seq *anim.Sequence) {
	if seq == nil {
		return
	}
	a.sequences = append(a.sequences, seq)
}

// Find returns the first sequence registered under name.
func (a *Atlas) Find(name string) (*anim.Sequence, bool) {
	for _, s := range a.sequences {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// SetSequences replaces the whole collection. Used when definitions are
// reloaded from disk; managers built before the reload keep their old
// sequences until rebuilt.
func (a *Atlas) SetSequences(seqs []*anim.Sequence) { a.sequences = seqs }
