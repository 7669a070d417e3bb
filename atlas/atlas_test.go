package atlas

import (
	"image"
	"testing"

	"github.com/milk9111/cellanim/anim"
)

func TestNewGrid(t *testing.T) {
	cases := []struct {
		name       string
		sheetW     int
		sheetH     int
		cellW      int
		cellH      int
		wantCount  int
		wantErr    bool
		checkIndex int
		wantRect   image.Rectangle
	}{
		{
			name:   "four_by_two",
			sheetW: 256, sheetH: 128, cellW: 64, cellH: 64,
			wantCount:  8,
			checkIndex: 5, // second row, second column
			wantRect:   image.Rect(64, 64, 128, 128),
		},
		{
			name:   "remainder_ignored",
			sheetW: 100, sheetH: 70, cellW: 32, cellH: 32,
			wantCount:  6,
			checkIndex: 0,
			wantRect:   image.Rect(0, 0, 32, 32),
		},
		{
			name:   "zero_cell_size",
			sheetW: 64, sheetH: 64, cellW: 0, cellH: 32,
			wantErr: true,
		},
		{
			name:   "sheet_smaller_than_cell",
			sheetW: 16, sheetH: 16, cellW: 32, cellH: 32,
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := NewGrid(c.sheetW, c.sheetH, c.cellW, c.cellH)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got atlas with %d cells", a.CellCount())
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGrid: %v", err)
			}
			if a.CellCount() != c.wantCount {
				t.Fatalf("expected %d cells, got %d", c.wantCount, a.CellCount())
			}
			if got := a.Cell(c.checkIndex); got != c.wantRect {
				t.Fatalf("cell %d: expected %v, got %v", c.checkIndex, c.wantRect, got)
			}
		})
	}
}

func TestAtlasCellClamps(t *testing.T) {
	a, err := NewGrid(128, 64, 64, 64)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if got := a.Cell(-1); got != a.Cell(0) {
		t.Fatalf("negative index should clamp to the first cell, got %v", got)
	}
	if got := a.Cell(99); got != a.Cell(1) {
		t.Fatalf("overflow index should clamp to the last cell, got %v", got)
	}
	if a.SubImage(0) != nil {
		t.Fatalf("atlas without an image must return a nil subimage")
	}
}

func TestAtlasSequenceCollection(t *testing.T) {
	a, err := NewGrid(256, 64, 64, 64)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	walk, err := anim.NewSequence("walk", []int{0, 1, 2}, 0.1, true)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	a.Append(walk)
	a.Append(nil) // ignored

	if len(a.Sequences()) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(a.Sequences()))
	}
	got, ok := a.Find("walk")
	if !ok || got != walk {
		t.Fatalf("expected to find walk")
	}
	if _, ok := a.Find("missing"); ok {
		t.Fatalf("missing sequence should not be found")
	}

	// An append through one manager is visible to another manager reading
	// the same atlas.
	host := &recordingHost{}
	m1, err := anim.NewManager(host, a, anim.NewFixedClock(60))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, err := m1.Add("shared", []int{1, 2}, 0.05, false, false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m2, err := anim.NewManager(&recordingHost{}, a, anim.NewFixedClock(60))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, ok := m2.Get("shared"); !ok {
		t.Fatalf("a sequence added through one manager should reach managers built later")
	}
}

type recordingHost struct {
	cell int
}

func (h *recordingHost) SetCell(index int) { h.cell = index }
