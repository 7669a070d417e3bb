package anim

import "testing"

func TestNewSequenceValidation(t *testing.T) {
	cases := []struct {
		name          string
		cells         []int
		frameDuration float64
		wantErr       bool
	}{
		{"valid", []int{0, 1, 2}, 0.1, false},
		{"single_cell", []int{7}, 0.05, false},
		{"empty_cells", nil, 0.1, true},
		{"zero_duration", []int{0}, 0, true},
		{"negative_duration", []int{0}, -0.5, true},
		{"negative_cell", []int{0, -3}, 0.1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seq, err := NewSequence(c.name, c.cells, c.frameDuration, false)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected validation error, got sequence %+v", seq)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected sequence, got error %v", err)
			}
			if seq.Len() != len(c.cells) {
				t.Fatalf("expected %d cells, got %d", len(c.cells), seq.Len())
			}
		})
	}
}

func TestSequenceCellsIsCopy(t *testing.T) {
	src := []int{4, 5, 6}
	seq, err := NewSequence("run", src, 0.1, true)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	src[0] = 99
	if seq.Cell(0) != 4 {
		t.Fatalf("sequence should not share the caller's slice, cell 0 became %d", seq.Cell(0))
	}

	out := seq.Cells()
	out[1] = 99
	if seq.Cell(1) != 5 {
		t.Fatalf("Cells should return a copy, cell 1 became %d", seq.Cell(1))
	}
}
