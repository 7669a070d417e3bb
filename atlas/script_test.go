package atlas

import (
	"reflect"
	"testing"
)

func TestRunScript(t *testing.T) {
	src := `
spin := []
for i := 0; i < cell_count; i++ {
    spin = append(spin, i)
}
sequences := [
    {name: "spin", cells: spin, frame_duration: 0.08, loop: true},
    {name: "blink", cells: [0, 2], frame_duration: 0.25}
]
`
	seqs, err := RunScript([]byte(src), 4)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(seqs))
	}

	spin := seqs[0]
	if spin.Name() != "spin" || !spin.Loop() {
		t.Fatalf("unexpected spin: name=%q loop=%v", spin.Name(), spin.Loop())
	}
	if !reflect.DeepEqual(spin.Cells(), []int{0, 1, 2, 3}) {
		t.Fatalf("spin should span cell_count cells, got %v", spin.Cells())
	}

	blink := seqs[1]
	if blink.Loop() || blink.FrameDuration() != 0.25 {
		t.Fatalf("unexpected blink: loop=%v duration=%v", blink.Loop(), blink.FrameDuration())
	}
}

func TestRunScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"no_sequences_global", `x := 1`},
		{"not_an_array", `sequences := "nope"`},
		{"entry_not_a_map", `sequences := [42]`},
		{"missing_cells", `sequences := [{name: "a", frame_duration: 0.1}]`},
		{"bad_cell_type", `sequences := [{name: "a", cells: ["x"], frame_duration: 0.1}]`},
		{"missing_duration", `sequences := [{name: "a", cells: [0]}]`},
		{"fails_validation", `sequences := [{name: "a", cells: [0], frame_duration: -1}]`},
		{"compile_error", `sequences := [`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := RunScript([]byte(c.src), 4); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
