package atlas

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/cellanim/anim"
)

// RunScript evaluates a tengo sequence-authoring script and returns the
// sequences it defines. The script sees a `cell_count` global holding the
// atlas's cell count and must assign `sequences`: an array of maps with
// `name`, `cells`, `frame_duration`, and an optional `loop` key, e.g.
//
//	sequences := [
//	    {name: "spin", cells: [0, 1, 2, 3], frame_duration: 0.08, loop: true},
//	]
func RunScript(src []byte, cellCount int) ([]*anim.Sequence, error) {
	script := tengo.NewScript(src)
	if err := script.Add("cell_count", cellCount); err != nil {
		return nil, fmt.Errorf("atlas: script setup: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("atlas: compile script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("atlas: run script: %w", err)
	}
	if !compiled.IsDefined("sequences") {
		return nil, fmt.Errorf("atlas: script defines no sequences global")
	}

	raw := compiled.Get("sequences").Array()
	if raw == nil {
		return nil, fmt.Errorf("atlas: script global sequences is not an array")
	}
	seqs := make([]*anim.Sequence, 0, len(raw))
	for i, entry := range raw {
		def, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("atlas: script sequence %d is not a map", i)
		}
		seq, err := sequenceFromScript(def)
		if err != nil {
			return nil, fmt.Errorf("atlas: script sequence %d: %w", i, err)
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

// LoadScript reads and evaluates a sequence-authoring script file.
func LoadScript(filename string, cellCount int) ([]*anim.Sequence, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("atlas: load %s: %w", filename, err)
	}
	return RunScript(src, cellCount)
}

func sequenceFromScript(def map[string]interface{}) (*anim.Sequence, error) {
	name, _ := def["name"].(string)

	cellsRaw, ok := def["cells"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing cells array")
	}
	cells := make([]int, 0, len(cellsRaw))
	for _, c := range cellsRaw {
		n, ok := scriptInt(c)
		if !ok {
			return nil, fmt.Errorf("cell %v is not an integer", c)
		}
		cells = append(cells, n)
	}

	dur, ok := scriptFloat(def["frame_duration"])
	if !ok {
		return nil, fmt.Errorf("missing frame_duration")
	}
	loop, _ := def["loop"].(bool)

	return anim.NewSequence(name, cells, dur, loop)
}

func scriptInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func scriptFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
