package atlas

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cellanim/anim"
)

// Spec is the YAML definition of an atlas: the sheet image, the cell grid,
// and the sequences authored over it.
type Spec struct {
	Image      string         `yaml:"image"`
	CellWidth  int            `yaml:"cell_width"`
	CellHeight int            `yaml:"cell_height"`
	Sequences  []SequenceSpec `yaml:"sequences"`
}

// SequenceSpec is one authored sequence.
type SequenceSpec struct {
	Name          string  `yaml:"name"`
	Cells         []int   `yaml:"cells"`
	FrameDuration float64 `yaml:"frame_duration"`
	Loop          bool    `yaml:"loop"`
}

// LoadSpec reads and parses an atlas definition file.
func LoadSpec(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("atlas: load %s: %w", filename, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("atlas: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

// ParseSpec parses an atlas definition from YAML bytes.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("atlas: unmarshal spec: %w", err)
	}
	return &spec, nil
}

// BuildSequences validates and materializes the authored sequences.
func (s *Spec) BuildSequences() ([]*anim.Sequence, error) {
	seqs := make([]*anim.Sequence, 0, len(s.Sequences))
	for _, ss := range s.Sequences {
		seq, err := anim.NewSequence(ss.Name, ss.Cells, ss.FrameDuration, ss.Loop)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}
