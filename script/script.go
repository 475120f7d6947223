package script

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Step is one entry of a script. Its operations are applied in
// order: clear, then every insert, then every remove
type Step struct {
	Insert []int `yaml:"insert,omitempty"`
	Remove []int `yaml:"remove,omitempty"`
	Clear  bool  `yaml:"clear,omitempty"`
}

// Empty returns true if the step has no operations
func (s Step) Empty() bool {
	return !s.Clear && len(s.Insert) == 0 && len(s.Remove) == 0
}

// Parse decodes a script, a yaml sequence of steps. An empty
// document is an empty script
func Parse(r io.Reader) ([]Step, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var steps []Step
	if err := decoder.Decode(&steps); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to decode script")
	}

	for i, step := range steps {
		if step.Empty() {
			return nil, ErrEmptyStep{Index: i}
		}
	}

	return steps, nil
}

// Load reads and parses the script at path
func Load(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %s", path)
	}
	defer f.Close()

	steps, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load script %s", path)
	}

	return steps, nil
}

// Encode writes steps as a script that Parse can read back
func Encode(w io.Writer, steps []Step) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(steps); err != nil {
		return errors.Wrap(err, "failed to encode script")
	}

	return encoder.Close()
}
