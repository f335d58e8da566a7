package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slemfisk/midi-clean-v3/pipeline"
)

// Read loads a YAML preset carrying the same fields as the clean command's
// flags. Unknown fields are rejected so a typo cannot silently disable a
// pass.
func Read(path string) (*pipeline.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open preset %v: %v", path, err)
	}
	defer f.Close()

	var opts pipeline.Options
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return nil, fmt.Errorf("could not decode preset %v: %v", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("bad preset %v: %v", path, err)
	}
	return &opts, nil
}
