package resource

import (
	"bytes"
	"fmt"

	"github.com/wisdomwellbeing/resourcectl/internal/util"
	"gopkg.in/yaml.v3"
)

// Marshal encodes a resource list to YAML bytes.
func Marshal(resources []Resource) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(resources); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the resource list to a file on disk, replacing it atomically.
func Save(path string, resources []Resource) error {
	data, err := Marshal(resources)
	if err != nil {
		return err
	}
	return util.WriteFileAtomic(path, data, 0644)
}
