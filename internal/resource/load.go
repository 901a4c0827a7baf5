package resource

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateID is returned when two records share an ID.
var ErrDuplicateID = errors.New("duplicate resource id")

// Load reads a catalog YAML file from disk.
func Load(path string) ([]Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	resources, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resources, nil
}

// Parse decodes YAML bytes into a validated resource list. Records without
// an id are assigned a random one.
func Parse(data []byte) ([]Resource, error) {
	if len(data) == 0 {
		return []Resource{}, nil
	}
	var resources []Resource
	if err := yaml.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if resources == nil {
		return []Resource{}, nil
	}
	for i := range resources {
		if resources[i].ID == "" {
			resources[i].ID = uuid.NewString()
		}
	}
	if err := ValidateAll(resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// ValidateAll validates every record and checks IDs are unique.
func ValidateAll(resources []Resource) error {
	seen := make(map[string]struct{}, len(resources))
	for _, r := range resources {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
