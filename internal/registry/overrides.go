package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quorum/pkg/models"
)

// overridesFile is the on-disk shape of a specializations override file:
// a mapping of provider name to specialization.
type overridesFile struct {
	Specializations map[string]Specialization `yaml:"specializations"`
}

// LoadOverrides reads a YAML specializations file and returns the parsed
// overrides keyed by provider. Unknown provider names are rejected so a
// typo doesn't silently create an unroutable entry.
func LoadOverrides(path string) (map[models.Provider]Specialization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specializations file: %w", err)
	}

	var file overridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse specializations file: %w", err)
	}

	overrides := make(map[models.Provider]Specialization, len(file.Specializations))
	for name, spec := range file.Specializations {
		p := models.Provider(name)
		if !p.Valid() {
			return nil, fmt.Errorf("unknown provider %q in specializations file", name)
		}
		overrides[p] = spec
	}

	return overrides, nil
}

// ApplyOverrides replaces the specializations of the named providers.
// Registration order is unchanged; only tag sets are swapped. This must
// happen before the registry is shared, since lookups are lock-free.
func (r *Registry) ApplyOverrides(overrides map[models.Provider]Specialization) {
	for p, spec := range overrides {
		if _, exists := r.specs[p]; exists {
			r.specs[p] = spec
		}
	}
}
