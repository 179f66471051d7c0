package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Packages []packageSchema `toml:"packages"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported packages schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type packageSchema struct {
	ID        string    `toml:"id"`
	Code      string    `toml:"code"`
	Values    []float64 `toml:"values"`
	CreatedAt string    `toml:"created_at,omitempty"`
}
