package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/energywise/energywise/pkg/types"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a catalog.
type File struct {
	Plans      []types.ElectricityPlan  `yaml:"plans"`
	Appliances []types.ApplianceProfile `yaml:"appliances"`
}

// Load reads and validates a YAML catalog file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML catalog from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog file is empty: %w", types.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(file.Plans, file.Appliances)
}

// Encode writes c to w in the format Decode reads.
func Encode(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Plans: c.plans, Appliances: c.appliances}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}
