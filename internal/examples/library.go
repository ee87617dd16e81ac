// Package examples serves the read-only library of example bills.
package examples

import (
	_ "embed"
	"fmt"

	"github.com/jonathan/billbuddy/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var libraryYAML []byte

var library = mustParse(libraryYAML)

// Parse decodes an example library document.
func Parse(data []byte) ([]types.ExampleCategory, error) {
	var categories []types.ExampleCategory
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse example library: %w", err)
	}
	for _, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("example library category without a name")
		}
	}
	return categories, nil
}

func mustParse(data []byte) []types.ExampleCategory {
	categories, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return categories
}

// Categories returns a deep copy of the example library.
func Categories() []types.ExampleCategory {
	out := make([]types.ExampleCategory, len(library))
	for i, c := range library {
		out[i] = types.ExampleCategory{
			Name:        c.Name,
			Description: c.Description,
			Examples:    make([]types.ExampleBill, len(c.Examples)),
		}
		for j, e := range c.Examples {
			out[i].Examples[j] = types.ExampleBill{
				Title:      e.Title,
				Highlights: append([]string(nil), e.Highlights...),
			}
		}
	}
	return out
}
