package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry: one product in the reference catalog.
// Key is an explicit authored identifier, never derived from the display
// name, so two products with similar names can never collide.
type Entry struct {
	Key         string  `yaml:"key" json:"key"`
	ProductID   string  `yaml:"product_id" json:"product_id"`
	DisplayName string  `yaml:"display_name" json:"display_name"`
	Unit        string  `yaml:"unit" json:"unit"`
	UnitWeight  float64 `yaml:"unit_weight" json:"unit_weight"`
}

// Catalog is read-only after construction.
type Catalog struct {
	byKey map[string]Entry
	order []string
}

func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{byKey: make(map[string]Entry, len(entries))}
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("catalog entry %d (%q) has no key", i, e.DisplayName)
		}
		if _, dup := c.byKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate catalog key %q", e.Key)
		}
		if e.UnitWeight < 0 {
			return nil, fmt.Errorf("catalog entry %q has negative unit weight", e.Key)
		}
		c.byKey[e.Key] = e
		c.order = append(c.order, e.Key)
	}
	return c, nil
}

type catalogFile struct {
	Products []Entry `yaml:"products"`
}

// LoadFile reads a product catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	c, err := New(f.Products)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in product catalog, used when no catalog
// file is configured.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		// defaultEntries is compiled in; a failure here is a programming error.
		panic(err)
	}
	return c
}

// Lookup is exact-match on key. A miss leaves the caller's fields untouched.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	e, ok := c.byKey[key]
	return e, ok
}

// Entries returns all products in authoring order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k])
	}
	return out
}

// DisplayNames returns the product display names in authoring order,
// used to seed the products dropdown.
func (c *Catalog) DisplayNames() []string {
	out := make([]string, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k].DisplayName)
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}
