package options

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category names one dropdown list.
type Category string

const (
	CategoryWarehouses Category = "warehouses"
	CategoryCarriers   Category = "carriers"
	CategoryProducts   Category = "products"
	CategoryPersonnel  Category = "personnel"
	CategoryOperators  Category = "operators"
	CategoryFluidTypes Category = "fluid_types"
)

// Categories in display order.
func Categories() []Category {
	return []Category{
		CategoryWarehouses,
		CategoryCarriers,
		CategoryProducts,
		CategoryPersonnel,
		CategoryOperators,
		CategoryFluidTypes,
	}
}

// Store holds the selectable values per category: an immutable master list
// and the active subset the forms actually offer. The dropdown manager is
// the sole writer of the active sets; the forms only read them. Reads and
// the occasional write arrive on different request goroutines, hence the
// lock.
type Store struct {
	mu     sync.RWMutex
	master map[Category][]string
	active map[Category][]string
}

// NewStore starts with every master value active, the same way the app
// opens with all options selected.
func NewStore(master map[Category][]string) *Store {
	s := &Store{
		master: make(map[Category][]string, len(master)),
		active: make(map[Category][]string, len(master)),
	}
	for c, values := range master {
		s.master[c] = append([]string(nil), values...)
		s.active[c] = append([]string(nil), values...)
	}
	return s
}

type masterFile struct {
	Options map[Category][]string `yaml:"options"`
}

// LoadMasterFile reads master option lists from YAML. Categories missing
// from the file keep their defaults.
func LoadMasterFile(path string, defaults map[Category][]string) (map[Category][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	var f masterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse options %s: %w", path, err)
	}
	merged := make(map[Category][]string, len(defaults))
	for c, values := range defaults {
		merged[c] = values
	}
	for c, values := range f.Options {
		if !validCategory(c) {
			return nil, fmt.Errorf("options %s: unknown category %q", path, c)
		}
		merged[c] = values
	}
	return merged, nil
}

func validCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Active returns the currently selectable values for a category.
func (s *Store) Active(c Category) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.active[c]...)
}

// Master returns the full authored list for a category.
func (s *Store) Master(c Category) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.master[c]...)
}

// ActiveAll returns the active set for every category.
func (s *Store) ActiveAll() map[Category][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Category][]string, len(s.active))
	for c, values := range s.active {
		out[c] = append([]string(nil), values...)
	}
	return out
}

// MasterAll returns the master list for every category.
func (s *Store) MasterAll() map[Category][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Category][]string, len(s.master))
	for c, values := range s.master {
		out[c] = append([]string(nil), values...)
	}
	return out
}

// SetActive replaces the active subsets for the given categories. Every
// value must come from the category's master list; nothing is applied when
// any part of the update is bad.
func (s *Store) SetActive(selections map[Category][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c, values := range selections {
		master, ok := s.master[c]
		if !ok {
			return fmt.Errorf("unknown option category %q", c)
		}
		for _, v := range values {
			if !contains(master, v) {
				return fmt.Errorf("category %q: %q is not in the master list", c, v)
			}
		}
	}
	for c, values := range selections {
		s.active[c] = append([]string(nil), values...)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
