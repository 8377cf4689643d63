package model

import (
	"fmt"
	"sort"
)

// Uncategorized is the sentinel category that absorbs markets whose
// category has been deleted.
const Uncategorized = "Uncategorized"

// CategoryConfig represents one entry of a sport's taxonomy: a named
// category, its ordered subcategories, and an optional explicit sort key.
// A nil Order means the position has not been fixed yet; unordered entries
// sort after every ordered one, alphabetically among themselves.
type CategoryConfig struct {
	Order         *int     `json:"order,omitempty"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// HasSubcategory reports whether sub is a member of the category's
// subcategory list. The empty string is always considered present.
func (c *CategoryConfig) HasSubcategory(sub string) bool {
	if sub == "" {
		return true
	}
	for _, s := range c.Subcategories {
		if s == sub {
			return true
		}
	}
	return false
}

// Validate ensures the CategoryConfig has valid data.
func (c *CategoryConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	seen := make(map[string]struct{}, len(c.Subcategories))
	for _, s := range c.Subcategories {
		if s == "" {
			return fmt.Errorf("category %q has an empty subcategory", c.Name)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("category %q has duplicate subcategory %q", c.Name, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

func (c *CategoryConfig) clone() CategoryConfig {
	out := *c
	if c.Order != nil {
		o := *c.Order
		out.Order = &o
	}
	out.Subcategories = append([]string(nil), c.Subcategories...)
	return out
}

// CategoryConfigs is a slice of CategoryConfig that supports sorting and
// order-key maintenance.
type CategoryConfigs []CategoryConfig

// Clone returns a deep copy of the list.
func (cc CategoryConfigs) Clone() CategoryConfigs {
	if cc == nil {
		return nil
	}
	out := make(CategoryConfigs, len(cc))
	for i := range cc {
		out[i] = cc[i].clone()
	}
	return out
}

// Len implements sort.Interface.
func (cc CategoryConfigs) Len() int {
	return len(cc)
}

// Less implements sort.Interface: explicit order keys ascending, entries
// without a key after all keyed entries, names as the tie-break.
func (cc CategoryConfigs) Less(i, j int) bool {
	oi, oj := cc[i].Order, cc[j].Order
	switch {
	case oi != nil && oj != nil:
		if *oi != *oj {
			return *oi < *oj
		}
		return cc[i].Name < cc[j].Name
	case oi != nil:
		return true
	case oj != nil:
		return false
	default:
		return cc[i].Name < cc[j].Name
	}
}

// Swap implements sort.Interface.
func (cc CategoryConfigs) Swap(i, j int) {
	cc[i], cc[j] = cc[j], cc[i]
}

// Find returns a pointer to the entry with the given name, or nil.
func (cc CategoryConfigs) Find(name string) *CategoryConfig {
	for i := range cc {
		if cc[i].Name == name {
			return &cc[i]
		}
	}
	return nil
}

// Materialize assigns each entry without an explicit order key its current
// positional index, preserving the visual order in place at the time.
func (cc CategoryConfigs) Materialize() {
	for i := range cc {
		if cc[i].Order == nil {
			o := i
			cc[i].Order = &o
		}
	}
}

// Normalize sorts the list by its order keys and renumbers them to 0..n-1.
// Renumbering keeps repeated moves from accumulating sparse-key drift, and
// applying Normalize twice yields the same result as applying it once.
func (cc CategoryConfigs) Normalize() {
	cc.Materialize()
	sort.Stable(cc)
	for i := range cc {
		o := i
		cc[i].Order = &o
	}
}
