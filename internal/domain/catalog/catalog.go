package catalog

import (
	"fmt"

	"webquote/internal/domain/entities"
)

// Catalog is the read-only lookup surface over the fixed set of packages and
// options. It is built once and injected wherever catalog data is needed, so
// tests can run against fixture catalogs.
//
// Lookups never fail with an error: a missing id yields the zero value and
// false, matching the "not found -> empty" contract of the callers.
type Catalog struct {
	packages     []entities.Package
	options      []entities.Option
	packageIndex map[string]int
	optionIndex  map[string]int
}

// New validates id uniqueness catalog-wide and returns the lookup surface.
func New(packages []entities.Package, options []entities.Option) (*Catalog, error) {
	c := &Catalog{
		packages:     packages,
		options:      options,
		packageIndex: make(map[string]int, len(packages)),
		optionIndex:  make(map[string]int, len(options)),
	}
	for i, p := range packages {
		if _, dup := c.packageIndex[p.ID]; dup {
			return nil, fmt.Errorf("duplicate package id %q", p.ID)
		}
		c.packageIndex[p.ID] = i
	}
	for i, o := range options {
		if _, dup := c.optionIndex[o.ID]; dup {
			return nil, fmt.Errorf("duplicate option id %q", o.ID)
		}
		c.optionIndex[o.ID] = i
	}
	return c, nil
}

// GetPackage looks a package up by id.
func (c *Catalog) GetPackage(id string) (entities.Package, bool) {
	i, ok := c.packageIndex[id]
	if !ok {
		return entities.Package{}, false
	}
	return c.packages[i], true
}

// GetOption looks an option up by id.
func (c *Catalog) GetOption(id string) (entities.Option, bool) {
	i, ok := c.optionIndex[id]
	if !ok {
		return entities.Option{}, false
	}
	return c.options[i], true
}

// ListPackages returns all packages, or only those in the given category when
// category is non-empty.
func (c *Catalog) ListPackages(category entities.PackageCategory) []entities.Package {
	if category == "" {
		out := make([]entities.Package, len(c.packages))
		copy(out, c.packages)
		return out
	}
	var out []entities.Package
	for _, p := range c.packages {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListOptions returns all options in catalog order.
func (c *Catalog) ListOptions() []entities.Option {
	out := make([]entities.Option, len(c.options))
	copy(out, c.options)
	return out
}

// EligibleOptions returns the options selectable under pkg, in catalog order.
func (c *Catalog) EligibleOptions(pkg *entities.Package) []entities.Option {
	if pkg == nil {
		return nil
	}
	var out []entities.Option
	for _, o := range c.options {
		if o.EligibleFor(pkg) {
			out = append(out, o)
		}
	}
	return out
}

// OptionsByCategory groups the full option list for display purposes.
func (c *Catalog) OptionsByCategory() map[entities.OptionCategory][]entities.Option {
	out := make(map[entities.OptionCategory][]entities.Option)
	for _, o := range c.options {
		out[o.Category] = append(out[o.Category], o)
	}
	return out
}
