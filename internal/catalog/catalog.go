/*
Package catalog holds the static registry of educational games.

The catalog is immutable: it is built once at process start (from the
built-in data set or a YAML file) and only read afterwards. Lookups
preserve catalog order, which downstream consumers rely on.
*/
package catalog

import "fmt"

// Tool is a single catalog entry for one educational game page.
type Tool struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Icon        string   `json:"icon" yaml:"icon"`
	IsPopular   bool     `json:"isPopular,omitempty" yaml:"isPopular,omitempty"`
	Href        string   `json:"href" yaml:"href"`
}

// Catalog is an immutable, ordered collection of tools with ID lookup.
type Catalog struct {
	tools []Tool
	byID  map[string]int
}

// New builds a catalog from a tool list, validating IDs and categories.
func New(tools []Tool) (*Catalog, error) {
	byID := make(map[string]int, len(tools))
	for i, t := range tools {
		if t.ID == "" {
			return nil, fmt.Errorf("tool at index %d has empty id", i)
		}
		if !t.Category.Concrete() {
			return nil, fmt.Errorf("tool %q has invalid category %q", t.ID, t.Category)
		}
		if prev, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q (indexes %d and %d)", t.ID, prev, i)
		}
		byID[t.ID] = i
	}

	owned := make([]Tool, len(tools))
	copy(owned, tools)

	return &Catalog{tools: owned, byID: byID}, nil
}

// Default returns the built-in game catalog.
func Default() *Catalog {
	c, err := New(builtinTools)
	if err != nil {
		// The built-in data set is validated by tests; a failure here is a bug.
		panic(fmt.Sprintf("builtin catalog invalid: %v", err))
	}
	return c
}

// Len returns the number of tools in the catalog.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Tools returns all tools in catalog order. The returned slice is a copy.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// ByID looks up a tool by its identifier.
func (c *Catalog) ByID(id string) (Tool, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// ByCategory returns tools in the given category, preserving catalog order.
// CategoryAll returns the full catalog.
func (c *Catalog) ByCategory(cat Category) []Tool {
	if cat == CategoryAll {
		return c.Tools()
	}
	var out []Tool
	for _, t := range c.tools {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Popular returns the tools flagged as popular, in catalog order.
func (c *Catalog) Popular() []Tool {
	var out []Tool
	for _, t := range c.tools {
		if t.IsPopular {
			out = append(out, t)
		}
	}
	return out
}
