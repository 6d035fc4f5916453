/*
Package search provides the query layer over the game catalog: a pure
substring engine safe to run on every keystroke, a fuzzy ranked matcher
for suggestion lists, and a Bleve-backed full-text index for the API's
ranked search endpoint.
*/
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/dapsigames/game-hub/internal/catalog"
)

// Engine answers catalog queries as pure functions over the static
// catalog. No side effects, no allocation beyond the result slice.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Search returns the tools whose name, description, or category contain
// the query, case-insensitively. An empty or whitespace query returns
// the full catalog in order.
func (e *Engine) Search(query string) []catalog.Tool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return e.catalog.Tools()
	}

	var out []catalog.Tool
	for _, t := range e.catalog.Tools() {
		if matches(t, query) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t catalog.Tool, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(t.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(t.Description), loweredQuery) ||
		strings.Contains(string(t.Category), loweredQuery)
}

// FilterByCategory restricts a tool list to one category, preserving
// order. CategoryAll is the identity filter.
func FilterByCategory(tools []catalog.Tool, cat catalog.Category) []catalog.Tool {
	if cat == catalog.CategoryAll {
		return tools
	}
	var out []catalog.Tool
	for _, t := range tools {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// SearchAndFilter composes Search and FilterByCategory. The result is
// the intersection, so the order of application is not observable.
func (e *Engine) SearchAndFilter(query string, cat catalog.Category) []catalog.Tool {
	return FilterByCategory(e.Search(query), cat)
}

// SearchRanked performs fuzzy ranked matching over tool names and
// descriptions, best match first. Used for typo-tolerant suggestions.
func (e *Engine) SearchRanked(query string, limit int) []catalog.Tool {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = 10
	}

	tools := e.catalog.Tools()
	matches := fuzzy.FindFrom(query, toolSource(tools))

	out := make([]catalog.Tool, 0, limit)
	for _, m := range matches {
		out = append(out, tools[m.Index])
		if len(out) == limit {
			break
		}
	}
	return out
}

// toolSource adapts a tool slice to the fuzzy matcher's source interface.
type toolSource []catalog.Tool

func (s toolSource) Len() int { return len(s) }

func (s toolSource) String(i int) string {
	return s[i].Name + " " + s[i].Description
}

// SortBy identifies a sort criterion for catalog views.
type SortBy string

const (
	SortByName     SortBy = "name"
	SortByCategory SortBy = "category"
	SortByPopular  SortBy = "popular"
)

// Sort returns a sorted copy of tools. Unknown criteria return the
// input order unchanged. All sorts are stable.
func Sort(tools []catalog.Tool, by SortBy) []catalog.Tool {
	out := make([]catalog.Tool, len(tools))
	copy(out, tools)

	switch by {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	case SortByCategory:
		order := make(map[catalog.Category]int, 5)
		for i, c := range catalog.Categories() {
			order[c] = i
		}
		sort.SliceStable(out, func(i, j int) bool {
			return order[out[i].Category] < order[out[j].Category]
		})
	case SortByPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsPopular && !out[j].IsPopular
		})
	}
	return out
}
