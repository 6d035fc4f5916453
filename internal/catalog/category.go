package catalog

import "fmt"

// Category is a closed set of subject groupings for catalog entries.
//
// CategoryAll is a filter-only pseudo value: it is valid as a search filter
// but never appears on a Tool.
type Category string

const (
	CategoryMath     Category = "math"
	CategoryScience  Category = "science"
	CategoryLanguage Category = "language"
	CategoryMemory   Category = "memory"
	CategoryLogic    Category = "logic"
	CategoryAll      Category = "all"
)

// Categories returns the concrete categories in display order,
// excluding the CategoryAll filter value.
func Categories() []Category {
	return []Category{
		CategoryMath,
		CategoryScience,
		CategoryLanguage,
		CategoryMemory,
		CategoryLogic,
	}
}

// ParseCategory converts a string (e.g. a URL query value) into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryMath:
		return CategoryMath, nil
	case CategoryScience:
		return CategoryScience, nil
	case CategoryLanguage:
		return CategoryLanguage, nil
	case CategoryMemory:
		return CategoryMemory, nil
	case CategoryLogic:
		return CategoryLogic, nil
	case CategoryAll, Category(""):
		return CategoryAll, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// DisplayName returns the human-readable section title for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMath:
		return "Math Games"
	case CategoryScience:
		return "Science Games"
	case CategoryLanguage:
		return "Language Games"
	case CategoryMemory:
		return "Memory Games"
	case CategoryLogic:
		return "Logic & Puzzles"
	case CategoryAll:
		return "All Games"
	}
	return string(c)
}

// Concrete reports whether the category is one a Tool may carry.
func (c Category) Concrete() bool {
	switch c {
	case CategoryMath, CategoryScience, CategoryLanguage, CategoryMemory, CategoryLogic:
		return true
	}
	return false
}
