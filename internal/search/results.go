package search

import "github.com/blevesearch/bleve/v2"

// Result is one ranked hit from the full-text index.
type Result struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Href        string  `json:"href"`
	Score       float64 `json:"score"`
}

// convertBleveResults converts Bleve hits to our Result format.
func convertBleveResults(results *bleve.SearchResult) []Result {
	out := make([]Result, 0, len(results.Hits))
	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		description, _ := hit.Fields["description"].(string)
		category, _ := hit.Fields["category"].(string)
		href, _ := hit.Fields["href"].(string)

		out = append(out, Result{
			ID:          hit.ID,
			Name:        name,
			Description: description,
			Category:    category,
			Href:        href,
			Score:       hit.Score,
		})
	}
	return out
}
