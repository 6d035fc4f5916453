package search

import (
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/dapsigames/game-hub/internal/catalog"
)

// Indexer manages the Bleve full-text index over the game catalog.
// The index is an accelerator for ranked queries; the Engine remains
// the authoritative pure path with identical category semantics.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer creates an in-memory Bleve index for fast startup.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping for game documents.
func buildIndexMapping() mapping.IndexMapping {
	gameMapping := bleve.NewDocumentMapping()

	nameFieldMapping := bleve.NewTextFieldMapping()
	gameMapping.AddFieldMappingsAt("name", nameFieldMapping)

	descFieldMapping := bleve.NewTextFieldMapping()
	gameMapping.AddFieldMappingsAt("description", descFieldMapping)

	// Category is an exact keyword, not analyzed prose.
	categoryFieldMapping := bleve.NewKeywordFieldMapping()
	gameMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	// Href is stored for retrieval only.
	hrefFieldMapping := bleve.NewTextFieldMapping()
	hrefFieldMapping.Index = false
	hrefFieldMapping.IncludeInAll = false
	gameMapping.AddFieldMappingsAt("href", hrefFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", gameMapping)
	return indexMapping
}

// IndexCatalog indexes every tool in the catalog. Safe to call again
// after a catalog reload; existing documents are overwritten by ID.
func (i *Indexer) IndexCatalog(c *catalog.Catalog) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for _, t := range c.Tools() {
		doc := map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
			"category":    string(t.Category),
			"href":        t.Href,
		}
		if err := batch.Index(t.ID, doc); err != nil {
			return fmt.Errorf("failed to index tool %s: %w", t.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index catalog: %w", err)
	}
	return nil
}

// Search performs ranked full-text search, optionally restricted to one
// category. CategoryAll searches the whole index.
func (i *Indexer) Search(query string, cat catalog.Category, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)

	var searchRequest *bleve.SearchRequest
	if cat == catalog.CategoryAll {
		searchRequest = bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)
	} else {
		categoryQuery := bleve.NewTermQuery(string(cat))
		categoryQuery.SetField("category")
		conjunction := bleve.NewConjunctionQuery(matchQuery, categoryQuery)
		searchRequest = bleve.NewSearchRequestOptions(conjunction, limit, 0, false)
	}
	searchRequest.Fields = []string{"name", "description", "category", "href"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}
	return convertBleveResults(results), nil
}

// Count returns the number of indexed documents.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return count, nil
}

// Close releases index resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}
	return nil
}
