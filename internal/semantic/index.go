package semantic

import (
	"context"
	"fmt"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

const collectionName = "elements"

// Match is one semantic search hit.
type Match struct {
	Element    elements.Element `json:"element"`
	Similarity float32          `json:"similarity"`
}

// Index is an in-memory vector index over the element dataset.
type Index struct {
	catalog    *elements.Catalog
	collection *chromem.Collection
}

// NewIndex creates the index and embeds every element of the catalog.
// Building contacts the embedding provider once per element.
func NewIndex(ctx context.Context, catalog *elements.Catalog, embedder Embedder) (*Index, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	idx := &Index{catalog: catalog, collection: col}
	docs := make([]chromem.Document, 0, catalog.Len())
	for _, el := range catalog.All() {
		docs = append(docs, chromem.Document{
			ID:      strconv.Itoa(el.Number),
			Content: docContent(el),
			Metadata: map[string]string{
				"symbol":   el.Symbol,
				"category": string(el.Category),
			},
		})
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		return nil, fmt.Errorf("indexing elements: %w", err)
	}
	return idx, nil
}

// docContent is the text embedded for one element.
func docContent(el elements.Element) string {
	label := elements.CategoryLabels[el.Category]
	s := fmt.Sprintf("%s (%s) — %s. Famille : %s / %s.", el.NameFr, el.Symbol, el.NameAr, label.Fr, label.Ar)
	if el.Summary != "" {
		s += " " + el.Summary
	}
	return s
}

// Search returns the elements closest in meaning to the query, best first.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 5
	}
	// chromem-go requires nResults <= collection size.
	count := idx.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := idx.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		number, err := strconv.Atoi(r.ID)
		if err != nil {
			continue
		}
		el, ok := idx.catalog.ByNumber(number)
		if !ok {
			continue
		}
		matches = append(matches, Match{Element: el, Similarity: r.Similarity})
	}
	return matches, nil
}
