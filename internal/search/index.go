// Package search maintains a full-text index over resume documents so users
// can find resumes by content, not just title.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Index wraps a Bleve index over resume text.
type Index struct {
	index bleve.Index
}

// IndexedResume is the flattened searchable view of a resume. Body carries
// every free-text section joined together.
type IndexedResume struct {
	ID     string
	UserID string
	Title  string
	Body   string
}

// Result is one search hit.
type Result struct {
	ID    string
	Title string
	Score float64
}

// Open opens or creates an index at path. An empty path yields an in-memory
// index, which is the default for tests and single-node deployments.
func Open(path string) (*Index, error) {
	m := buildIndexMapping()

	if path == "" {
		idx, err := bleve.NewMemOnly(m)
		if err != nil {
			return nil, fmt.Errorf("create memory index: %w", err)
		}
		return &Index{index: idx}, nil
	}

	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, m)
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	// UserID must match as a single exact term so one user's query can never
	// surface another user's resumes.
	ownerFieldMapping := bleve.NewTextFieldMapping()
	ownerFieldMapping.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("UserID", ownerFieldMapping)
	docMapping.AddFieldMappingsAt("Title", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Body", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Close closes the underlying index.
func (i *Index) Close() error {
	return i.index.Close()
}

// Index adds or replaces one resume in the index.
func (i *Index) Index(doc IndexedResume) error {
	return i.index.Index(doc.ID, doc)
}

// Delete removes a resume from the index. Deleting an unknown id is a no-op.
func (i *Index) Delete(id string) error {
	return i.index.Delete(id)
}

// Search runs a query-string search scoped to one user and returns matching
// resume ids ordered by score.
func (i *Index) Search(userID, queryStr string, limit int) ([]Result, error) {
	if strings.TrimSpace(queryStr) == "" {
		return []Result{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	owner := bleve.NewTermQuery(userID)
	owner.SetField("UserID")
	text := bleve.NewQueryStringQuery(queryStr)
	query := bleve.NewConjunctionQuery(owner, text)

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Fields = []string{"Title"}

	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	out := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		r := Result{ID: hit.ID, Score: hit.Score}
		if title, ok := hit.Fields["Title"].(string); ok {
			r.Title = title
		}
		out = append(out, r)
	}
	return out, nil
}

// Count returns the number of indexed resumes.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}
