// Package planner implements the requirement and prerequisite evaluation
// engine: catalog indexing, temporal ordering of planning semesters,
// OR-of-AND prerequisite satisfaction, requirement group evaluation and the
// availability listing composed from them. Everything here is a pure
// computation over a snapshot of student state; persistence stays in the
// service layer.
package planner

import (
	"sort"

	"github.com/ebarlowe/gradplan/internal/domain"
)

// CatalogIndex provides in-memory course lookups for one evaluation pass.
type CatalogIndex struct {
	byID   map[string]*domain.Course
	byCode map[string]*domain.Course
}

// NewCatalogIndex builds an index over the given catalog snapshot.
func NewCatalogIndex(courses []*domain.Course) *CatalogIndex {
	idx := &CatalogIndex{
		byID:   make(map[string]*domain.Course, len(courses)),
		byCode: make(map[string]*domain.Course, len(courses)),
	}
	for _, c := range courses {
		idx.byID[c.ID] = c
		idx.byCode[c.Code] = c
	}
	return idx
}

// Course returns the course for id, or nil when unknown.
func (idx *CatalogIndex) Course(id string) *domain.Course {
	return idx.byID[id]
}

// ByCode returns the course for code, or nil when unknown.
func (idx *CatalogIndex) ByCode(code string) *domain.Course {
	return idx.byCode[code]
}

// Code returns the course code for id, or a placeholder when unknown so
// listings never render an empty cell for corrupted references.
func (idx *CatalogIndex) Code(id string) string {
	if c, ok := idx.byID[id]; ok {
		return c.Code
	}
	return "ID " + id
}

// Credits returns the catalog credit value for id, 0 when unknown.
func (idx *CatalogIndex) Credits(id string) float64 {
	if c, ok := idx.byID[id]; ok {
		return c.Credits
	}
	return 0
}

// Len returns the number of indexed courses.
func (idx *CatalogIndex) Len() int {
	return len(idx.byID)
}

// IDsByCode returns all indexed course ids in ascending code order. This is
// the deterministic scan order for FILTER group evaluation.
func (idx *CatalogIndex) IDsByCode() []string {
	codes := make([]string, 0, len(idx.byCode))
	for code := range idx.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	ids := make([]string, 0, len(codes))
	for _, code := range codes {
		ids = append(ids, idx.byCode[code].ID)
	}
	return ids
}
