package planner

import (
	"sort"

	"github.com/ebarlowe/gradplan/internal/domain"
)

// OrderAssignment is one semester's canonical dense rank.
type OrderAssignment struct {
	SemesterID string
	Order      int
	Changed    bool // differs from the stored value
}

// orderKey is the tagged sort key for a semester: explicitly ordered
// semesters form the first bucket (by stored rank); the rest sort
// chronologically by (year, term weight, id). Comparing the tag first avoids
// sentinel arithmetic against unset ranks.
type orderKey struct {
	explicit   bool
	rank       int
	year       int
	termWeight int
	id         string
}

func keyFor(s *domain.Semester) orderKey {
	k := orderKey{
		year:       s.Year,
		termWeight: s.Term.Weight(),
		id:         s.ID,
	}
	if s.HasExplicitOrder() {
		k.explicit = true
		k.rank = *s.Order
	}
	return k
}

func (a orderKey) less(b orderKey) bool {
	if a.explicit != b.explicit {
		return a.explicit
	}
	if a.explicit {
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.id < b.id
	}
	if a.year != b.year {
		return a.year < b.year
	}
	if a.termWeight != b.termWeight {
		return a.termWeight < b.termWeight
	}
	return a.id < b.id
}

// NormalizeOrder computes the dense, gap-free rank assignment 0..N-1 for a
// student's semesters. The result is a strict total order: explicitly
// ordered semesters keep their relative order ahead of unordered ones, which
// fall back to chronological placement. Calling it on already-dense input
// reproduces the same ranks with no assignment marked Changed, so the
// persisting caller can skip the write entirely.
func NormalizeOrder(semesters []*domain.Semester) []OrderAssignment {
	sorted := make([]*domain.Semester, len(semesters))
	copy(sorted, semesters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keyFor(sorted[i]).less(keyFor(sorted[j]))
	})

	assignments := make([]OrderAssignment, 0, len(sorted))
	for idx, s := range sorted {
		assignments = append(assignments, OrderAssignment{
			SemesterID: s.ID,
			Order:      idx,
			Changed:    !s.HasExplicitOrder() || *s.Order != idx,
		})
	}
	return assignments
}

// AnyChanged reports whether the assignment set contains at least one rank
// that differs from storage.
func AnyChanged(assignments []OrderAssignment) bool {
	for _, a := range assignments {
		if a.Changed {
			return true
		}
	}
	return false
}

// RankMap returns semester id → dense rank for the assignment set.
func RankMap(assignments []OrderAssignment) map[string]int {
	m := make(map[string]int, len(assignments))
	for _, a := range assignments {
		m[a.SemesterID] = a.Order
	}
	return m
}
