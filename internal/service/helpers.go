package service

import (
	"context"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/ebarlowe/gradplan/internal/repository"
)

// evalSnapshot is the consistent read set one evaluation pass works from:
// catalog index, the student's normalized timeline ranks, and the per-course
// state derived from them. Ranks are computed in memory; persisting drifted
// ranks is the semester list operation's job, not evaluation's.
type evalSnapshot struct {
	semesters []*domain.Semester
	ranks     map[string]int
	state     planner.StudentState
	index     *planner.CatalogIndex
}

// endRank is the probe rank one past the student's last semester, used when
// no anchor semester is given.
func (s *evalSnapshot) endRank() int {
	return len(s.semesters)
}

func loadEvalSnapshot(
	ctx context.Context,
	courses repository.CourseRepo,
	semesters repository.SemesterRepo,
	planned repository.PlannedCourseRepo,
	studentID string,
) (*evalSnapshot, error) {
	catalog, err := courses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sems, err := semesters.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	rows, err := planned.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	ranks := planner.RankMap(planner.NormalizeOrder(sems))
	return &evalSnapshot{
		semesters: sems,
		ranks:     ranks,
		state:     planner.BuildStudentState(rows, ranks),
		index:     planner.NewCatalogIndex(catalog),
	}, nil
}

func prereqPointers(rules []domain.PrereqRule) []*domain.PrereqRule {
	out := make([]*domain.PrereqRule, len(rules))
	for i := range rules {
		out[i] = &rules[i]
	}
	return out
}

func offeringPointers(offerings []domain.TypicalOffering) []*domain.TypicalOffering {
	out := make([]*domain.TypicalOffering, len(offerings))
	for i := range offerings {
		out[i] = &offerings[i]
	}
	return out
}
