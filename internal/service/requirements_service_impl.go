package service

import (
	"context"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/ebarlowe/gradplan/internal/repository"
)

type requirementsService struct {
	courses   repository.CourseRepo
	semesters repository.SemesterRepo
	planned   repository.PlannedCourseRepo
	programs  repository.ProgramRepo
	prereqs   repository.PrereqRepo
	offerings repository.OfferingRepo
	observer  UseCaseObserver
}

func NewRequirementsService(
	courses repository.CourseRepo,
	semesters repository.SemesterRepo,
	planned repository.PlannedCourseRepo,
	programs repository.ProgramRepo,
	prereqs repository.PrereqRepo,
	offerings repository.OfferingRepo,
	observers ...UseCaseObserver,
) RequirementsService {
	return &requirementsService{
		courses:   courses,
		semesters: semesters,
		planned:   planned,
		programs:  programs,
		prereqs:   prereqs,
		offerings: offerings,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Evaluate composes the requirements browser report: per-group course
// listings with offering data and both prerequisite verdicts, anchored at the
// given semester's rank and term. An empty anchor probes one rank past the
// end of the timeline, the position a newly appended semester would take.
func (s *requirementsService) Evaluate(ctx context.Context, studentID, programCode, query, anchorSemesterID string) (report *planner.AvailabilityReport, err error) {
	defer observe(ctx, s.observer, "evaluate-requirements", map[string]any{"program": programCode}, &err)()

	program, err := s.programs.GetByCode(ctx, programCode)
	if err != nil {
		return nil, err
	}
	snap, err := loadEvalSnapshot(ctx, s.courses, s.semesters, s.planned, studentID)
	if err != nil {
		return nil, err
	}
	rules, err := s.prereqs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	offerings, err := s.offerings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	anchorRank := snap.endRank()
	var anchorTerm domain.Term
	if anchorSemesterID != "" {
		rank, ok := snap.ranks[anchorSemesterID]
		if !ok {
			return nil, fmt.Errorf("semester %s: %w", anchorSemesterID, repository.ErrNotFound)
		}
		anchorRank = rank
		for _, sem := range snap.semesters {
			if sem.ID == anchorSemesterID {
				anchorTerm = sem.Term
				break
			}
		}
	}

	return planner.BuildAvailability(planner.AvailabilityInput{
		Program:    program,
		State:      snap.state,
		Index:      snap.index,
		Rules:      prereqPointers(rules),
		Offerings:  offeringPointers(offerings),
		Query:      query,
		AnchorTerm: anchorTerm,
		AnchorRank: anchorRank,
	}), nil
}

func (s *requirementsService) ListPrograms(ctx context.Context) ([]*domain.DegreeProgram, error) {
	return s.programs.ListPrograms(ctx)
}
