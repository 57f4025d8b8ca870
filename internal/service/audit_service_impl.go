package service

import (
	"context"

	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/ebarlowe/gradplan/internal/repository"
)

type auditService struct {
	courses   repository.CourseRepo
	semesters repository.SemesterRepo
	planned   repository.PlannedCourseRepo
	programs  repository.ProgramRepo
	observer  UseCaseObserver
}

func NewAuditService(
	courses repository.CourseRepo,
	semesters repository.SemesterRepo,
	planned repository.PlannedCourseRepo,
	programs repository.ProgramRepo,
	observers ...UseCaseObserver,
) AuditService {
	return &auditService{
		courses:   courses,
		semesters: semesters,
		planned:   planned,
		programs:  programs,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// AuditProgram evaluates every requirement group of the program against the
// student's history. With includePlanned false only completed courses meeting
// their grade floor count toward groups.
func (s *auditService) AuditProgram(ctx context.Context, studentID, programCode string, includePlanned bool) (report *planner.ProgramReport, err error) {
	defer observe(ctx, s.observer, "audit-program", map[string]any{"program": programCode, "include_planned": includePlanned}, &err)()

	program, err := s.programs.GetByCode(ctx, programCode)
	if err != nil {
		return nil, err
	}
	snap, err := loadEvalSnapshot(ctx, s.courses, s.semesters, s.planned, studentID)
	if err != nil {
		return nil, err
	}
	return planner.EvaluateProgram(program, snap.state, snap.index, planner.AuditOptions{IncludePlanned: includePlanned}), nil
}

// ProgressSummary is the lightweight per-group counts view: how many courses
// each group requires and how many completed courses it has applied.
func (s *auditService) ProgressSummary(ctx context.Context, studentID, programCode string) (progress []GroupProgress, err error) {
	defer observe(ctx, s.observer, "progress-summary", map[string]any{"program": programCode}, &err)()

	report, err := s.AuditProgram(ctx, studentID, programCode, false)
	if err != nil {
		return nil, err
	}
	progress = make([]GroupProgress, 0, len(report.Groups))
	for _, g := range report.Groups {
		progress = append(progress, GroupProgress{
			Title:     g.Title,
			Kind:      g.Kind,
			Required:  g.RequiredCount,
			Completed: len(g.AppliedCourseIDs),
		})
	}
	return progress, nil
}
