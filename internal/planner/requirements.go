package planner

import (
	"github.com/ebarlowe/gradplan/internal/domain"
)

// GroupReport is the evaluation outcome of one requirement group.
type GroupReport struct {
	GroupID          string
	Title            string
	Kind             domain.GroupKind
	Satisfied        bool
	RequiredCount    int
	AppliedCourseIDs []string
	MissingCourseIDs []string
	CreditsApplied   float64
}

// ProgramReport aggregates the per-group reports for one degree program.
type ProgramReport struct {
	ProgramCode    string
	ProgramName    string
	TotalCredits   int
	Groups         []*GroupReport
	Satisfied      bool
	CreditsApplied float64
	CoursesApplied int
}

// AuditOptions tunes requirement evaluation. With IncludePlanned false only
// COMPLETED courses meeting their grade floor count; with it true, PLANNED
// and IN_PROGRESS courses also count, without a grade check since no grade
// exists yet. Completed courses face the floor in ALL and ANY_COUNT groups;
// FILTER groups take any structural match regardless of grade.
type AuditOptions struct {
	IncludePlanned bool
}

// EvaluateProgram runs every requirement group of the program against the
// student's state, in declared sort order. Group order is semantically
// significant: a course applied by an earlier group is consumed, and a later
// group may only reuse it when that later group allows double-counting.
func EvaluateProgram(program *domain.DegreeProgram, state StudentState, index *CatalogIndex, opts AuditOptions) *ProgramReport {
	report := &ProgramReport{
		ProgramCode:  program.Code,
		ProgramName:  program.Name,
		TotalCredits: program.TotalCredits,
		Satisfied:    true,
	}

	used := make(map[string]struct{})
	for _, group := range program.Groups {
		gr := evaluateGroup(group, state, index, opts, used)
		for _, id := range gr.AppliedCourseIDs {
			used[id] = struct{}{}
		}
		report.Groups = append(report.Groups, gr)
		report.CreditsApplied += gr.CreditsApplied
		report.CoursesApplied += len(gr.AppliedCourseIDs)
		if !gr.Satisfied {
			report.Satisfied = false
		}
	}
	return report
}

func evaluateGroup(g *domain.ReqGroup, state StudentState, index *CatalogIndex, opts AuditOptions, used map[string]struct{}) *GroupReport {
	gr := &GroupReport{
		GroupID: g.ID,
		Title:   g.Title,
		Kind:    g.Kind,
	}

	switch g.Kind {
	case domain.GroupAll:
		gr.RequiredCount = len(g.Courses)
		// Per-member grade overrides apply to ANY_COUNT selection only; ALL
		// members face the default floor.
		for _, member := range g.Courses {
			if eligible(member.CourseID, "", state, opts) && reusable(member.CourseID, g, used) {
				gr.AppliedCourseIDs = append(gr.AppliedCourseIDs, member.CourseID)
			} else {
				gr.MissingCourseIDs = append(gr.MissingCourseIDs, member.CourseID)
			}
		}
		gr.Satisfied = len(gr.MissingCourseIDs) == 0

	case domain.GroupAnyCount:
		gr.RequiredCount = g.MinCount
		for _, member := range g.Courses {
			if len(gr.AppliedCourseIDs) >= g.MinCount {
				break
			}
			if eligible(member.CourseID, member.MinGrade, state, opts) && reusable(member.CourseID, g, used) {
				gr.AppliedCourseIDs = append(gr.AppliedCourseIDs, member.CourseID)
			}
		}
		gr.Satisfied = len(gr.AppliedCourseIDs) >= g.MinCount
		if !gr.Satisfied {
			for _, member := range g.Courses {
				if !contains(gr.AppliedCourseIDs, member.CourseID) {
					gr.MissingCourseIDs = append(gr.MissingCourseIDs, member.CourseID)
				}
			}
		}

	case domain.GroupFilter:
		gr.RequiredCount = g.MinCount
		for _, id := range index.IDsByCode() {
			if len(gr.AppliedCourseIDs) >= g.MinCount {
				break
			}
			if !matchesFilter(g, index.Course(id)) {
				continue
			}
			if recorded(id, state, opts) && reusable(id, g, used) {
				gr.AppliedCourseIDs = append(gr.AppliedCourseIDs, id)
			}
		}
		gr.Satisfied = len(gr.AppliedCourseIDs) >= g.MinCount
	}

	for _, id := range gr.AppliedCourseIDs {
		gr.CreditsApplied += index.Credits(id)
	}
	return gr
}

// eligible reports whether the student's record of courseID counts toward a
// group under the audit options. minGrade "" falls back to the default floor.
func eligible(courseID, minGrade string, state StudentState, opts AuditOptions) bool {
	cs, ok := state[courseID]
	if !ok {
		return false
	}
	if cs.Status != domain.StatusCompleted {
		return opts.IncludePlanned
	}
	floor := minGrade
	if floor == "" {
		floor = domain.DefaultGradeFloor
	}
	return domain.GradeMeetsFloor(cs.Grade, floor)
}

// recorded reports whether courseID is on the student's record under the
// audit options. FILTER intake is purely structural, so no grade floor.
func recorded(courseID string, state StudentState, opts AuditOptions) bool {
	cs, ok := state[courseID]
	if !ok {
		return false
	}
	return cs.Status == domain.StatusCompleted || opts.IncludePlanned
}

func reusable(courseID string, g *domain.ReqGroup, used map[string]struct{}) bool {
	if _, taken := used[courseID]; !taken {
		return true
	}
	return g.AllowDoubleCount
}

func matchesFilter(g *domain.ReqGroup, course *domain.Course) bool {
	if course == nil {
		return false
	}
	dept, number, ok := domain.SplitCode(course.Code)
	if !ok {
		return false
	}
	if g.DeptPrefix != "" && dept != g.DeptPrefix {
		return false
	}
	if g.MinNumber != nil && number < *g.MinNumber {
		return false
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
