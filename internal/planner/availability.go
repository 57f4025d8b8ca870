package planner

import (
	"sort"
	"strings"

	"github.com/ebarlowe/gradplan/internal/domain"
)

// CourseAvailability is one course row of the requirements browser: catalog
// display fields, the student's standing, offering data, and both
// prerequisite verdicts rendered as course-code lists.
type CourseAvailability struct {
	CourseID string
	Code     string
	Title    string
	Credits  float64

	Taken    bool // completed
	Assigned bool // planned or in progress

	OfferedTerms    []domain.Term
	OfferedThisTerm bool

	// Transcript verdict: completed courses with passing grades only.
	CompletedPrereqOK     bool
	CompletedMissingCodes []string

	// Planning verdict: anything scheduled early enough counts.
	PlannedPrereqOK     bool
	PlannedMissingCodes []string

	PrereqGroupCount int
	Disabled         bool
}

// GroupAvailability is one requirement group's course listing plus its
// completed progress under the transcript evaluation.
type GroupAvailability struct {
	GroupID        string
	Title          string
	Kind           domain.GroupKind
	RequiredCount  int
	CompletedCount int
	Courses        []*CourseAvailability
}

// AvailabilityReport is the full requirements-browser payload for a program.
type AvailabilityReport struct {
	ProgramCode string
	ProgramName string
	Groups      []*GroupAvailability
}

// AvailabilityInput bundles the snapshot an availability pass reads.
type AvailabilityInput struct {
	Program   *domain.DegreeProgram
	State     StudentState
	Index     *CatalogIndex
	Rules     []*domain.PrereqRule
	Offerings []*domain.TypicalOffering

	Query      string      // optional free-text filter over code and title
	AnchorTerm domain.Term // optional, drives OfferedThisTerm
	AnchorRank int         // rank the candidate course would be taken at
}

// BuildAvailability composes the prerequisite and requirement evaluators into
// the browser listing. Candidate courses are the group's members, or every
// predicate match for FILTER groups. Within a group, courses with unmet
// planning prerequisites sort after addable ones; ties break by prerequisite
// group count ascending, then code, so the simplest addable courses surface
// first.
func BuildAvailability(in AvailabilityInput) *AvailabilityReport {
	planning := NewPrereqEvaluator(in.Rules, PlanningPolicy)
	transcript := NewPrereqEvaluator(in.Rules, TranscriptPolicy)
	completed := EvaluateProgram(in.Program, in.State, in.Index, AuditOptions{})

	offeredBy := make(map[string][]domain.Term)
	for _, off := range in.Offerings {
		offeredBy[off.CourseID] = append(offeredBy[off.CourseID], off.Term)
	}

	report := &AvailabilityReport{
		ProgramCode: in.Program.Code,
		ProgramName: in.Program.Name,
	}
	for i, group := range in.Program.Groups {
		ga := &GroupAvailability{
			GroupID:        group.ID,
			Title:          group.Title,
			Kind:           group.Kind,
			RequiredCount:  completed.Groups[i].RequiredCount,
			CompletedCount: len(completed.Groups[i].AppliedCourseIDs),
		}
		for _, id := range candidateIDs(group, in.Index) {
			course := in.Index.Course(id)
			if course == nil || !matchesQuery(course, in.Query) {
				continue
			}
			ga.Courses = append(ga.Courses, buildRow(course, in, planning, transcript, offeredBy))
		}
		sort.SliceStable(ga.Courses, func(a, b int) bool {
			ca, cb := ga.Courses[a], ga.Courses[b]
			if ca.PlannedPrereqOK != cb.PlannedPrereqOK {
				return ca.PlannedPrereqOK
			}
			if ca.PrereqGroupCount != cb.PrereqGroupCount {
				return ca.PrereqGroupCount < cb.PrereqGroupCount
			}
			return ca.Code < cb.Code
		})
		report.Groups = append(report.Groups, ga)
	}
	return report
}

func candidateIDs(group *domain.ReqGroup, index *CatalogIndex) []string {
	if group.Kind != domain.GroupFilter {
		return group.MemberCourseIDs()
	}
	var ids []string
	for _, id := range index.IDsByCode() {
		if matchesFilter(group, index.Course(id)) {
			ids = append(ids, id)
		}
	}
	return ids
}

func buildRow(course *domain.Course, in AvailabilityInput, planning, transcript *PrereqEvaluator, offeredBy map[string][]domain.Term) *CourseAvailability {
	row := &CourseAvailability{
		CourseID:         course.ID,
		Code:             course.Code,
		Title:            course.Title,
		Credits:          course.Credits,
		OfferedTerms:     offeredBy[course.ID],
		PrereqGroupCount: planning.GroupCount(course.ID),
	}

	if cs, ok := in.State[course.ID]; ok {
		if cs.Status == domain.StatusCompleted {
			row.Taken = true
		} else {
			row.Assigned = true
		}
	}

	if in.AnchorTerm != "" {
		for _, term := range row.OfferedTerms {
			if term == in.AnchorTerm {
				row.OfferedThisTerm = true
				break
			}
		}
	}

	planned := planning.Evaluate(course.ID, in.State, in.AnchorRank)
	row.PlannedPrereqOK = planned.Satisfied
	row.PlannedMissingCodes = codesFor(planned.MissingCourseIDs, in.Index)

	done := transcript.Evaluate(course.ID, in.State, in.AnchorRank)
	row.CompletedPrereqOK = done.Satisfied
	row.CompletedMissingCodes = codesFor(done.MissingCourseIDs, in.Index)

	row.Disabled = row.Taken || row.Assigned || !row.PlannedPrereqOK
	return row
}

func codesFor(ids []string, index *CatalogIndex) []string {
	codes := make([]string, 0, len(ids))
	for _, id := range ids {
		codes = append(codes, index.Code(id))
	}
	return codes
}

func matchesQuery(course *domain.Course, query string) bool {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(course.Code), q) ||
		strings.Contains(strings.ToLower(course.Title), q)
}
