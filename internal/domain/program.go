package domain

import "fmt"

// DegreeProgram owns an ordered list of requirement groups. Group sort order
// is semantically significant: groups consume courses in declared order, so a
// course used by an earlier group is unavailable to later groups unless
// double-counting is allowed.
type DegreeProgram struct {
	ID           string
	Code         string // e.g. "BS-CS-Core-2025"
	Name         string
	TotalCredits int
	Groups       []*ReqGroup
}

// ReqGroup is one requirement group of a degree program.
//
// ALL and ANY_COUNT carry an explicit member course list; FILTER matches the
// student's whole history against a department-prefix / minimum-number
// predicate instead.
type ReqGroup struct {
	ID               string
	ProgramID        string
	Title            string
	Kind             GroupKind
	MinCount         int
	MinCredits       int
	AllowDoubleCount bool
	SortOrder        int

	// FILTER predicate params
	DeptPrefix string
	MinNumber  *int

	Courses []*ReqGroupCourse
}

// ReqGroupCourse is a member of an ALL or ANY_COUNT group, optionally
// overriding the group's minimum grade floor.
type ReqGroupCourse struct {
	ID       string
	GroupID  string
	CourseID string
	MinGrade string
}

// Validate checks definition-time invariants. A FILTER group without any
// predicate is corrupted reference data and must never reach evaluation.
func (g *ReqGroup) Validate() error {
	if !ValidGroupKinds[string(g.Kind)] {
		return fmt.Errorf("invalid requirement group kind %q", g.Kind)
	}
	if g.Kind == GroupFilter && g.DeptPrefix == "" && g.MinNumber == nil {
		return fmt.Errorf("FILTER group %q requires a dept prefix or a minimum course number", g.Title)
	}
	if (g.Kind == GroupAnyCount || g.Kind == GroupFilter) && g.MinCount < 1 {
		return fmt.Errorf("%s group %q requires a positive min count", g.Kind, g.Title)
	}
	return nil
}

// MemberCourseIDs returns the group's member course ids in listed order.
func (g *ReqGroup) MemberCourseIDs() []string {
	ids := make([]string, 0, len(g.Courses))
	for _, rc := range g.Courses {
		ids = append(ids, rc.CourseID)
	}
	return ids
}

// MemberMinGrade returns the per-course minimum grade override for courseID,
// or the empty string when no override exists.
func (g *ReqGroup) MemberMinGrade(courseID string) string {
	for _, rc := range g.Courses {
		if rc.CourseID == courseID {
			return rc.MinGrade
		}
	}
	return ""
}
