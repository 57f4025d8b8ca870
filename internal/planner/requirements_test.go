package planner

import (
	"testing"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogBuilder struct {
	courses []*domain.Course
	byCode  map[string]*domain.Course
}

func newCatalog(codes ...string) *catalogBuilder {
	cb := &catalogBuilder{byCode: make(map[string]*domain.Course)}
	for _, code := range codes {
		c := testutil.NewTestCourse(code, "Course "+code)
		cb.courses = append(cb.courses, c)
		cb.byCode[code] = c
	}
	return cb
}

func (cb *catalogBuilder) id(code string) string {
	return cb.byCode[code].ID
}

func (cb *catalogBuilder) index() *CatalogIndex {
	return NewCatalogIndex(cb.courses)
}

func (cb *catalogBuilder) completed(codes ...string) StudentState {
	state := make(StudentState)
	for i, code := range codes {
		state[cb.id(code)] = CourseState{Status: domain.StatusCompleted, Grade: "B", Rank: i}
	}
	return state
}

func memberGroup(kind domain.GroupKind, sortOrder int, cb *catalogBuilder, codes []string, opts ...testutil.GroupOption) *domain.ReqGroup {
	g := testutil.NewTestGroup("prog", string(kind)+" group", kind, sortOrder, opts...)
	for _, code := range codes {
		g.Courses = append(g.Courses, testutil.NewTestGroupCourse(g.ID, cb.id(code)))
	}
	return g
}

func TestEvaluateProgram_AllGroup(t *testing.T) {
	cb := newCatalog("CSCI 111", "CSCI 112")
	program := &domain.DegreeProgram{
		Code: "P", Name: "Program",
		Groups: []*domain.ReqGroup{
			memberGroup(domain.GroupAll, 0, cb, []string{"CSCI 111", "CSCI 112"}),
		},
	}

	t.Run("both completed satisfies", func(t *testing.T) {
		report := EvaluateProgram(program, cb.completed("CSCI 111", "CSCI 112"), cb.index(), AuditOptions{})
		require.Len(t, report.Groups, 1)
		g := report.Groups[0]
		assert.True(t, g.Satisfied)
		assert.Equal(t, 2, g.RequiredCount)
		assert.ElementsMatch(t, []string{cb.id("CSCI 111"), cb.id("CSCI 112")}, g.AppliedCourseIDs)
		assert.Empty(t, g.MissingCourseIDs)
	})

	t.Run("one missing fails and is reported", func(t *testing.T) {
		report := EvaluateProgram(program, cb.completed("CSCI 111"), cb.index(), AuditOptions{})
		g := report.Groups[0]
		assert.False(t, g.Satisfied)
		assert.Equal(t, []string{cb.id("CSCI 112")}, g.MissingCourseIDs)
		assert.False(t, report.Satisfied)
	})

	t.Run("grade below floor does not count", func(t *testing.T) {
		state := cb.completed("CSCI 111", "CSCI 112")
		state[cb.id("CSCI 112")] = CourseState{Status: domain.StatusCompleted, Grade: "D"}
		report := EvaluateProgram(program, state, cb.index(), AuditOptions{})
		assert.False(t, report.Groups[0].Satisfied)
	})
}

func TestEvaluateProgram_MemberGradeOverrideScopedToAnyCount(t *testing.T) {
	cb := newCatalog("CSCI 111")
	state := cb.completed("CSCI 111") // grade B

	t.Run("ALL ignores the override", func(t *testing.T) {
		g := memberGroup(domain.GroupAll, 0, cb, []string{"CSCI 111"})
		g.Courses[0].MinGrade = "A"
		program := &domain.DegreeProgram{Code: "P", Groups: []*domain.ReqGroup{g}}

		report := EvaluateProgram(program, state, cb.index(), AuditOptions{})
		assert.True(t, report.Groups[0].Satisfied,
			"ALL members face the baseline floor regardless of overrides")
	})

	t.Run("ANY_COUNT honors the override", func(t *testing.T) {
		g := memberGroup(domain.GroupAnyCount, 0, cb, []string{"CSCI 111"}, testutil.WithMinCount(1))
		g.Courses[0].MinGrade = "A"
		program := &domain.DegreeProgram{Code: "P", Groups: []*domain.ReqGroup{g}}

		report := EvaluateProgram(program, state, cb.index(), AuditOptions{})
		assert.False(t, report.Groups[0].Satisfied)
	})
}

func TestEvaluateProgram_EmptyAllGroupTriviallySatisfied(t *testing.T) {
	cb := newCatalog()
	program := &domain.DegreeProgram{
		Code: "P",
		Groups: []*domain.ReqGroup{
			memberGroup(domain.GroupAll, 0, cb, nil),
		},
	}

	report := EvaluateProgram(program, StudentState{}, cb.index(), AuditOptions{})

	g := report.Groups[0]
	assert.True(t, g.Satisfied)
	assert.Equal(t, 0, g.RequiredCount)
}

func TestEvaluateProgram_AnyCountSelectsInListedOrder(t *testing.T) {
	cb := newCatalog("MATH 101", "MATH 102", "MATH 103")
	program := &domain.DegreeProgram{
		Code: "P",
		Groups: []*domain.ReqGroup{
			memberGroup(domain.GroupAnyCount, 0, cb,
				[]string{"MATH 101", "MATH 102", "MATH 103"},
				testutil.WithMinCount(1)),
		},
	}

	report := EvaluateProgram(program, cb.completed("MATH 102", "MATH 103"), cb.index(), AuditOptions{})

	g := report.Groups[0]
	assert.True(t, g.Satisfied)
	assert.Equal(t, []string{cb.id("MATH 102")}, g.AppliedCourseIDs,
		"first eligible in listed order wins, selection stops at min count")
}

func TestEvaluateProgram_AnyCountUnsatisfiedReportsRemaining(t *testing.T) {
	cb := newCatalog("MATH 101", "MATH 102")
	program := &domain.DegreeProgram{
		Code: "P",
		Groups: []*domain.ReqGroup{
			memberGroup(domain.GroupAnyCount, 0, cb,
				[]string{"MATH 101", "MATH 102"},
				testutil.WithMinCount(2)),
		},
	}

	report := EvaluateProgram(program, cb.completed("MATH 101"), cb.index(), AuditOptions{})

	g := report.Groups[0]
	assert.False(t, g.Satisfied)
	assert.Equal(t, []string{cb.id("MATH 101")}, g.AppliedCourseIDs)
	assert.Equal(t, []string{cb.id("MATH 102")}, g.MissingCourseIDs)
}

func TestEvaluateProgram_DoubleCountSuppression(t *testing.T) {
	cb := newCatalog("CSCI 111")
	shared := []string{"CSCI 111"}

	t.Run("later group cannot reuse by default", func(t *testing.T) {
		program := &domain.DegreeProgram{
			Code: "P",
			Groups: []*domain.ReqGroup{
				memberGroup(domain.GroupAnyCount, 0, cb, shared, testutil.WithMinCount(1)),
				memberGroup(domain.GroupAnyCount, 1, cb, shared, testutil.WithMinCount(1)),
			},
		}
		report := EvaluateProgram(program, cb.completed("CSCI 111"), cb.index(), AuditOptions{})
		assert.True(t, report.Groups[0].Satisfied)
		assert.False(t, report.Groups[1].Satisfied)
		assert.Empty(t, report.Groups[1].AppliedCourseIDs)
	})

	t.Run("allow double count on the later group reuses", func(t *testing.T) {
		program := &domain.DegreeProgram{
			Code: "P",
			Groups: []*domain.ReqGroup{
				memberGroup(domain.GroupAnyCount, 0, cb, shared, testutil.WithMinCount(1)),
				memberGroup(domain.GroupAnyCount, 1, cb, shared, testutil.WithMinCount(1), testutil.WithDoubleCount()),
			},
		}
		report := EvaluateProgram(program, cb.completed("CSCI 111"), cb.index(), AuditOptions{})
		assert.True(t, report.Groups[0].Satisfied)
		assert.True(t, report.Groups[1].Satisfied)
		assert.Equal(t, report.Groups[0].AppliedCourseIDs, report.Groups[1].AppliedCourseIDs)
	})
}

func TestEvaluateProgram_FilterGroup(t *testing.T) {
	cb := newCatalog("CSCI 135", "CSCI 220", "MATH 301")
	g := testutil.NewTestGroup("prog", "Upper CS", domain.GroupFilter, 0,
		testutil.WithMinCount(1), testutil.WithFilterPredicate("CSCI", 200))
	program := &domain.DegreeProgram{Code: "P", Groups: []*domain.ReqGroup{g}}

	state := StudentState{
		cb.id("CSCI 135"): {Status: domain.StatusPlanned, Rank: 0},
		cb.id("CSCI 220"): {Status: domain.StatusPlanned, Rank: 1},
	}

	report := EvaluateProgram(program, state, cb.index(), AuditOptions{IncludePlanned: true})

	gr := report.Groups[0]
	assert.True(t, gr.Satisfied)
	assert.Equal(t, []string{cb.id("CSCI 220")}, gr.AppliedCourseIDs,
		"number 135 is below the 200 floor, 220 qualifies")
}

func TestEvaluateProgram_FilterScansAscendingCodeOrder(t *testing.T) {
	cb := newCatalog("CSCI 330", "CSCI 210", "CSCI 450")
	g := testutil.NewTestGroup("prog", "Upper CS", domain.GroupFilter, 0,
		testutil.WithMinCount(1), testutil.WithFilterPredicate("CSCI", 200))
	program := &domain.DegreeProgram{Code: "P", Groups: []*domain.ReqGroup{g}}

	report := EvaluateProgram(program, cb.completed("CSCI 450", "CSCI 330", "CSCI 210"), cb.index(), AuditOptions{})

	assert.Equal(t, []string{cb.id("CSCI 210")}, report.Groups[0].AppliedCourseIDs,
		"eligible courses are consumed in ascending code order")
}

func TestEvaluateProgram_FilterAppliesNoGradeFloor(t *testing.T) {
	cb := newCatalog("CSCI 220")
	g := testutil.NewTestGroup("prog", "Upper CS", domain.GroupFilter, 0,
		testutil.WithMinCount(1), testutil.WithFilterPredicate("CSCI", 200))
	program := &domain.DegreeProgram{Code: "P", Groups: []*domain.ReqGroup{g}}

	state := StudentState{cb.id("CSCI 220"): {Status: domain.StatusCompleted, Grade: "D"}}

	report := EvaluateProgram(program, state, cb.index(), AuditOptions{})

	gr := report.Groups[0]
	assert.True(t, gr.Satisfied, "filter intake is structural, a completed D still applies")
	assert.Equal(t, []string{cb.id("CSCI 220")}, gr.AppliedCourseIDs)
}

func TestEvaluateProgram_FilterIgnoresNonNumericCodes(t *testing.T) {
	cb := newCatalog("STAT 201L", "STAT 210")
	g := testutil.NewTestGroup("prog", "Stats", domain.GroupFilter, 0,
		testutil.WithMinCount(2), testutil.WithFilterPredicate("STAT", 200))
	program := &domain.DegreeProgram{Code: "P", Groups: []*domain.ReqGroup{g}}

	report := EvaluateProgram(program, cb.completed("STAT 201L", "STAT 210"), cb.index(), AuditOptions{})

	gr := report.Groups[0]
	assert.False(t, gr.Satisfied, "lab suffix codes do not decompose and never match")
	assert.Equal(t, []string{cb.id("STAT 210")}, gr.AppliedCourseIDs)
}

func TestEvaluateProgram_IncludePlanned(t *testing.T) {
	cb := newCatalog("CSCI 111")
	program := &domain.DegreeProgram{
		Code: "P",
		Groups: []*domain.ReqGroup{
			memberGroup(domain.GroupAll, 0, cb, []string{"CSCI 111"}),
		},
	}
	state := StudentState{cb.id("CSCI 111"): {Status: domain.StatusPlanned}}

	strict := EvaluateProgram(program, state, cb.index(), AuditOptions{})
	assert.False(t, strict.Groups[0].Satisfied, "planned rows do not count in the transcript audit")

	relaxed := EvaluateProgram(program, state, cb.index(), AuditOptions{IncludePlanned: true})
	assert.True(t, relaxed.Groups[0].Satisfied, "planned rows count without a grade check")
}

func TestEvaluateProgram_EndToEndScenario(t *testing.T) {
	cb := newCatalog("CS 1", "CS 2", "CS 3", "CS 4")
	program := &domain.DegreeProgram{
		Code: "BS-CS", Name: "Computer Science",
		Groups: []*domain.ReqGroup{
			memberGroup(domain.GroupAll, 0, cb, []string{"CS 1", "CS 2"}),
			memberGroup(domain.GroupAnyCount, 1, cb, []string{"CS 3", "CS 4"}, testutil.WithMinCount(1)),
		},
	}

	report := EvaluateProgram(program, cb.completed("CS 1", "CS 2", "CS 3"), cb.index(), AuditOptions{})

	require.Len(t, report.Groups, 2)
	all, anyCount := report.Groups[0], report.Groups[1]

	assert.True(t, all.Satisfied)
	assert.Equal(t, []string{cb.id("CS 1"), cb.id("CS 2")}, all.AppliedCourseIDs)
	assert.Empty(t, all.MissingCourseIDs)

	assert.True(t, anyCount.Satisfied)
	assert.Equal(t, []string{cb.id("CS 3")}, anyCount.AppliedCourseIDs)

	assert.True(t, report.Satisfied)
	assert.Equal(t, 3, report.CoursesApplied)
	expected := cb.index().Credits(cb.id("CS 1")) + cb.index().Credits(cb.id("CS 2")) + cb.index().Credits(cb.id("CS 3"))
	assert.InDelta(t, expected, report.CreditsApplied, 1e-9)
}

func TestEvaluateProgram_ZeroGroups(t *testing.T) {
	report := EvaluateProgram(&domain.DegreeProgram{Code: "P"}, StudentState{}, NewCatalogIndex(nil), AuditOptions{})

	assert.True(t, report.Satisfied)
	assert.Empty(t, report.Groups)
	assert.Zero(t, report.CreditsApplied)
}
