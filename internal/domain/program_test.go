package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReqGroupValidate_FilterNeedsPredicate(t *testing.T) {
	g := &ReqGroup{Title: "CSCI 200+", Kind: GroupFilter, MinCount: 1}
	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILTER")

	g.DeptPrefix = "CSCI"
	assert.NoError(t, g.Validate())

	n := 200
	g.DeptPrefix = ""
	g.MinNumber = &n
	assert.NoError(t, g.Validate())
}

func TestReqGroupValidate_MinCount(t *testing.T) {
	g := &ReqGroup{Title: "Pick one", Kind: GroupAnyCount}
	assert.Error(t, g.Validate())

	g.MinCount = 1
	assert.NoError(t, g.Validate())

	// ALL groups need no min count; the listed length is the requirement.
	all := &ReqGroup{Title: "Core", Kind: GroupAll}
	assert.NoError(t, all.Validate())
}

func TestReqGroupValidate_Kind(t *testing.T) {
	g := &ReqGroup{Title: "bad", Kind: GroupKind("SOME")}
	assert.Error(t, g.Validate())
}

func TestMemberMinGrade(t *testing.T) {
	g := &ReqGroup{
		Kind: GroupAnyCount,
		Courses: []*ReqGroupCourse{
			{CourseID: "c1", MinGrade: "B"},
			{CourseID: "c2"},
		},
	}
	assert.Equal(t, "B", g.MemberMinGrade("c1"))
	assert.Equal(t, "", g.MemberMinGrade("c2"))
	assert.Equal(t, "", g.MemberMinGrade("missing"))
	assert.Equal(t, []string{"c1", "c2"}, g.MemberCourseIDs())
}
