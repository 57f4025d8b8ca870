package repository

import (
	"context"
	"testing"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramRepo_GetByCode_LoadsGroupsInSortOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	courses := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	program := testutil.NewTestProgram("BS-CS", "Computer Science")
	require.NoError(t, repo.UpsertProgram(ctx, program))

	electives := testutil.NewTestGroup(program.ID, "Electives", domain.GroupAnyCount, 1,
		testutil.WithMinCount(2))
	core := testutil.NewTestGroup(program.ID, "Core", domain.GroupAll, 0)
	require.NoError(t, repo.UpsertGroup(ctx, electives))
	require.NoError(t, repo.UpsertGroup(ctx, core))

	a := testutil.NewTestCourse("CSCI 111", "Intro")
	b := testutil.NewTestCourse("CSCI 112", "Intro II")
	require.NoError(t, courses.Upsert(ctx, a))
	require.NoError(t, courses.Upsert(ctx, b))
	require.NoError(t, repo.UpsertGroupCourse(ctx, testutil.NewTestGroupCourse(core.ID, a.ID)))
	require.NoError(t, repo.UpsertGroupCourse(ctx, testutil.NewTestGroupCourse(core.ID, b.ID)))

	fetched, err := repo.GetByCode(ctx, "BS-CS")
	require.NoError(t, err)
	require.Len(t, fetched.Groups, 2)
	assert.Equal(t, "Core", fetched.Groups[0].Title, "groups come back by sort_order")
	assert.Equal(t, "Electives", fetched.Groups[1].Title)
	assert.Equal(t, 2, fetched.Groups[1].MinCount)

	members := fetched.Groups[0].Courses
	require.Len(t, members, 2)
	assert.Equal(t, a.ID, members[0].CourseID, "members keep insertion order")
	assert.Equal(t, b.ID, members[1].CourseID)
}

func TestProgramRepo_UpsertProgram_KeepsIDOnCodeConflict(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	first := testutil.NewTestProgram("BS-CS", "Computer Science")
	require.NoError(t, repo.UpsertProgram(ctx, first))

	second := testutil.NewTestProgram("BS-CS", "Computer Science (2026)")
	second.TotalCredits = 120
	require.NoError(t, repo.UpsertProgram(ctx, second))

	fetched, err := repo.GetByCode(ctx, "BS-CS")
	require.NoError(t, err)
	assert.Equal(t, first.ID, fetched.ID)
	assert.Equal(t, "Computer Science (2026)", fetched.Name)
	assert.Equal(t, 120, fetched.TotalCredits)
}

func TestProgramRepo_UpsertGroup_RefreshAdoptsExistingID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	program := testutil.NewTestProgram("BS-CS", "Computer Science")
	require.NoError(t, repo.UpsertProgram(ctx, program))

	original := testutil.NewTestGroup(program.ID, "Electives", domain.GroupAnyCount, 0,
		testutil.WithMinCount(2))
	require.NoError(t, repo.UpsertGroup(ctx, original))

	// Same (program, title, kind) is the same group; the caller's struct is
	// updated in place so member upserts attach to the stored row.
	refreshed := testutil.NewTestGroup(program.ID, "Electives", domain.GroupAnyCount, 0,
		testutil.WithMinCount(3))
	require.NoError(t, repo.UpsertGroup(ctx, refreshed))
	assert.Equal(t, original.ID, refreshed.ID)

	fetched, err := repo.GetByCode(ctx, "BS-CS")
	require.NoError(t, err)
	require.Len(t, fetched.Groups, 1)
	assert.Equal(t, 3, fetched.Groups[0].MinCount)
}

func TestProgramRepo_UpsertGroup_RejectsInvalidDefinition(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	program := testutil.NewTestProgram("BS-CS", "Computer Science")
	require.NoError(t, repo.UpsertProgram(ctx, program))

	// ANY_COUNT without a positive min_count can never be satisfied.
	bad := testutil.NewTestGroup(program.ID, "Electives", domain.GroupAnyCount, 0)
	assert.Error(t, repo.UpsertGroup(ctx, bad))
}

func TestProgramRepo_FilterGroupRoundTripsPredicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	program := testutil.NewTestProgram("BS-CS", "Computer Science")
	require.NoError(t, repo.UpsertProgram(ctx, program))

	filter := testutil.NewTestGroup(program.ID, "Upper Division", domain.GroupFilter, 0,
		testutil.WithMinCount(3), testutil.WithFilterPredicate("CSCI", 300))
	require.NoError(t, repo.UpsertGroup(ctx, filter))

	fetched, err := repo.GetByCode(ctx, "BS-CS")
	require.NoError(t, err)
	require.Len(t, fetched.Groups, 1)
	g := fetched.Groups[0]
	assert.Equal(t, "CSCI", g.DeptPrefix)
	require.NotNil(t, g.MinNumber)
	assert.Equal(t, 300, *g.MinNumber)
}

func TestProgramRepo_ListPrograms(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertProgram(ctx, testutil.NewTestProgram("BS-MATH", "Mathematics")))
	require.NoError(t, repo.UpsertProgram(ctx, testutil.NewTestProgram("BS-CS", "Computer Science")))

	programs, err := repo.ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "BS-CS", programs[0].Code)
	assert.Equal(t, "BS-MATH", programs[1].Code)

	_, err = repo.GetByCode(ctx, "BA-ART")
	assert.ErrorIs(t, err, ErrNotFound)
}
