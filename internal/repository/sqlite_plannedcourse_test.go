package repository

import (
	"context"
	"testing"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPlan plants a student with one semester and returns the pieces most
// planned-course tests need.
func setupPlan(t *testing.T) (studentID, semesterID string, courses *SQLiteCourseRepo, repo *SQLitePlannedCourseRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	semesters := NewSQLiteSemesterRepo(db)
	courses = NewSQLiteCourseRepo(db)
	repo = NewSQLitePlannedCourseRepo(db)
	ctx := context.Background()

	student := testutil.NewTestStudent("Avery")
	require.NoError(t, students.Create(ctx, student))
	sem := testutil.NewTestSemester(student.ID, "Fall 2025")
	require.NoError(t, semesters.Create(ctx, sem))
	return student.ID, sem.ID, courses, repo
}

func addCourse(t *testing.T, courses *SQLiteCourseRepo, code string, opts ...testutil.CourseOption) *domain.Course {
	t.Helper()
	c := testutil.NewTestCourse(code, "Course "+code, opts...)
	require.NoError(t, courses.Upsert(context.Background(), c))
	return c
}

func TestPlannedCourseRepo_CreateAndGetByStudentAndCourse(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	course := addCourse(t, courses, "CSCI 111")
	pc := testutil.NewTestPlannedCourse(studentID, semID, course,
		testutil.WithStatus(domain.StatusCompleted), testutil.WithGrade("B+"))
	require.NoError(t, repo.Create(ctx, pc))

	fetched, err := repo.GetByStudentAndCourse(ctx, studentID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, pc.ID, fetched.ID)
	assert.Equal(t, domain.StatusCompleted, fetched.Status)
	assert.Equal(t, "B+", fetched.Grade)
	assert.Equal(t, 3.0, fetched.Credits)

	_, err = repo.GetByStudentAndCourse(ctx, studentID, "other-course")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlannedCourseRepo_StudentCourseUnique(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	course := addCourse(t, courses, "CSCI 111")
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlannedCourse(studentID, semID, course)))

	dup := testutil.NewTestPlannedCourse(studentID, semID, course, testutil.WithPosition(1))
	assert.Error(t, repo.Create(ctx, dup), "a student plans each course at most once")
}

func TestPlannedCourseRepo_SemesterPositionUnique(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	a := addCourse(t, courses, "CSCI 111")
	b := addCourse(t, courses, "CSCI 112")
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlannedCourse(studentID, semID, a, testutil.WithPosition(0))))

	err := repo.Create(ctx, testutil.NewTestPlannedCourse(studentID, semID, b, testutil.WithPosition(0)))
	assert.Error(t, err, "two rows cannot share a position within a semester")
}

func TestPlannedCourseRepo_MaxPosition(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	max, err := repo.MaxPosition(ctx, semID)
	require.NoError(t, err)
	assert.Equal(t, -1, max, "empty semester reports -1 so the next append lands at 0")

	course := addCourse(t, courses, "CSCI 111")
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlannedCourse(studentID, semID, course, testutil.WithPosition(4))))

	max, err = repo.MaxPosition(ctx, semID)
	require.NoError(t, err)
	assert.Equal(t, 4, max)
}

func TestPlannedCourseRepo_SumCreditsBySemester(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	a := addCourse(t, courses, "CSCI 111", testutil.WithCredits(3.0))
	b := addCourse(t, courses, "BIOL 100", testutil.WithCredits(4.0))
	pcA := testutil.NewTestPlannedCourse(studentID, semID, a, testutil.WithPosition(0))
	pcB := testutil.NewTestPlannedCourse(studentID, semID, b, testutil.WithPosition(1))
	require.NoError(t, repo.Create(ctx, pcA))
	require.NoError(t, repo.Create(ctx, pcB))

	sum, err := repo.SumCreditsBySemester(ctx, semID, "")
	require.NoError(t, err)
	assert.Equal(t, 7.0, sum)

	sum, err = repo.SumCreditsBySemester(ctx, semID, pcB.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum, "excluded row is left out of the total")

	sum, err = repo.SumCreditsBySemester(ctx, "empty-semester", "")
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestPlannedCourseRepo_CompactPositions(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	var ids []string
	for i, code := range []string{"CSCI 111", "CSCI 112", "CSCI 220"} {
		c := addCourse(t, courses, code)
		pc := testutil.NewTestPlannedCourse(studentID, semID, c, testutil.WithPosition(i*3))
		require.NoError(t, repo.Create(ctx, pc))
		ids = append(ids, pc.ID)
	}
	require.NoError(t, repo.Delete(ctx, ids[1]))

	require.NoError(t, repo.CompactPositions(ctx, semID))

	rows, err := repo.ListBySemester(ctx, semID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ids[0], rows[0].ID)
	assert.Equal(t, 0, rows[0].Position)
	assert.Equal(t, ids[2], rows[1].ID)
	assert.Equal(t, 1, rows[1].Position)
}

func TestPlannedCourseRepo_CompactPositions_AlreadyDense(t *testing.T) {
	studentID, semID, courses, repo := setupPlan(t)
	ctx := context.Background()

	// A dense 0..N-1 layout is the worst case for a naive in-place rewrite:
	// assigning 0 to the row already at 0 must not trip the unique index.
	for i, code := range []string{"CSCI 111", "CSCI 112"} {
		c := addCourse(t, courses, code)
		require.NoError(t, repo.Create(ctx, testutil.NewTestPlannedCourse(studentID, semID, c, testutil.WithPosition(i))))
	}

	require.NoError(t, repo.CompactPositions(ctx, semID))

	rows, err := repo.ListBySemester(ctx, semID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Position)
	assert.Equal(t, 1, rows[1].Position)
}

func TestPlannedCourseRepo_UpdateMovesSemester(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	semesters := NewSQLiteSemesterRepo(db)
	courses := NewSQLiteCourseRepo(db)
	repo := NewSQLitePlannedCourseRepo(db)
	ctx := context.Background()

	student := testutil.NewTestStudent("Avery")
	require.NoError(t, students.Create(ctx, student))
	src := testutil.NewTestSemester(student.ID, "Fall")
	dst := testutil.NewTestSemester(student.ID, "Spring")
	require.NoError(t, semesters.Create(ctx, src))
	require.NoError(t, semesters.Create(ctx, dst))

	course := addCourse(t, courses, "CSCI 111")
	pc := testutil.NewTestPlannedCourse(student.ID, src.ID, course)
	require.NoError(t, repo.Create(ctx, pc))

	pc.SemesterID = dst.ID
	pc.Position = 0
	require.NoError(t, repo.Update(ctx, pc))

	moved, err := repo.GetByID(ctx, pc.ID)
	require.NoError(t, err)
	assert.Equal(t, dst.ID, moved.SemesterID)

	srcRows, err := repo.ListBySemester(ctx, src.ID)
	require.NoError(t, err)
	assert.Empty(t, srcRows)
}
