package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/ebarlowe/gradplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	students  repository.StudentRepo
	courses   repository.CourseRepo
	prereqs   repository.PrereqRepo
	offerings repository.OfferingRepo
	semesters repository.SemesterRepo
	planned   repository.PlannedCourseRepo
	programs  repository.ProgramRepo
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		students:  repository.NewSQLiteStudentRepo(database),
		courses:   repository.NewSQLiteCourseRepo(database),
		prereqs:   repository.NewSQLitePrereqRepo(database),
		offerings: repository.NewSQLiteOfferingRepo(database),
		semesters: repository.NewSQLiteSemesterRepo(database),
		planned:   repository.NewSQLitePlannedCourseRepo(database),
		programs:  repository.NewSQLiteProgramRepo(database),
	}
}

func (e *testEnv) semesterService() SemesterService {
	return NewSemesterService(e.semesters, e.planned, e.courses, e.uow)
}

func (e *testEnv) rosterService() RosterService {
	return NewRosterService(e.uow)
}

func (e *testEnv) auditService() AuditService {
	return NewAuditService(e.courses, e.semesters, e.planned, e.programs)
}

func (e *testEnv) requirementsService() RequirementsService {
	return NewRequirementsService(e.courses, e.semesters, e.planned, e.programs, e.prereqs, e.offerings)
}

func (e *testEnv) createStudent(t *testing.T) *domain.Student {
	t.Helper()
	student := testutil.NewTestStudent("Student")
	require.NoError(t, e.students.Create(context.Background(), student))
	return student
}

func (e *testEnv) createCourse(t *testing.T, code string, opts ...testutil.CourseOption) *domain.Course {
	t.Helper()
	course := testutil.NewTestCourse(code, "Course "+code, opts...)
	require.NoError(t, e.courses.Upsert(context.Background(), course))
	return course
}

func (e *testEnv) createSemester(t *testing.T, studentID, name string, opts ...testutil.SemesterOption) *domain.Semester {
	t.Helper()
	sem := testutil.NewTestSemester(studentID, name, opts...)
	require.NoError(t, e.semesters.Create(context.Background(), sem))
	return sem
}

// plan inserts a planned course directly, appending it at the next free
// position unless an option overrides it.
func (e *testEnv) plan(t *testing.T, studentID string, sem *domain.Semester, course *domain.Course, opts ...testutil.PlannedCourseOption) *domain.PlannedCourse {
	t.Helper()
	maxPos, err := e.planned.MaxPosition(context.Background(), sem.ID)
	require.NoError(t, err)
	pc := testutil.NewTestPlannedCourse(studentID, sem.ID, course,
		append([]testutil.PlannedCourseOption{testutil.WithPosition(maxPos + 1)}, opts...)...)
	require.NoError(t, e.planned.Create(context.Background(), pc))
	return pc
}
