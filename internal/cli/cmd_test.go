package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/ebarlowe/gradplan/internal/seed"
	"github.com/ebarlowe/gradplan/internal/service"
	"github.com/ebarlowe/gradplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. Interactive fallbacks are disabled so commands never block on input.
// The course repo is returned alongside for planting catalog rows.
func testApp(t *testing.T) (*App, *repository.SQLiteCourseRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	studentRepo := repository.NewSQLiteStudentRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	prereqRepo := repository.NewSQLitePrereqRepo(database)
	offeringRepo := repository.NewSQLiteOfferingRepo(database)
	semesterRepo := repository.NewSQLiteSemesterRepo(database)
	plannedRepo := repository.NewSQLitePlannedCourseRepo(database)
	programRepo := repository.NewSQLiteProgramRepo(database)

	app := &App{
		Students:  service.NewStudentService(studentRepo),
		Semesters: service.NewSemesterService(semesterRepo, plannedRepo, courseRepo, uow),
		Roster:    service.NewRosterService(uow),
		Catalog:   service.NewCatalogService(courseRepo),
		Audit: service.NewAuditService(
			courseRepo, semesterRepo, plannedRepo, programRepo),
		Requirements: service.NewRequirementsService(
			courseRepo, semesterRepo, plannedRepo, programRepo, prereqRepo, offeringRepo),
		Seeder:        seed.NewSeeder(uow),
		IsInteractive: func() bool { return false },
	}
	return app, courseRepo
}

// executeCmd runs a cobra command tree and captures its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSemesterAddListRemove(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "semester", "add", "--name", "Fall 2026", "--term", "fall", "--year", "2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Created semester Fall 2026")

	out, err = executeCmd(t, app, "semester", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FALL 2026")
	assert.Contains(t, out, "(empty)")

	out, err = executeCmd(t, app, "semester", "remove", "fall 2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed semester Fall 2026")

	out, err = executeCmd(t, app, "semester", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No semesters planned")
}

func TestSemesterAdd_RejectsBadTerm(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "semester", "add", "--name", "X", "--term", "winter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid term")
}

func TestCourseLifecycle(t *testing.T) {
	app, courses := testApp(t)
	ctx := context.Background()

	require.NoError(t, courses.Upsert(ctx, testutil.NewTestCourse("CSCI 111", "Intro to Programming")))
	require.NoError(t, courses.Upsert(ctx, testutil.NewTestCourse("CSCI 220", "Data Structures")))

	_, err := executeCmd(t, app, "semester", "add", "--name", "Fall")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "semester", "add", "--name", "Spring")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "course", "add", "CSCI 111", "--semester", "Fall")
	require.NoError(t, err)
	assert.Contains(t, out, "Added CSCI 111 to Fall")

	// The unassigned filter hides the course just added.
	out, err = executeCmd(t, app, "course", "search", "csci", "--unassigned")
	require.NoError(t, err)
	assert.NotContains(t, out, "CSCI 111")
	assert.Contains(t, out, "CSCI 220")

	out, err = executeCmd(t, app, "course", "status", "CSCI 111", "completed", "--grade", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Marked CSCI 111 completed")

	out, err = executeCmd(t, app, "course", "move", "CSCI 111", "--to", "Spring")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved CSCI 111 to Spring")

	out, err = executeCmd(t, app, "course", "remove", "CSCI 111")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed CSCI 111")

	_, err = executeCmd(t, app, "course", "remove", "CSCI 111")
	require.Error(t, err, "already removed")
}

func TestCourseAdd_UnknownCode(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "semester", "add", "--name", "Fall")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "course", "add", "CSCI 999", "--semester", "Fall")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRequirements_ListsProgramsWithoutArg(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "requirements")
	require.NoError(t, err)
	assert.Contains(t, out, "No degree programs loaded")
}

func TestSeedThenAuditAndRequirements(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded")

	out, err = executeCmd(t, app, "requirements")
	require.NoError(t, err)
	assert.Contains(t, out, "BS-CS-Core-2025")

	out, err = executeCmd(t, app, "audit", "BS-CS-Core-2025")
	require.NoError(t, err)
	assert.Contains(t, out, "NOT SATISFIED")

	out, err = executeCmd(t, app, "progress", "BS-CS-Core-2025")
	require.NoError(t, err)
	assert.Contains(t, out, "0/15")

	out, err = executeCmd(t, app, "requirements", "BS-CS-Core-2025", "--query", "data structures")
	require.NoError(t, err)
	assert.Contains(t, out, "CSCI 220")
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "browse", "BS-CS-Core-2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
