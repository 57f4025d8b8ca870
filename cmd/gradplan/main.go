package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebarlowe/gradplan/internal/cli"
	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/ebarlowe/gradplan/internal/seed"
	"github.com/ebarlowe/gradplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.gradplan/gradplan.db
	dbPath := os.Getenv("GRADPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gradplan", "gradplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case logging is off unless GRADPLAN_LOG is set.
	var observers []service.UseCaseObserver
	if os.Getenv("GRADPLAN_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	studentRepo := repository.NewSQLiteStudentRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	prereqRepo := repository.NewSQLitePrereqRepo(database)
	offeringRepo := repository.NewSQLiteOfferingRepo(database)
	semesterRepo := repository.NewSQLiteSemesterRepo(database)
	plannedRepo := repository.NewSQLitePlannedCourseRepo(database)
	programRepo := repository.NewSQLiteProgramRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Students:  service.NewStudentService(studentRepo),
		Semesters: service.NewSemesterService(semesterRepo, plannedRepo, courseRepo, uow, observers...),
		Roster:    service.NewRosterService(uow, observers...),
		Catalog:   service.NewCatalogService(courseRepo, observers...),
		Audit: service.NewAuditService(
			courseRepo, semesterRepo, plannedRepo, programRepo, observers...),
		Requirements: service.NewRequirementsService(
			courseRepo, semesterRepo, plannedRepo, programRepo, prereqRepo, offeringRepo, observers...),
		Seeder: seed.NewSeeder(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
