package service

import (
	"context"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/planner"
)

// PlannedCourseView pairs a planned course with its catalog display fields.
type PlannedCourseView struct {
	Planned *domain.PlannedCourse
	Code    string
	Title   string
}

// SemesterView is one semester with its courses in position order.
type SemesterView struct {
	Semester *domain.Semester
	Courses  []*PlannedCourseView
	Credits  float64
}

// GroupProgress is the lightweight per-group counts of a progress summary.
type GroupProgress struct {
	Title     string
	Kind      domain.GroupKind
	Required  int
	Completed int
}

type StudentService interface {
	// GetOrCreateDemo resolves the demo identity, creating it on first use.
	GetOrCreateDemo(ctx context.Context) (*domain.Student, error)
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
}

type SemesterService interface {
	// List returns the student's semesters in normalized timeline order with
	// nested courses. Listing renormalizes stored ranks when they have
	// drifted from dense 0..N-1.
	List(ctx context.Context, studentID string) ([]*SemesterView, error)
	Create(ctx context.Context, s *domain.Semester) error
	Delete(ctx context.Context, studentID, semesterID string) error
	// Reorder pins the given semesters to the explicit head of the timeline
	// in slice order, then renormalizes everything.
	Reorder(ctx context.Context, studentID string, orderedIDs []string) error
}

type RosterService interface {
	AddCourse(ctx context.Context, studentID, semesterID, courseID string) (*domain.PlannedCourse, error)
	RemoveCourse(ctx context.Context, studentID, plannedCourseID string) error
	MoveCourse(ctx context.Context, studentID, plannedCourseID, targetSemesterID string) error
	// SetStatus updates progress state and grade for a planned course.
	SetStatus(ctx context.Context, studentID, plannedCourseID string, status domain.CourseStatus, grade string) error
}

type CatalogService interface {
	Search(ctx context.Context, query string, unassignedForStudent string) ([]*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	ListAll(ctx context.Context) ([]*domain.Course, error)
}

type AuditService interface {
	AuditProgram(ctx context.Context, studentID, programCode string, includePlanned bool) (*planner.ProgramReport, error)
	ProgressSummary(ctx context.Context, studentID, programCode string) ([]GroupProgress, error)
}

type RequirementsService interface {
	// Evaluate builds the availability report for a program, anchored at the
	// given semester. An empty anchor probes one rank past the end of the
	// student's timeline.
	Evaluate(ctx context.Context, studentID, programCode, query, anchorSemesterID string) (*planner.AvailabilityReport, error)
	ListPrograms(ctx context.Context) ([]*domain.DegreeProgram, error)
}
