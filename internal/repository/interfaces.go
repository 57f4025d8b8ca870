package repository

import (
	"context"

	"github.com/ebarlowe/gradplan/internal/domain"
)

// OrderAssignment is one semester's recomputed dense rank, produced by the
// planner's ordering normalizer and persisted by SemesterRepo.UpdateOrders.
type OrderAssignment struct {
	SemesterID string
	Order      int
}

type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
}

type CourseRepo interface {
	Upsert(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	ListAll(ctx context.Context) ([]*domain.Course, error)
	// Search matches query against code and title, case-insensitively. When
	// unassignedForStudent is non-empty, courses already planned anywhere by
	// that student are excluded. Results are code-ascending, capped at limit.
	Search(ctx context.Context, query string, unassignedForStudent string, limit int) ([]*domain.Course, error)
}

type PrereqRepo interface {
	Upsert(ctx context.Context, r *domain.PrereqRule) error
	ListAll(ctx context.Context) ([]domain.PrereqRule, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.PrereqRule, error)
}

type OfferingRepo interface {
	Upsert(ctx context.Context, o *domain.TypicalOffering) error
	ListAll(ctx context.Context) ([]domain.TypicalOffering, error)
}

type SemesterRepo interface {
	Create(ctx context.Context, s *domain.Semester) error
	GetByID(ctx context.Context, id string) (*domain.Semester, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Semester, error)
	Update(ctx context.Context, s *domain.Semester) error
	// UpdateOrders persists dense ranks for one student's semesters. The write
	// is two-phase (park, then assign) so the per-student order uniqueness
	// constraint holds at every statement boundary.
	UpdateOrders(ctx context.Context, studentID string, assignments []OrderAssignment) error
	Delete(ctx context.Context, id string) error
}

type PlannedCourseRepo interface {
	Create(ctx context.Context, pc *domain.PlannedCourse) error
	GetByID(ctx context.Context, id string) (*domain.PlannedCourse, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID string) (*domain.PlannedCourse, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.PlannedCourse, error)
	ListBySemester(ctx context.Context, semesterID string) ([]*domain.PlannedCourse, error)
	CountBySemester(ctx context.Context, semesterID string) (int, error)
	// SumCreditsBySemester totals credit snapshots, optionally excluding one
	// planned course (used when moving a course between semesters).
	SumCreditsBySemester(ctx context.Context, semesterID string, excludeID string) (float64, error)
	MaxPosition(ctx context.Context, semesterID string) (int, error)
	Update(ctx context.Context, pc *domain.PlannedCourse) error
	Delete(ctx context.Context, id string) error
	// CompactPositions renumbers a semester's courses to dense 0..N-1 in
	// current position order.
	CompactPositions(ctx context.Context, semesterID string) error
}

type ProgramRepo interface {
	UpsertProgram(ctx context.Context, p *domain.DegreeProgram) error
	UpsertGroup(ctx context.Context, g *domain.ReqGroup) error
	UpsertGroupCourse(ctx context.Context, gc *domain.ReqGroupCourse) error
	// GetByCode loads a program with its groups ordered by sort_order and
	// each group's member courses in insertion order.
	GetByCode(ctx context.Context, code string) (*domain.DegreeProgram, error)
	ListPrograms(ctx context.Context) ([]*domain.DegreeProgram, error)
}
