package domain

import (
	"fmt"
	"time"
)

// Per-semester load caps enforced on every roster mutation.
const (
	MaxClassesPerSemester = 8
	MaxCreditsPerSemester = 18.0
)

// Semester is a student's planning bucket for a term. Order is the semester's
// explicit rank in the student's timeline; nil means the semester has not been
// placed yet and sorts chronologically until normalization assigns it a rank.
type Semester struct {
	ID        string
	StudentID string
	Name      string // e.g. "Fall 2025"
	Term      Term   // optional
	Year      int    // optional, 0 when unset
	Order     *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasExplicitOrder reports whether the semester carries a stored rank.
func (s *Semester) HasExplicitOrder() bool {
	return s.Order != nil
}

// Rank returns the stored rank, or -1 when none is assigned.
func (s *Semester) Rank() int {
	if s.Order == nil {
		return -1
	}
	return *s.Order
}

// PlannedCourse is a catalog course planned or taken in a specific semester.
// Credits is a snapshot taken when the course is added so that later catalog
// edits do not change an existing plan.
type PlannedCourse struct {
	ID         string
	StudentID  string
	SemesterID string
	CourseID   string
	Credits    float64
	Section    string
	Position   int
	Status     CourseStatus
	Grade      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the creation-time invariants of a planned course.
func (pc *PlannedCourse) Validate() error {
	if pc.StudentID == "" || pc.SemesterID == "" || pc.CourseID == "" {
		return fmt.Errorf("planned course requires student, semester and course")
	}
	if pc.Credits < 0 {
		return fmt.Errorf("planned course credits must be non-negative, got %.1f", pc.Credits)
	}
	if pc.Status != "" && !ValidCourseStatuses[string(pc.Status)] {
		return fmt.Errorf("invalid course status %q", pc.Status)
	}
	return nil
}

// Completed reports whether the course has been finished.
func (pc *PlannedCourse) Completed() bool {
	return pc.Status == StatusCompleted
}
