package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/google/uuid"
)

var testCodeCounter atomic.Int64

// Student fixtures

func NewTestStudent(name string) *domain.Student {
	now := time.Now().UTC()
	n := testCodeCounter.Add(1)
	return &domain.Student{
		ID:        uuid.New().String(),
		Email:     fmt.Sprintf("%s%d@example.edu", name, n),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Course fixtures

type CourseOption func(*domain.Course)

func WithCredits(c float64) CourseOption {
	return func(course *domain.Course) {
		course.Credits = c
	}
}

func WithDepartment(dept string) CourseOption {
	return func(course *domain.Course) {
		course.Department = dept
	}
}

// NewTestCourse builds a catalog course. When code is empty a unique
// "TEST nnn" code is generated.
func NewTestCourse(code, title string, opts ...CourseOption) *domain.Course {
	if code == "" {
		code = fmt.Sprintf("TEST %d", 100+testCodeCounter.Add(1))
	}
	c := &domain.Course{
		ID:      uuid.New().String(),
		Code:    code,
		Title:   title,
		Credits: 3.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Semester fixtures

type SemesterOption func(*domain.Semester)

func WithTermYear(term domain.Term, year int) SemesterOption {
	return func(s *domain.Semester) {
		s.Term = term
		s.Year = year
	}
}

func WithOrder(order int) SemesterOption {
	return func(s *domain.Semester) {
		s.Order = &order
	}
}

func NewTestSemester(studentID, name string, opts ...SemesterOption) *domain.Semester {
	now := time.Now().UTC()
	s := &domain.Semester{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlannedCourse fixtures

type PlannedCourseOption func(*domain.PlannedCourse)

func WithStatus(status domain.CourseStatus) PlannedCourseOption {
	return func(pc *domain.PlannedCourse) {
		pc.Status = status
	}
}

func WithGrade(grade string) PlannedCourseOption {
	return func(pc *domain.PlannedCourse) {
		pc.Grade = grade
	}
}

func WithPosition(pos int) PlannedCourseOption {
	return func(pc *domain.PlannedCourse) {
		pc.Position = pos
	}
}

func NewTestPlannedCourse(studentID, semesterID string, course *domain.Course, opts ...PlannedCourseOption) *domain.PlannedCourse {
	now := time.Now().UTC()
	pc := &domain.PlannedCourse{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		SemesterID: semesterID,
		CourseID:   course.ID,
		Credits:    course.Credits,
		Status:     domain.StatusPlanned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

// Program fixtures

func NewTestProgram(code, name string) *domain.DegreeProgram {
	return &domain.DegreeProgram{
		ID:   uuid.New().String(),
		Code: code,
		Name: name,
	}
}

type GroupOption func(*domain.ReqGroup)

func WithMinCount(n int) GroupOption {
	return func(g *domain.ReqGroup) {
		g.MinCount = n
	}
}

func WithDoubleCount() GroupOption {
	return func(g *domain.ReqGroup) {
		g.AllowDoubleCount = true
	}
}

func WithFilterPredicate(dept string, minNumber int) GroupOption {
	return func(g *domain.ReqGroup) {
		g.DeptPrefix = dept
		g.MinNumber = &minNumber
	}
}

func NewTestGroup(programID, title string, kind domain.GroupKind, sortOrder int, opts ...GroupOption) *domain.ReqGroup {
	g := &domain.ReqGroup{
		ID:        uuid.New().String(),
		ProgramID: programID,
		Title:     title,
		Kind:      kind,
		SortOrder: sortOrder,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func NewTestGroupCourse(groupID, courseID string) *domain.ReqGroupCourse {
	return &domain.ReqGroupCourse{
		ID:       uuid.New().String(),
		GroupID:  groupID,
		CourseID: courseID,
	}
}

func NewTestPrereqRule(courseID, prereqID string, groupKey int, allowConcurrent bool) *domain.PrereqRule {
	return &domain.PrereqRule{
		ID:              uuid.New().String(),
		CourseID:        courseID,
		PrereqCourseID:  prereqID,
		GroupKey:        groupKey,
		AllowConcurrent: allowConcurrent,
	}
}
