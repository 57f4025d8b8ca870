package service

import (
	"context"
	"errors"
	"time"

	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/google/uuid"
)

type studentService struct {
	students repository.StudentRepo
}

func NewStudentService(students repository.StudentRepo) StudentService {
	return &studentService{students: students}
}

// GetOrCreateDemo resolves the demo identity. The planner is single-user at
// the presentation layer, so every command runs against this student unless
// an explicit email is supplied.
func (s *studentService) GetOrCreateDemo(ctx context.Context) (*domain.Student, error) {
	student, err := s.students.GetByEmail(ctx, domain.DemoStudentEmail)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	student = &domain.Student{
		ID:        uuid.New().String(),
		Email:     domain.DemoStudentEmail,
		Name:      "Demo Student",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return s.students.GetByEmail(ctx, email)
}
