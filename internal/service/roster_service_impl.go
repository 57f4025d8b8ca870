package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/google/uuid"
)

type rosterService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRosterService(uow db.UnitOfWork, observers ...UseCaseObserver) RosterService {
	return &rosterService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// AddCourse plans a catalog course into a semester. Caps and uniqueness are
// checked against fresh reads inside the transaction, never cached values,
// and a violation rejects the whole mutation before any write.
func (s *rosterService) AddCourse(ctx context.Context, studentID, semesterID, courseID string) (pc *domain.PlannedCourse, err error) {
	defer observe(ctx, s.observer, "add-course", map[string]any{"semester": semesterID, "course": courseID}, &err)()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		txPlanned := repository.NewSQLitePlannedCourseRepo(tx)
		txCourses := repository.NewSQLiteCourseRepo(tx)

		sem, err := txSemesters.GetByID(ctx, semesterID)
		if err != nil {
			return err
		}
		if sem.StudentID != studentID {
			return fmt.Errorf("semester %s: %w", semesterID, repository.ErrNotFound)
		}
		course, err := txCourses.GetByID(ctx, courseID)
		if err != nil {
			return err
		}

		if _, err := txPlanned.GetByStudentAndCourse(ctx, studentID, courseID); err == nil {
			return fmt.Errorf("course %s is already in the plan: %w", course.Code, ErrConflict)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		count, err := txPlanned.CountBySemester(ctx, semesterID)
		if err != nil {
			return err
		}
		if count >= domain.MaxClassesPerSemester {
			return fmt.Errorf("semester %s already holds %d classes: %w", sem.Name, count, ErrConflict)
		}
		credits, err := txPlanned.SumCreditsBySemester(ctx, semesterID, "")
		if err != nil {
			return err
		}
		if credits+course.Credits > domain.MaxCreditsPerSemester {
			return fmt.Errorf("semester %s would carry %.1f credits: %w", sem.Name, credits+course.Credits, ErrConflict)
		}

		maxPos, err := txPlanned.MaxPosition(ctx, semesterID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		pc = &domain.PlannedCourse{
			ID:         uuid.New().String(),
			StudentID:  studentID,
			SemesterID: semesterID,
			CourseID:   courseID,
			Credits:    course.Credits,
			Position:   maxPos + 1,
			Status:     domain.StatusPlanned,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := pc.Validate(); err != nil {
			return err
		}
		return txPlanned.Create(ctx, pc)
	})
	if err != nil {
		return nil, err
	}
	return pc, nil
}

// RemoveCourse drops a planned course and compacts its semester's positions
// back to dense 0..N-1.
func (s *rosterService) RemoveCourse(ctx context.Context, studentID, plannedCourseID string) (err error) {
	defer observe(ctx, s.observer, "remove-course", map[string]any{"planned": plannedCourseID}, &err)()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlanned := repository.NewSQLitePlannedCourseRepo(tx)
		pc, err := txPlanned.GetByID(ctx, plannedCourseID)
		if err != nil {
			return err
		}
		if pc.StudentID != studentID {
			return fmt.Errorf("planned course %s: %w", plannedCourseID, repository.ErrNotFound)
		}
		if err := txPlanned.Delete(ctx, plannedCourseID); err != nil {
			return err
		}
		return txPlanned.CompactPositions(ctx, pc.SemesterID)
	})
}

// MoveCourse reassigns a planned course to another of the student's
// semesters, re-checking the target's caps with the course's snapshot
// credits and compacting the source semester.
func (s *rosterService) MoveCourse(ctx context.Context, studentID, plannedCourseID, targetSemesterID string) (err error) {
	defer observe(ctx, s.observer, "move-course", map[string]any{"planned": plannedCourseID, "target": targetSemesterID}, &err)()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		txPlanned := repository.NewSQLitePlannedCourseRepo(tx)

		pc, err := txPlanned.GetByID(ctx, plannedCourseID)
		if err != nil {
			return err
		}
		if pc.StudentID != studentID {
			return fmt.Errorf("planned course %s: %w", plannedCourseID, repository.ErrNotFound)
		}
		if pc.SemesterID == targetSemesterID {
			return nil
		}

		target, err := txSemesters.GetByID(ctx, targetSemesterID)
		if err != nil {
			return err
		}
		if target.StudentID != studentID {
			return fmt.Errorf("semester %s: %w", targetSemesterID, repository.ErrNotFound)
		}

		count, err := txPlanned.CountBySemester(ctx, targetSemesterID)
		if err != nil {
			return err
		}
		if count >= domain.MaxClassesPerSemester {
			return fmt.Errorf("semester %s already holds %d classes: %w", target.Name, count, ErrConflict)
		}
		credits, err := txPlanned.SumCreditsBySemester(ctx, targetSemesterID, pc.ID)
		if err != nil {
			return err
		}
		if credits+pc.Credits > domain.MaxCreditsPerSemester {
			return fmt.Errorf("semester %s would carry %.1f credits: %w", target.Name, credits+pc.Credits, ErrConflict)
		}

		maxPos, err := txPlanned.MaxPosition(ctx, targetSemesterID)
		if err != nil {
			return err
		}

		source := pc.SemesterID
		pc.SemesterID = targetSemesterID
		pc.Position = maxPos + 1
		pc.UpdatedAt = time.Now().UTC()
		if err := txPlanned.Update(ctx, pc); err != nil {
			return err
		}
		return txPlanned.CompactPositions(ctx, source)
	})
}

func (s *rosterService) SetStatus(ctx context.Context, studentID, plannedCourseID string, status domain.CourseStatus, grade string) (err error) {
	defer observe(ctx, s.observer, "set-course-status", map[string]any{"planned": plannedCourseID, "status": string(status)}, &err)()

	if !domain.ValidCourseStatuses[string(status)] {
		return fmt.Errorf("invalid course status %q", status)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlanned := repository.NewSQLitePlannedCourseRepo(tx)
		pc, err := txPlanned.GetByID(ctx, plannedCourseID)
		if err != nil {
			return err
		}
		if pc.StudentID != studentID {
			return fmt.Errorf("planned course %s: %w", plannedCourseID, repository.ErrNotFound)
		}
		pc.Status = status
		pc.Grade = grade
		pc.UpdatedAt = time.Now().UTC()
		return txPlanned.Update(ctx, pc)
	})
}
