package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/google/uuid"
)

type semesterService struct {
	semesters repository.SemesterRepo
	planned   repository.PlannedCourseRepo
	courses   repository.CourseRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSemesterService(
	semesters repository.SemesterRepo,
	planned repository.PlannedCourseRepo,
	courses repository.CourseRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SemesterService {
	return &semesterService{
		semesters: semesters,
		planned:   planned,
		courses:   courses,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// List returns the student's semesters in timeline order with nested courses.
// Stored ranks that have drifted from dense 0..N-1 are renormalized and
// persisted inside one transaction, so two calls in a row produce identical
// ranks and the second performs no writes.
func (s *semesterService) List(ctx context.Context, studentID string) (views []*SemesterView, err error) {
	defer observe(ctx, s.observer, "list-semesters", map[string]any{"student": studentID}, &err)()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		txPlanned := repository.NewSQLitePlannedCourseRepo(tx)
		txCourses := repository.NewSQLiteCourseRepo(tx)

		semesters, err := txSemesters.ListByStudent(ctx, studentID)
		if err != nil {
			return err
		}

		assignments := planner.NormalizeOrder(semesters)
		if planner.AnyChanged(assignments) {
			updates := make([]repository.OrderAssignment, 0, len(assignments))
			for _, a := range assignments {
				updates = append(updates, repository.OrderAssignment{SemesterID: a.SemesterID, Order: a.Order})
			}
			if err := txSemesters.UpdateOrders(ctx, studentID, updates); err != nil {
				return err
			}
		}
		ranks := planner.RankMap(assignments)
		for _, sem := range semesters {
			r := ranks[sem.ID]
			sem.Order = &r
		}
		sort.Slice(semesters, func(i, j int) bool {
			return *semesters[i].Order < *semesters[j].Order
		})

		catalog, err := txCourses.ListAll(ctx)
		if err != nil {
			return err
		}
		index := planner.NewCatalogIndex(catalog)

		views = make([]*SemesterView, 0, len(semesters))
		for _, sem := range semesters {
			rows, err := txPlanned.ListBySemester(ctx, sem.ID)
			if err != nil {
				return err
			}
			view := &SemesterView{Semester: sem}
			for _, pc := range rows {
				course := index.Course(pc.CourseID)
				cv := &PlannedCourseView{Planned: pc, Code: index.Code(pc.CourseID)}
				if course != nil {
					cv.Title = course.Title
				}
				view.Courses = append(view.Courses, cv)
				view.Credits += pc.Credits
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (s *semesterService) Create(ctx context.Context, sem *domain.Semester) (err error) {
	defer observe(ctx, s.observer, "create-semester", map[string]any{"name": sem.Name}, &err)()

	if sem.Name == "" {
		return fmt.Errorf("semester name is required")
	}
	if sem.Term != "" && !domain.ValidTerms[string(sem.Term)] {
		return fmt.Errorf("invalid term %q", sem.Term)
	}
	if sem.ID == "" {
		sem.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sem.CreatedAt = now
	sem.UpdatedAt = now
	return s.semesters.Create(ctx, sem)
}

func (s *semesterService) Delete(ctx context.Context, studentID, semesterID string) (err error) {
	defer observe(ctx, s.observer, "delete-semester", map[string]any{"semester": semesterID}, &err)()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		sem, err := txSemesters.GetByID(ctx, semesterID)
		if err != nil {
			return err
		}
		if sem.StudentID != studentID {
			return fmt.Errorf("semester %s: %w", semesterID, repository.ErrNotFound)
		}
		return txSemesters.Delete(ctx, semesterID)
	})
}

// Reorder pins orderedIDs to the head of the explicit bucket in slice order
// and renormalizes the full set, all in one transaction.
func (s *semesterService) Reorder(ctx context.Context, studentID string, orderedIDs []string) (err error) {
	defer observe(ctx, s.observer, "reorder-semesters", map[string]any{"count": len(orderedIDs)}, &err)()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSemesters := repository.NewSQLiteSemesterRepo(tx)
		semesters, err := txSemesters.ListByStudent(ctx, studentID)
		if err != nil {
			return err
		}

		byID := make(map[string]*domain.Semester, len(semesters))
		for _, sem := range semesters {
			byID[sem.ID] = sem
		}
		for i, id := range orderedIDs {
			sem, ok := byID[id]
			if !ok {
				return fmt.Errorf("semester %s: %w", id, repository.ErrNotFound)
			}
			// Negative pins sort ahead of every surviving explicit rank and
			// are replaced by dense values in the same normalization pass.
			pin := i - len(orderedIDs)
			sem.Order = &pin
		}

		assignments := planner.NormalizeOrder(semesters)
		updates := make([]repository.OrderAssignment, 0, len(assignments))
		for _, a := range assignments {
			updates = append(updates, repository.OrderAssignment{SemesterID: a.SemesterID, Order: a.Order})
		}
		return txSemesters.UpdateOrders(ctx, studentID, updates)
	})
}
