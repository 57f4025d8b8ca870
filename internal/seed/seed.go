// Package seed loads the reference catalog: courses, typical offerings,
// prerequisite rules, the degree programs, and the demo student's default
// planning semesters. Every write is an idempotent upsert so reseeding a
// populated database refreshes reference data without duplicating it.
package seed

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/ebarlowe/gradplan/internal/repository"
	"github.com/google/uuid"
)

// Result summarizes what one seeding pass touched.
type Result struct {
	Courses     int
	Offerings   int
	PrereqRules int
	Programs    int
	Groups      int
	Semesters   int
}

type Seeder struct {
	uow db.UnitOfWork
}

func NewSeeder(uow db.UnitOfWork) *Seeder {
	return &Seeder{uow: uow}
}

// Run seeds everything inside one transaction.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		courses := repository.NewSQLiteCourseRepo(tx)
		offerings := repository.NewSQLiteOfferingRepo(tx)
		prereqs := repository.NewSQLitePrereqRepo(tx)
		programs := repository.NewSQLiteProgramRepo(tx)
		students := repository.NewSQLiteStudentRepo(tx)
		semesters := repository.NewSQLiteSemesterRepo(tx)

		if err := seedCatalog(ctx, courses, res); err != nil {
			return err
		}
		byCode, err := catalogByCode(ctx, courses)
		if err != nil {
			return err
		}
		if err := seedOfferings(ctx, offerings, byCode, res); err != nil {
			return err
		}
		if err := seedPrereqs(ctx, prereqs, byCode, res); err != nil {
			return err
		}
		if err := seedPrograms(ctx, programs, byCode, res); err != nil {
			return err
		}
		return seedDemoPlan(ctx, students, semesters, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func seedCatalog(ctx context.Context, courses repository.CourseRepo, res *Result) error {
	for _, row := range catalog {
		dept, level := deriveDeptLevel(row.Code)
		course := &domain.Course{
			ID:         uuid.New().String(),
			Code:       row.Code,
			Title:      row.Title,
			Credits:    row.Credits,
			Department: dept,
			Level:      level,
		}
		if err := courses.Upsert(ctx, course); err != nil {
			return err
		}
		res.Courses++
	}
	return nil
}

// deriveDeptLevel splits a catalog code into its department token and a
// hundred-level bucket. Lab suffixes keep the lecture's level.
func deriveDeptLevel(code string) (dept, level string) {
	parts := strings.Fields(code)
	if len(parts) != 2 {
		return code, ""
	}
	num := strings.TrimRight(parts[1], "ABIL")
	if num == "" {
		return parts[0], ""
	}
	return parts[0], num[:1] + "00"
}

func catalogByCode(ctx context.Context, courses repository.CourseRepo) (map[string]*domain.Course, error) {
	all, err := courses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*domain.Course, len(all))
	for _, c := range all {
		byCode[strings.ToUpper(strings.TrimSpace(c.Code))] = c
	}
	return byCode, nil
}

func seedOfferings(ctx context.Context, offerings repository.OfferingRepo, byCode map[string]*domain.Course, res *Result) error {
	for _, code := range sortedKeys(typicalOfferings) {
		course, ok := byCode[code]
		if !ok {
			continue
		}
		for _, term := range typicalOfferings[code] {
			off := &domain.TypicalOffering{
				ID:       uuid.New().String(),
				CourseID: course.ID,
				Term:     term,
			}
			if err := offerings.Upsert(ctx, off); err != nil {
				return err
			}
			res.Offerings++
		}
	}
	return nil
}

// seedPrereqs writes each course's OR-of-AND groups. A group naming any
// unknown code is skipped whole, but its group key still advances so the
// surviving groups keep stable numbering across reseeds.
func seedPrereqs(ctx context.Context, prereqs repository.PrereqRepo, byCode map[string]*domain.Course, res *Result) error {
	for _, targetCode := range sortedKeys(prereqGroups) {
		target, ok := byCode[targetCode]
		if !ok {
			continue
		}

		groupKey := 1
		for _, group := range prereqGroups[targetCode] {
			ids := make([]string, 0, len(group))
			known := true
			for _, prereqCode := range group {
				course, ok := byCode[strings.ToUpper(prereqCode)]
				if !ok {
					known = false
					break
				}
				ids = append(ids, course.ID)
			}
			if !known {
				groupKey++
				continue
			}

			for _, id := range ids {
				rule := &domain.PrereqRule{
					ID:              uuid.New().String(),
					CourseID:        target.ID,
					PrereqCourseID:  id,
					GroupKey:        groupKey,
					MinGrade:        domain.DefaultGradeFloor,
					AllowConcurrent: true,
				}
				if err := rule.Validate(); err != nil {
					return err
				}
				if err := prereqs.Upsert(ctx, rule); err != nil {
					return err
				}
				res.PrereqRules++
			}
			groupKey++
		}
	}
	return nil
}

func seedPrograms(ctx context.Context, programs repository.ProgramRepo, byCode map[string]*domain.Course, res *Result) error {
	for _, spec := range corePrograms() {
		program := &domain.DegreeProgram{
			ID:           uuid.New().String(),
			Code:         spec.Code,
			Name:         spec.Name,
			TotalCredits: spec.TotalCredits,
		}
		if err := programs.UpsertProgram(ctx, program); err != nil {
			return err
		}
		res.Programs++

		// The upsert keeps an existing program's id; re-read it.
		stored, err := programs.GetByCode(ctx, spec.Code)
		if err != nil {
			return err
		}

		for sortOrder, gs := range spec.Groups {
			group := &domain.ReqGroup{
				ID:         uuid.New().String(),
				ProgramID:  stored.ID,
				Title:      gs.Title,
				Kind:       gs.Kind,
				MinCount:   gs.MinCount,
				SortOrder:  sortOrder,
				DeptPrefix: gs.Dept,
				MinNumber:  gs.MinNumber,
			}
			if err := programs.UpsertGroup(ctx, group); err != nil {
				return err
			}
			res.Groups++

			for _, code := range gs.Codes {
				course, ok := byCode[code]
				if !ok {
					continue
				}
				gc := &domain.ReqGroupCourse{
					ID:       uuid.New().String(),
					GroupID:  group.ID,
					CourseID: course.ID,
					MinGrade: domain.DefaultGradeFloor,
				}
				if err := programs.UpsertGroupCourse(ctx, gc); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// seedDemoPlan creates the demo student with the default eight planning
// semesters and normalizes their timeline ranks.
func seedDemoPlan(ctx context.Context, students repository.StudentRepo, semesters repository.SemesterRepo, res *Result) error {
	student, err := students.GetByEmail(ctx, domain.DemoStudentEmail)
	if errors.Is(err, repository.ErrNotFound) {
		now := time.Now().UTC()
		student = &domain.Student{
			ID:        uuid.New().String(),
			Email:     domain.DemoStudentEmail,
			Name:      "Demo Student",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := students.Create(ctx, student); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	existing, err := semesters.ListByStudent(ctx, student.ID)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, sem := range existing {
		have[sem.Name] = true
	}

	for _, row := range defaultSemesters {
		if have[row.Name] {
			continue
		}
		now := time.Now().UTC()
		sem := &domain.Semester{
			ID:        uuid.New().String(),
			StudentID: student.ID,
			Name:      row.Name,
			Term:      row.Term,
			Year:      row.Year,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := semesters.Create(ctx, sem); err != nil {
			return err
		}
		res.Semesters++
	}

	all, err := semesters.ListByStudent(ctx, student.ID)
	if err != nil {
		return err
	}
	assignments := planner.NormalizeOrder(all)
	if !planner.AnyChanged(assignments) {
		return nil
	}
	updates := make([]repository.OrderAssignment, 0, len(assignments))
	for _, a := range assignments {
		updates = append(updates, repository.OrderAssignment{SemesterID: a.SemesterID, Order: a.Order})
	}
	return semesters.UpdateOrders(ctx, student.ID, updates)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
