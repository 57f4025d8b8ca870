package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// positionParkOffset keeps in-flight positions disjoint from the final dense
// band during compaction, mirroring the semester order reassignment.
const positionParkOffset = 1000000

const plannedCourseColumns = `id, student_id, semester_id, course_id, credits, section, position, status, grade, created_at, updated_at`

// SQLitePlannedCourseRepo implements PlannedCourseRepo using a SQLite database.
type SQLitePlannedCourseRepo struct {
	db db.DBTX
}

// NewSQLitePlannedCourseRepo creates a new SQLitePlannedCourseRepo.
func NewSQLitePlannedCourseRepo(conn db.DBTX) *SQLitePlannedCourseRepo {
	return &SQLitePlannedCourseRepo{db: conn}
}

func (r *SQLitePlannedCourseRepo) Create(ctx context.Context, pc *domain.PlannedCourse) error {
	if err := pc.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO planned_courses (id, student_id, semester_id, course_id, credits, section, position, status, grade, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		pc.ID,
		pc.StudentID,
		pc.SemesterID,
		pc.CourseID,
		pc.Credits,
		pc.Section,
		pc.Position,
		string(pc.Status),
		nullableString(pc.Grade),
		pc.CreatedAt.Format(timeLayout),
		pc.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting planned course: %w", err)
	}
	return nil
}

func (r *SQLitePlannedCourseRepo) GetByID(ctx context.Context, id string) (*domain.PlannedCourse, error) {
	query := `SELECT ` + plannedCourseColumns + ` FROM planned_courses WHERE id = ?`
	pc, err := scanPlannedCourse(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planned course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planned course: %w", err)
	}
	return pc, nil
}

func (r *SQLitePlannedCourseRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID string) (*domain.PlannedCourse, error) {
	query := `SELECT ` + plannedCourseColumns + ` FROM planned_courses WHERE student_id = ? AND course_id = ?`
	pc, err := scanPlannedCourse(r.db.QueryRowContext(ctx, query, studentID, courseID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planned course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planned course: %w", err)
	}
	return pc, nil
}

func (r *SQLitePlannedCourseRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.PlannedCourse, error) {
	query := `SELECT ` + plannedCourseColumns + ` FROM planned_courses WHERE student_id = ? ORDER BY semester_id, position`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing planned courses: %w", err)
	}
	defer rows.Close()
	return scanPlannedCourses(rows)
}

func (r *SQLitePlannedCourseRepo) ListBySemester(ctx context.Context, semesterID string) ([]*domain.PlannedCourse, error) {
	query := `SELECT ` + plannedCourseColumns + ` FROM planned_courses WHERE semester_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, semesterID)
	if err != nil {
		return nil, fmt.Errorf("listing semester courses: %w", err)
	}
	defer rows.Close()
	return scanPlannedCourses(rows)
}

func (r *SQLitePlannedCourseRepo) CountBySemester(ctx context.Context, semesterID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM planned_courses WHERE semester_id = ?`, semesterID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting semester courses: %w", err)
	}
	return count, nil
}

func (r *SQLitePlannedCourseRepo) SumCreditsBySemester(ctx context.Context, semesterID string, excludeID string) (float64, error) {
	query := `SELECT COALESCE(SUM(credits), 0) FROM planned_courses WHERE semester_id = ?`
	args := []any{semesterID}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}
	var sum float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing semester credits: %w", err)
	}
	return sum, nil
}

func (r *SQLitePlannedCourseRepo) MaxPosition(ctx context.Context, semesterID string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) FROM planned_courses WHERE semester_id = ?`, semesterID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("reading max position: %w", err)
	}
	return max, nil
}

func (r *SQLitePlannedCourseRepo) Update(ctx context.Context, pc *domain.PlannedCourse) error {
	query := `UPDATE planned_courses SET semester_id = ?, credits = ?, section = ?, position = ?, status = ?, grade = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		pc.SemesterID,
		pc.Credits,
		pc.Section,
		pc.Position,
		string(pc.Status),
		nullableString(pc.Grade),
		pc.UpdatedAt.Format(timeLayout),
		pc.ID,
	)
	if err != nil {
		return fmt.Errorf("updating planned course: %w", err)
	}
	return nil
}

func (r *SQLitePlannedCourseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM planned_courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting planned course: %w", err)
	}
	return nil
}

func (r *SQLitePlannedCourseRepo) CompactPositions(ctx context.Context, semesterID string) error {
	ordered, err := r.ListBySemester(ctx, semesterID)
	if err != nil {
		return err
	}

	park := `UPDATE planned_courses SET position = position + ? WHERE semester_id = ?`
	if _, err := r.db.ExecContext(ctx, park, positionParkOffset, semesterID); err != nil {
		return fmt.Errorf("parking positions: %w", err)
	}

	assign := `UPDATE planned_courses SET position = ? WHERE id = ?`
	for i, pc := range ordered {
		if _, err := r.db.ExecContext(ctx, assign, i, pc.ID); err != nil {
			return fmt.Errorf("compacting position %d: %w", i, err)
		}
	}
	return nil
}

func scanPlannedCourse(scan func(dest ...any) error) (*domain.PlannedCourse, error) {
	var pc domain.PlannedCourse
	var status string
	var grade sql.NullString
	var createdAt, updatedAt string
	err := scan(&pc.ID, &pc.StudentID, &pc.SemesterID, &pc.CourseID, &pc.Credits,
		&pc.Section, &pc.Position, &status, &grade, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	pc.Status = domain.CourseStatus(status)
	pc.Grade = stringFromNullable(grade)
	pc.CreatedAt = parseTime(createdAt)
	pc.UpdatedAt = parseTime(updatedAt)
	return &pc, nil
}

func scanPlannedCourses(rows *sql.Rows) ([]*domain.PlannedCourse, error) {
	var courses []*domain.PlannedCourse
	for rows.Next() {
		pc, err := scanPlannedCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning planned course: %w", err)
		}
		courses = append(courses, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planned courses: %w", err)
	}
	return courses, nil
}
