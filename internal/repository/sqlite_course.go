package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

const courseColumns = `id, code, title, description, credits, department, level`

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

// Upsert inserts the course or, when the code already exists, refreshes its
// descriptive fields. Catalog identity is stable across reseeds.
func (r *SQLiteCourseRepo) Upsert(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, code, title, description, credits, department, level)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			credits = excluded.credits,
			department = excluded.department,
			level = excluded.level`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Code, c.Title, c.Description, c.Credits, c.Department, c.Level)
	if err != nil {
		return fmt.Errorf("upserting course %s: %w", c.Code, err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	return r.scanCourse(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE UPPER(code) = UPPER(?)`
	return r.scanCourse(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLiteCourseRepo) ListAll(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()
	return r.scanCourses(rows)
}

func (r *SQLiteCourseRepo) Search(ctx context.Context, query string, unassignedForStudent string, limit int) ([]*domain.Course, error) {
	q := `SELECT ` + courseColumns + ` FROM courses WHERE 1=1`
	var args []any
	if query != "" {
		q += ` AND (code LIKE ? COLLATE NOCASE OR title LIKE ? COLLATE NOCASE)`
		like := "%" + query + "%"
		args = append(args, like, like)
	}
	if unassignedForStudent != "" {
		q += ` AND id NOT IN (SELECT course_id FROM planned_courses WHERE student_id = ?)`
		args = append(args, unassignedForStudent)
	}
	q += ` ORDER BY code LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching courses: %w", err)
	}
	defer rows.Close()
	return r.scanCourses(rows)
}

func (r *SQLiteCourseRepo) scanCourse(row *sql.Row) (*domain.Course, error) {
	var c domain.Course
	err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.Credits, &c.Department, &c.Level)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	return &c, nil
}

func (r *SQLiteCourseRepo) scanCourses(rows *sql.Rows) ([]*domain.Course, error) {
	var courses []*domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.Credits, &c.Department, &c.Level); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}
