package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (id, email, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Email,
		s.Name,
		s.CreatedAt.Format(timeLayout),
		s.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, email, name, created_at, updated_at FROM students WHERE id = ?`
	return r.scanStudent(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteStudentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `SELECT id, email, name, created_at, updated_at FROM students WHERE email = ?`
	return r.scanStudent(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteStudentRepo) scanStudent(row *sql.Row) (*domain.Student, error) {
	var s domain.Student
	var createdAt, updatedAt string
	err := row.Scan(&s.ID, &s.Email, &s.Name, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
