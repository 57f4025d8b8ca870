package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// orderParkOffset keeps in-flight order values disjoint from the final dense
// 0..N-1 band during two-phase reassignment.
const orderParkOffset = 1000000

const semesterColumns = `id, student_id, name, term, year, sort_order, created_at, updated_at`

// SQLiteSemesterRepo implements SemesterRepo using a SQLite database.
type SQLiteSemesterRepo struct {
	db db.DBTX
}

// NewSQLiteSemesterRepo creates a new SQLiteSemesterRepo.
func NewSQLiteSemesterRepo(conn db.DBTX) *SQLiteSemesterRepo {
	return &SQLiteSemesterRepo{db: conn}
}

func (r *SQLiteSemesterRepo) Create(ctx context.Context, s *domain.Semester) error {
	query := `INSERT INTO semesters (id, student_id, name, term, year, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.StudentID,
		s.Name,
		string(s.Term),
		s.Year,
		nullableIntToValue(s.Order),
		s.CreatedAt.Format(timeLayout),
		s.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting semester: %w", err)
	}
	return nil
}

func (r *SQLiteSemesterRepo) GetByID(ctx context.Context, id string) (*domain.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSemester(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("semester: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning semester: %w", err)
	}
	return s, nil
}

// ListByStudent returns semesters with explicitly ordered ones first, then
// the rest chronologically. The planner normalizer re-derives the canonical
// ranks from the same key.
func (r *SQLiteSemesterRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.Semester, error) {
	query := `SELECT ` + semesterColumns + ` FROM semesters WHERE student_id = ?
		ORDER BY sort_order IS NULL, sort_order,
			year,
			CASE term WHEN 'SPRING' THEN 1 WHEN 'SUMMER' THEN 2 WHEN 'FALL' THEN 3 ELSE 0 END,
			id`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*domain.Semester
	for rows.Next() {
		s, err := scanSemester(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning semester: %w", err)
		}
		semesters = append(semesters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating semesters: %w", err)
	}
	return semesters, nil
}

func (r *SQLiteSemesterRepo) Update(ctx context.Context, s *domain.Semester) error {
	query := `UPDATE semesters SET name = ?, term = ?, year = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name, string(s.Term), s.Year, s.UpdatedAt.Format(timeLayout), s.ID)
	if err != nil {
		return fmt.Errorf("updating semester: %w", err)
	}
	return nil
}

func (r *SQLiteSemesterRepo) UpdateOrders(ctx context.Context, studentID string, assignments []OrderAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	// Phase A: park every order in a far band so phase B never collides with
	// a value that has not been reassigned yet.
	park := `UPDATE semesters SET sort_order = sort_order + ? WHERE student_id = ? AND sort_order IS NOT NULL`
	if _, err := r.db.ExecContext(ctx, park, orderParkOffset, studentID); err != nil {
		return fmt.Errorf("parking semester orders: %w", err)
	}

	// Phase B: assign the canonical dense ranks.
	assign := `UPDATE semesters SET sort_order = ?, updated_at = ? WHERE id = ? AND student_id = ?`
	now := nowUTC()
	for _, a := range assignments {
		if _, err := r.db.ExecContext(ctx, assign, a.Order, now, a.SemesterID, studentID); err != nil {
			return fmt.Errorf("assigning order %d to semester %s: %w", a.Order, a.SemesterID, err)
		}
	}
	return nil
}

func (r *SQLiteSemesterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting semester: %w", err)
	}
	return nil
}

func scanSemester(scan func(dest ...any) error) (*domain.Semester, error) {
	var s domain.Semester
	var term string
	var order sql.NullInt64
	var createdAt, updatedAt string
	if err := scan(&s.ID, &s.StudentID, &s.Name, &term, &s.Year, &order, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.Term = domain.Term(term)
	s.Order = intPtrFromNullable(order)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
