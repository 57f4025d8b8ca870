package repository

import (
	"context"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// SQLiteOfferingRepo implements OfferingRepo using a SQLite database.
type SQLiteOfferingRepo struct {
	db db.DBTX
}

// NewSQLiteOfferingRepo creates a new SQLiteOfferingRepo.
func NewSQLiteOfferingRepo(conn db.DBTX) *SQLiteOfferingRepo {
	return &SQLiteOfferingRepo{db: conn}
}

func (r *SQLiteOfferingRepo) Upsert(ctx context.Context, o *domain.TypicalOffering) error {
	if !domain.ValidTerms[string(o.Term)] {
		return fmt.Errorf("invalid offering term %q", o.Term)
	}
	query := `INSERT INTO typical_offerings (id, course_id, term) VALUES (?, ?, ?)
		ON CONFLICT(course_id, term) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.CourseID, string(o.Term))
	if err != nil {
		return fmt.Errorf("upserting typical offering: %w", err)
	}
	return nil
}

func (r *SQLiteOfferingRepo) ListAll(ctx context.Context) ([]domain.TypicalOffering, error) {
	query := `SELECT id, course_id, term FROM typical_offerings ORDER BY course_id, term`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing typical offerings: %w", err)
	}
	defer rows.Close()

	var offerings []domain.TypicalOffering
	for rows.Next() {
		var o domain.TypicalOffering
		var term string
		if err := rows.Scan(&o.ID, &o.CourseID, &term); err != nil {
			return nil, fmt.Errorf("scanning typical offering: %w", err)
		}
		o.Term = domain.Term(term)
		offerings = append(offerings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating typical offerings: %w", err)
	}
	return offerings, nil
}
