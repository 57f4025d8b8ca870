package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// SQLitePrereqRepo implements PrereqRepo using a SQLite database.
type SQLitePrereqRepo struct {
	db db.DBTX
}

// NewSQLitePrereqRepo creates a new SQLitePrereqRepo.
func NewSQLitePrereqRepo(conn db.DBTX) *SQLitePrereqRepo {
	return &SQLitePrereqRepo{db: conn}
}

// Upsert inserts a rule or refreshes min_grade and allow_concurrent on the
// existing (course, prereq, group) row.
func (r *SQLitePrereqRepo) Upsert(ctx context.Context, rule *domain.PrereqRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO prereq_rules (id, course_id, prereq_course_id, group_key, min_grade, allow_concurrent)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(course_id, prereq_course_id, group_key) DO UPDATE SET
			min_grade = excluded.min_grade,
			allow_concurrent = excluded.allow_concurrent`
	_, err := r.db.ExecContext(ctx, query,
		rule.ID,
		rule.CourseID,
		rule.PrereqCourseID,
		rule.GroupKey,
		nullableString(rule.MinGrade),
		boolToInt(rule.AllowConcurrent),
	)
	if err != nil {
		return fmt.Errorf("upserting prereq rule: %w", err)
	}
	return nil
}

func (r *SQLitePrereqRepo) ListAll(ctx context.Context) ([]domain.PrereqRule, error) {
	query := `SELECT id, course_id, prereq_course_id, group_key, min_grade, allow_concurrent
		FROM prereq_rules ORDER BY course_id, group_key, prereq_course_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing prereq rules: %w", err)
	}
	defer rows.Close()
	return r.scanRules(rows)
}

func (r *SQLitePrereqRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.PrereqRule, error) {
	query := `SELECT id, course_id, prereq_course_id, group_key, min_grade, allow_concurrent
		FROM prereq_rules WHERE course_id = ? ORDER BY group_key, prereq_course_id`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing prereq rules for course: %w", err)
	}
	defer rows.Close()
	return r.scanRules(rows)
}

func (r *SQLitePrereqRepo) scanRules(rows *sql.Rows) ([]domain.PrereqRule, error) {
	var rules []domain.PrereqRule
	for rows.Next() {
		var rule domain.PrereqRule
		var minGrade sql.NullString
		var allowConcurrent int
		if err := rows.Scan(&rule.ID, &rule.CourseID, &rule.PrereqCourseID, &rule.GroupKey, &minGrade, &allowConcurrent); err != nil {
			return nil, fmt.Errorf("scanning prereq rule: %w", err)
		}
		rule.MinGrade = stringFromNullable(minGrade)
		rule.AllowConcurrent = intToBool(allowConcurrent)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prereq rules: %w", err)
	}
	return rules, nil
}
