package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ebarlowe/gradplan/internal/db"
	"github.com/ebarlowe/gradplan/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo using a SQLite database.
type SQLiteProgramRepo struct {
	db db.DBTX
}

// NewSQLiteProgramRepo creates a new SQLiteProgramRepo.
func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

func (r *SQLiteProgramRepo) UpsertProgram(ctx context.Context, p *domain.DegreeProgram) error {
	query := `INSERT INTO degree_programs (id, code, name, total_credits) VALUES (?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET name = excluded.name, total_credits = excluded.total_credits`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Code, p.Name, p.TotalCredits)
	if err != nil {
		return fmt.Errorf("upserting degree program %s: %w", p.Code, err)
	}
	return nil
}

// UpsertGroup inserts a group or refreshes an existing one matched by
// (program, title, kind). Group definitions are validated before they can
// reach evaluation.
func (r *SQLiteProgramRepo) UpsertGroup(ctx context.Context, g *domain.ReqGroup) error {
	if err := g.Validate(); err != nil {
		return err
	}

	var existingID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM req_groups WHERE program_id = ? AND title = ? AND kind = ?`,
		g.ProgramID, g.Title, string(g.Kind)).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		query := `INSERT INTO req_groups (id, program_id, title, kind, min_count, min_credits, allow_double_count, sort_order, dept_prefix, min_number)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query,
			g.ID, g.ProgramID, g.Title, string(g.Kind), g.MinCount, g.MinCredits,
			boolToInt(g.AllowDoubleCount), g.SortOrder, g.DeptPrefix, nullableIntToValue(g.MinNumber))
		if err != nil {
			return fmt.Errorf("inserting requirement group %q: %w", g.Title, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("looking up requirement group %q: %w", g.Title, err)
	default:
		g.ID = existingID
		query := `UPDATE req_groups SET min_count = ?, min_credits = ?, allow_double_count = ?, sort_order = ?, dept_prefix = ?, min_number = ?
			WHERE id = ?`
		_, err := r.db.ExecContext(ctx, query,
			g.MinCount, g.MinCredits, boolToInt(g.AllowDoubleCount), g.SortOrder,
			g.DeptPrefix, nullableIntToValue(g.MinNumber), existingID)
		if err != nil {
			return fmt.Errorf("updating requirement group %q: %w", g.Title, err)
		}
		return nil
	}
}

func (r *SQLiteProgramRepo) UpsertGroupCourse(ctx context.Context, gc *domain.ReqGroupCourse) error {
	query := `INSERT INTO req_group_courses (id, group_id, course_id, min_grade) VALUES (?, ?, ?, ?)
		ON CONFLICT(group_id, course_id) DO UPDATE SET min_grade = excluded.min_grade`
	_, err := r.db.ExecContext(ctx, query, gc.ID, gc.GroupID, gc.CourseID, nullableString(gc.MinGrade))
	if err != nil {
		return fmt.Errorf("upserting group course: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByCode(ctx context.Context, code string) (*domain.DegreeProgram, error) {
	var p domain.DegreeProgram
	err := r.db.QueryRowContext(ctx,
		`SELECT id, code, name, total_credits FROM degree_programs WHERE code = ?`, code).
		Scan(&p.ID, &p.Code, &p.Name, &p.TotalCredits)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("degree program %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning degree program: %w", err)
	}

	groups, err := r.loadGroups(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Groups = groups
	return &p, nil
}

func (r *SQLiteProgramRepo) ListPrograms(ctx context.Context) ([]*domain.DegreeProgram, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, code, name, total_credits FROM degree_programs ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("listing degree programs: %w", err)
	}
	defer rows.Close()

	var programs []*domain.DegreeProgram
	for rows.Next() {
		var p domain.DegreeProgram
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.TotalCredits); err != nil {
			return nil, fmt.Errorf("scanning degree program: %w", err)
		}
		programs = append(programs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating degree programs: %w", err)
	}
	return programs, nil
}

func (r *SQLiteProgramRepo) loadGroups(ctx context.Context, programID string) ([]*domain.ReqGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, program_id, title, kind, min_count, min_credits, allow_double_count, sort_order, dept_prefix, min_number
		FROM req_groups WHERE program_id = ? ORDER BY sort_order, id`, programID)
	if err != nil {
		return nil, fmt.Errorf("listing requirement groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.ReqGroup
	for rows.Next() {
		var g domain.ReqGroup
		var kind string
		var allowDouble int
		var minNumber sql.NullInt64
		if err := rows.Scan(&g.ID, &g.ProgramID, &g.Title, &kind, &g.MinCount, &g.MinCredits,
			&allowDouble, &g.SortOrder, &g.DeptPrefix, &minNumber); err != nil {
			return nil, fmt.Errorf("scanning requirement group: %w", err)
		}
		g.Kind = domain.GroupKind(kind)
		g.AllowDoubleCount = intToBool(allowDouble)
		g.MinNumber = intPtrFromNullable(minNumber)
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requirement groups: %w", err)
	}

	for _, g := range groups {
		courses, err := r.loadGroupCourses(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Courses = courses
	}
	return groups, nil
}

func (r *SQLiteProgramRepo) loadGroupCourses(ctx context.Context, groupID string) ([]*domain.ReqGroupCourse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, group_id, course_id, min_grade FROM req_group_courses WHERE group_id = ? ORDER BY rowid`, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing group courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.ReqGroupCourse
	for rows.Next() {
		var gc domain.ReqGroupCourse
		var minGrade sql.NullString
		if err := rows.Scan(&gc.ID, &gc.GroupID, &gc.CourseID, &minGrade); err != nil {
			return nil, fmt.Errorf("scanning group course: %w", err)
		}
		gc.MinGrade = stringFromNullable(minGrade)
		courses = append(courses, &gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating group courses: %w", err)
	}
	return courses, nil
}
