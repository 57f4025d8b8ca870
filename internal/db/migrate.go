package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id          TEXT PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		credits     REAL NOT NULL DEFAULT 3.0 CHECK(credits >= 0),
		department  TEXT NOT NULL DEFAULT '',
		level       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS prereq_rules (
		id               TEXT PRIMARY KEY,
		course_id        TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		prereq_course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE RESTRICT,
		group_key        INTEGER NOT NULL DEFAULT 1 CHECK(group_key >= 1),
		min_grade        TEXT,
		allow_concurrent INTEGER NOT NULL DEFAULT 0,
		UNIQUE(course_id, prereq_course_id, group_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prereq_rules_course ON prereq_rules(course_id)`,

	`CREATE TABLE IF NOT EXISTS typical_offerings (
		id        TEXT PRIMARY KEY,
		course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		term      TEXT NOT NULL CHECK(term IN ('SPRING','SUMMER','FALL')),
		UNIQUE(course_id, term)
	)`,

	`CREATE TABLE IF NOT EXISTS semesters (
		id         TEXT PRIMARY KEY,
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		term       TEXT NOT NULL DEFAULT '',
		year       INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(student_id, name),
		UNIQUE(student_id, sort_order)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_semesters_student ON semesters(student_id)`,

	`CREATE TABLE IF NOT EXISTS planned_courses (
		id          TEXT PRIMARY KEY,
		student_id  TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		semester_id TEXT NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
		course_id   TEXT NOT NULL REFERENCES courses(id) ON DELETE RESTRICT,
		credits     REAL NOT NULL CHECK(credits >= 0),
		section     TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'PLANNED'
		            CHECK(status IN ('PLANNED','IN_PROGRESS','COMPLETED')),
		grade       TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		UNIQUE(student_id, course_id),
		UNIQUE(semester_id, course_id),
		UNIQUE(semester_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_planned_courses_student ON planned_courses(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planned_courses_semester ON planned_courses(semester_id)`,

	`CREATE TABLE IF NOT EXISTS degree_programs (
		id            TEXT PRIMARY KEY,
		code          TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		total_credits INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS req_groups (
		id                 TEXT PRIMARY KEY,
		program_id         TEXT NOT NULL REFERENCES degree_programs(id) ON DELETE CASCADE,
		title              TEXT NOT NULL,
		kind               TEXT NOT NULL CHECK(kind IN ('ALL','ANY_COUNT','FILTER')),
		min_count          INTEGER NOT NULL DEFAULT 0,
		min_credits        INTEGER NOT NULL DEFAULT 0,
		allow_double_count INTEGER NOT NULL DEFAULT 0,
		sort_order         INTEGER NOT NULL DEFAULT 0,
		dept_prefix        TEXT NOT NULL DEFAULT '',
		min_number         INTEGER,
		CHECK(kind <> 'FILTER' OR dept_prefix <> '' OR min_number IS NOT NULL)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_req_groups_program ON req_groups(program_id)`,

	`CREATE TABLE IF NOT EXISTS req_group_courses (
		id        TEXT PRIMARY KEY,
		group_id  TEXT NOT NULL REFERENCES req_groups(id) ON DELETE CASCADE,
		course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE RESTRICT,
		min_grade TEXT,
		UNIQUE(group_id, course_id)
	)`,
}
