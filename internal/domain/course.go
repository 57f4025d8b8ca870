package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Course is a catalog entry. Catalog rows are read-mostly reference data;
// planned courses reference them but snapshot their credit value.
type Course struct {
	ID          string
	Code        string // "DEPT 123"
	Title       string
	Description string
	Credits     float64
	Department  string
	Level       string
}

// SplitCode decomposes a course code into its department token and numeric
// token. It reports false when the code is not exactly "DEPT NUM" with a
// fully numeric second token (lab sections like "STAT 201L" do not qualify).
func SplitCode(code string) (dept string, number int, ok bool) {
	parts := strings.Fields(strings.ToUpper(strings.TrimSpace(code)))
	if len(parts) != 2 {
		return "", 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}
	return parts[0], n, true
}

// PrereqRule is one row of a course's prerequisite requirement. Rules sharing
// a (course, group key) form an AND-group; the AND-groups for a course form an
// OR-set: the course's prerequisite is satisfied when any one group has all of
// its rules satisfied.
type PrereqRule struct {
	ID              string
	CourseID        string
	PrereqCourseID  string
	GroupKey        int
	MinGrade        string // optional, e.g. "C"
	AllowConcurrent bool
}

// Validate checks the definition-time invariants of a prerequisite rule.
func (r *PrereqRule) Validate() error {
	if r.CourseID == "" || r.PrereqCourseID == "" {
		return fmt.Errorf("prereq rule requires both course and prereq course")
	}
	if r.CourseID == r.PrereqCourseID {
		return fmt.Errorf("course cannot be its own prerequisite")
	}
	if r.GroupKey < 1 {
		return fmt.Errorf("prereq group key must be positive, got %d", r.GroupKey)
	}
	return nil
}

// TypicalOffering records a term a course is typically offered in.
// Set-valued per course, not year-specific.
type TypicalOffering struct {
	ID       string
	CourseID string
	Term     Term
}
