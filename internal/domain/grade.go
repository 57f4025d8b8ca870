package domain

import "strings"

// DefaultGradeFloor is the baseline passing grade applied by requirement
// group evaluation when no per-course override is present.
const DefaultGradeFloor = "C"

// gradeRank maps letter grades to comparable ranks. Grades absent from the
// table rank below F so they never satisfy a floor.
var gradeRank = map[string]int{
	"A": 12, "A-": 11,
	"B+": 10, "B": 9, "B-": 8,
	"C+": 7, "C": 6, "C-": 5,
	"D": 3, "F": 0,
}

// GradeMeetsFloor reports whether grade satisfies minGrade. An empty minGrade
// always passes; an empty grade never passes a non-empty floor. An unknown
// floor is unsatisfiable rather than silently permissive.
func GradeMeetsFloor(grade, minGrade string) bool {
	if minGrade == "" {
		return true
	}
	if grade == "" {
		return false
	}
	got, ok := gradeRank[strings.ToUpper(strings.TrimSpace(grade))]
	if !ok {
		return false
	}
	want, ok := gradeRank[strings.ToUpper(strings.TrimSpace(minGrade))]
	if !ok {
		return false
	}
	return got >= want
}
