package planner

import "github.com/ebarlowe/gradplan/internal/domain"

// CourseState is one catalog course's standing in a student's plan: its
// progress status, the grade if any, and the dense rank of the semester it
// sits in.
type CourseState struct {
	Status domain.CourseStatus
	Grade  string
	Rank   int
}

// StudentState maps course id → CourseState for every course in a student's
// plan. It is the snapshot all evaluators read; building it once per request
// keeps every evaluation consistent.
type StudentState map[string]CourseState

// BuildStudentState joins a student's planned courses against the dense
// semester ranks. Courses in semesters missing from ranks get rank -1 so
// temporal gating never treats them as scheduled.
func BuildStudentState(courses []*domain.PlannedCourse, ranks map[string]int) StudentState {
	state := make(StudentState, len(courses))
	for _, pc := range courses {
		rank, ok := ranks[pc.SemesterID]
		if !ok {
			rank = -1
		}
		state[pc.CourseID] = CourseState{
			Status: pc.Status,
			Grade:  pc.Grade,
			Rank:   rank,
		}
	}
	return state
}

// CompletedOnly returns a copy of the state restricted to COMPLETED courses.
func (s StudentState) CompletedOnly() StudentState {
	out := make(StudentState, len(s))
	for id, cs := range s {
		if cs.Status == domain.StatusCompleted {
			out[id] = cs
		}
	}
	return out
}
