package planner

import (
	"sort"

	"github.com/ebarlowe/gradplan/internal/domain"
)

// Policy controls which dimensions the prerequisite evaluator checks.
//
// The planning view uses PlanningPolicy: only the relative timeline matters,
// so a prerequisite planned in an earlier semester counts even before a grade
// exists. The audit view uses TranscriptPolicy: only COMPLETED courses count
// and their grades must clear each rule's floor.
type Policy struct {
	GradeAware    bool
	TemporalAware bool
}

// PlanningPolicy gates on semester order and concurrency flags only.
var PlanningPolicy = Policy{TemporalAware: true}

// TranscriptPolicy gates on completion and grade floors only.
var TranscriptPolicy = Policy{GradeAware: true}

// Verdict is the outcome of evaluating one course's prerequisite chain.
// MissingCourseIDs is empty when Satisfied; otherwise it is the deduplicated
// union of unmet required courses across every alternative group, in
// ascending id order.
type Verdict struct {
	Satisfied        bool
	MissingCourseIDs []string
}

// PrereqEvaluator answers prerequisite satisfaction questions for a fixed
// rule set and policy. Rules are grouped once at construction: rules sharing
// a (course, group key) form an AND-group, and the groups for a course form
// an OR-set.
type PrereqEvaluator struct {
	policy Policy
	groups map[string][][]*domain.PrereqRule // course id -> groups in ascending key order
}

// NewPrereqEvaluator builds an evaluator over the full prerequisite rule set.
func NewPrereqEvaluator(rules []*domain.PrereqRule, policy Policy) *PrereqEvaluator {
	byCourse := make(map[string]map[int][]*domain.PrereqRule)
	for _, rule := range rules {
		keyed, ok := byCourse[rule.CourseID]
		if !ok {
			keyed = make(map[int][]*domain.PrereqRule)
			byCourse[rule.CourseID] = keyed
		}
		keyed[rule.GroupKey] = append(keyed[rule.GroupKey], rule)
	}

	groups := make(map[string][][]*domain.PrereqRule, len(byCourse))
	for courseID, keyed := range byCourse {
		keys := make([]int, 0, len(keyed))
		for key := range keyed {
			keys = append(keys, key)
		}
		sort.Ints(keys)
		ordered := make([][]*domain.PrereqRule, 0, len(keys))
		for _, key := range keys {
			group := keyed[key]
			sort.Slice(group, func(i, j int) bool {
				return group[i].PrereqCourseID < group[j].PrereqCourseID
			})
			ordered = append(ordered, group)
		}
		groups[courseID] = ordered
	}
	return &PrereqEvaluator{policy: policy, groups: groups}
}

// GroupCount returns the number of alternative prerequisite groups for a
// course. Zero means the course has no prerequisites.
func (e *PrereqEvaluator) GroupCount(courseID string) int {
	return len(e.groups[courseID])
}

// Evaluate decides whether targetID's prerequisite chain is satisfied by the
// student's state when the target sits at anchorRank. A course with no rules
// is trivially satisfied. The first fully satisfied group short-circuits and
// clears the missing list; unmet courses from a satisfied alternative path
// are never reported.
func (e *PrereqEvaluator) Evaluate(targetID string, state StudentState, anchorRank int) Verdict {
	groups, ok := e.groups[targetID]
	if !ok {
		return Verdict{Satisfied: true}
	}

	missing := make(map[string]struct{})
	for _, group := range groups {
		groupOK := true
		for _, rule := range group {
			if !e.ruleSatisfied(rule, state, anchorRank) {
				groupOK = false
				missing[rule.PrereqCourseID] = struct{}{}
			}
		}
		if groupOK {
			return Verdict{Satisfied: true}
		}
	}

	ids := make([]string, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Verdict{Satisfied: false, MissingCourseIDs: ids}
}

func (e *PrereqEvaluator) ruleSatisfied(rule *domain.PrereqRule, state StudentState, anchorRank int) bool {
	cs, ok := state[rule.PrereqCourseID]
	if !ok {
		return false
	}
	if e.policy.TemporalAware {
		if cs.Rank < 0 || cs.Rank > anchorRank {
			return false
		}
		if cs.Rank == anchorRank && !rule.AllowConcurrent {
			return false
		}
	} else if cs.Status != domain.StatusCompleted {
		return false
	}
	if e.policy.GradeAware {
		floor := rule.MinGrade
		if floor == "" {
			floor = domain.DefaultGradeFloor
		}
		if !domain.GradeMeetsFloor(cs.Grade, floor) {
			return false
		}
	}
	return true
}
