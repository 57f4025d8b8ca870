package domain

type Term string

const (
	TermSpring Term = "SPRING"
	TermSummer Term = "SUMMER"
	TermFall   Term = "FALL"
)

// ValidTerms is the canonical set of accepted term strings.
var ValidTerms = map[string]bool{
	"SPRING": true, "SUMMER": true, "FALL": true,
}

// Weight returns the within-year ordering weight of a term.
// Unknown or empty terms sort before all known terms.
func (t Term) Weight() int {
	switch t {
	case TermSpring:
		return 1
	case TermSummer:
		return 2
	case TermFall:
		return 3
	default:
		return 0
	}
}

type CourseStatus string

const (
	StatusPlanned    CourseStatus = "PLANNED"
	StatusInProgress CourseStatus = "IN_PROGRESS"
	StatusCompleted  CourseStatus = "COMPLETED"
)

// ValidCourseStatuses is the canonical set of accepted status strings.
var ValidCourseStatuses = map[string]bool{
	"PLANNED": true, "IN_PROGRESS": true, "COMPLETED": true,
}

type GroupKind string

const (
	GroupAll      GroupKind = "ALL"
	GroupAnyCount GroupKind = "ANY_COUNT"
	GroupFilter   GroupKind = "FILTER"
)

// ValidGroupKinds is the canonical set of accepted requirement group kinds.
var ValidGroupKinds = map[string]bool{
	"ALL": true, "ANY_COUNT": true, "FILTER": true,
}
