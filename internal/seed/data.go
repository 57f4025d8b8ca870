package seed

import "github.com/ebarlowe/gradplan/internal/domain"

type courseRow struct {
	Code    string
	Title   string
	Credits float64
}

type semesterRow struct {
	Name string
	Term domain.Term
	Year int
}

type groupSpec struct {
	Title     string
	Kind      domain.GroupKind
	MinCount  int
	Codes     []string
	Dept      string
	MinNumber *int
}

type programSpec struct {
	Code         string
	Name         string
	TotalCredits int
	Groups       []groupSpec
}

var defaultSemesters = []semesterRow{
	{"Fall 2024", domain.TermFall, 2024},
	{"Spring 2025", domain.TermSpring, 2025},
	{"Fall 2025", domain.TermFall, 2025},
	{"Spring 2026", domain.TermSpring, 2026},
	{"Fall 2026", domain.TermFall, 2026},
	{"Spring 2027", domain.TermSpring, 2027},
	{"Fall 2027", domain.TermFall, 2027},
	{"Spring 2028", domain.TermSpring, 2028},
}

var catalog = []courseRow{
	{"CSCI 120", "Introduction to Web Interface Development", 3},
	{"CSCI 135", "Introduction to Programming", 3},
	{"CSCI 145", "Intermediate Programming", 3},
	{"CSCI 210", "Computer Organization and Programming", 3},
	{"CSCI 220", "Data Structures", 3},
	{"CSCI 225", "Introduction to Relational Database and SQL", 3},
	{"CSCI 250", "Q* Information Management", 3},
	{"CSCI 270", "Data Communication Systems and Networks", 3},
	{"CSCI 303", "Introduction to Server-side Web Application Development", 3},
	{"CSCI 310", "Introduction to Computer Architecture", 3},
	{"CSCI 330", "Systems Analysis & Software Engineering", 3},
	{"CSCI 350", "Organization of Programming Languages", 3},
	{"CSCI 356", "Operating Systems", 3},
	{"CSCI 380", "Introduction to the Analysis of Algorithms", 3},
	{"CSCI 385", "Introduction to Information Systems Security", 3},
	{"CSCI 390", "Theory of Computation", 3},
	{"CSCI 401", "Ethics and Professional Issues in Computing", 3},
	{"CSCI 407", "Coding Theory", 3},
	{"CSCI 408", "Cryptography", 3},
	{"CSCI 425", "Database Systems Design", 3},
	{"CSCI 440", "Introduction to Computer Graphics", 3},
	{"CSCI 445", "Image Processing and Analysis", 3},
	{"CSCI 473", "Introduction to Parallel Systems", 3},
	{"CSCI 480", "Introduction to Artificial Intelligence", 3},
	{"CSCI 484", "Machine Learning", 3},
	{"CSCI 485", "Introduction to Robotics", 3},
	{"CSCI 490", "Software Engineering II", 3},
	{"CSCI 207", "Programming in C++", 3},
	{"CSCI 208", "Programming in Visual Basic", 3},
	{"CSCI 209", "Programming in Java", 3},

	{"MATH 160", "Calculus I", 4},
	{"MATH 160A", "Calculus I A", 2},
	{"MATH 160B", "Calculus I B", 2},
	{"MATH 161", "Calculus II", 4},
	{"MATH 161A", "Calculus II A", 2},
	{"MATH 161B", "Calculus II B", 2},
	{"MATH 174", "Introduction to Discrete Mathematics", 3},
	{"STAT 201", "Elementary Statistics", 3},
	{"STAT 201L", "Elementary Statistics Computer Laboratory", 1},
	{"MATH 242", "Modeling for Scientists I", 3},
	{"MATH 242L", "Modeling for Scientists I Laboratory", 1},
	{"MATH 220", "Mathematical Proofs and Problem Solving", 3},
	{"MATH 260", "Calculus III", 4},
	{"MATH 307", "Combinatorics", 3},
	{"MATH 308", "Graph Theory", 3},
	{"MATH 320", "Elementary Differential Equations", 3},
	{"MATH 344", "Linear Algebra", 3},
	{"MATH 407", "Coding Theory", 3},
	{"MATH 408", "Cryptography", 3},

	{"BIOL 121", "Biological Science I", 3},
	{"BIOL 121L", "Biological Science I Laboratory", 1},
	{"BIOL 122", "Biological Science II", 3},
	{"BIOL 122L", "Biological Science II Laboratory", 1},
	{"CHEM 111", "General Chemistry I", 3},
	{"CHEM 111L", "General Chemistry I Laboratory", 1},
	{"CHEM 112", "General Chemistry II", 3},
	{"CHEM 112L", "General Chemistry II Laboratory", 1},
	{"MSCI 111", "Introduction to Marine Science", 3},
	{"MSCI 111L", "Introduction to Marine Science Laboratory", 1},
	{"MSCI 112", "Introduction to Earth and Marine Geology", 3},
	{"MSCI 112L", "Introduction to Earth and Marine Geology Laboratory", 1},
	{"PHYS 137", "Models in Physics", 3},
	{"PHYS 137L", "Models in Physics Laboratory", 1},
	{"PHYS 211", "Essentials of Physics I", 3},
	{"PHYS 211L", "Essentials of Physics I Laboratory", 1},
	{"PHYS 212", "Essentials of Physics II", 3},
	{"PHYS 212L", "Essentials of Physics II Laboratory", 1},
	{"PHYS 235", "Electric Circuits", 3},

	{"COMM 140", "Communication and Public Speaking", 3},
	{"ENGL 290", "Introduction to Business Communication", 3},
	{"ENGL 390", "Business and Professional Communication", 3},
}

var typicalOfferings = map[string][]domain.Term{
	"CSCI 120": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"CSCI 135": {domain.TermFall, domain.TermSpring},
	"CSCI 145": {domain.TermFall, domain.TermSpring},
	"CSCI 210": {domain.TermFall},
	"CSCI 220": {domain.TermFall, domain.TermSpring},
	"CSCI 225": {domain.TermFall, domain.TermSpring},
	"CSCI 250": {domain.TermFall, domain.TermSpring},
	"CSCI 270": {domain.TermFall, domain.TermSpring},
	"CSCI 303": {domain.TermSpring},
	"CSCI 310": {domain.TermSpring},
	"CSCI 330": {domain.TermFall, domain.TermSpring},
	"CSCI 350": {domain.TermFall},
	"CSCI 356": {domain.TermFall},
	"CSCI 380": {domain.TermFall},
	"CSCI 385": {domain.TermFall, domain.TermSpring},
	"CSCI 390": {domain.TermSpring},
	"CSCI 401": {domain.TermFall, domain.TermSpring},
	"CSCI 407": {domain.TermSpring},
	"CSCI 408": {domain.TermFall},
	"CSCI 425": {domain.TermFall},
	"CSCI 440": {domain.TermFall, domain.TermSpring},
	"CSCI 445": {domain.TermFall, domain.TermSpring},
	"CSCI 473": {domain.TermFall, domain.TermSpring},
	"CSCI 480": {domain.TermFall, domain.TermSpring},
	"CSCI 484": {domain.TermFall, domain.TermSpring},
	"CSCI 485": {domain.TermFall, domain.TermSpring},
	"CSCI 490": {domain.TermFall},

	"MATH 160":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 160A": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 160B": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 161":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 161A": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 161B": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 174":  {domain.TermFall, domain.TermSpring},
	"STAT 201":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"STAT 201L": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MATH 242":  {domain.TermFall, domain.TermSpring},
	"MATH 242L": {domain.TermFall, domain.TermSpring},
	"MATH 220":  {domain.TermSpring},
	"MATH 260":  {domain.TermFall, domain.TermSpring},
	"MATH 307":  {domain.TermSpring},
	"MATH 308":  {domain.TermFall},
	"MATH 320":  {domain.TermFall, domain.TermSpring},
	"MATH 344":  {domain.TermFall, domain.TermSpring},
	"MATH 407":  {domain.TermSpring},
	"MATH 408":  {domain.TermFall},

	"BIOL 121":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"BIOL 121L": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"BIOL 122":  {domain.TermFall, domain.TermSpring},
	"BIOL 122L": {domain.TermFall, domain.TermSpring},
	"CHEM 111":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"CHEM 111L": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"CHEM 112":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"CHEM 112L": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"MSCI 111":  {domain.TermFall, domain.TermSpring},
	"MSCI 111L": {domain.TermFall, domain.TermSpring},
	"MSCI 112":  {domain.TermFall, domain.TermSpring},
	"MSCI 112L": {domain.TermFall, domain.TermSpring},
	"PHYS 137":  {domain.TermFall, domain.TermSpring},
	"PHYS 137L": {domain.TermFall, domain.TermSpring},
	"PHYS 211":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"PHYS 211L": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"PHYS 212":  {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"PHYS 212L": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"PHYS 235":  {domain.TermFall},

	"COMM 140": {domain.TermFall, domain.TermSpring},
	"ENGL 290": {domain.TermFall, domain.TermSpring, domain.TermSummer},
	"ENGL 390": {domain.TermFall, domain.TermSpring},
}

// prereqGroups is each course's OR-of-AND requirement in catalog terms.
// Entries naming courses outside the catalog (placement exams, retired
// codes) stay here deliberately: the seeder skips those groups whole while
// still advancing group keys, preserving the published numbering.
var prereqGroups = map[string][][]string{
	"CSCI 145": {{"CSCI 135"}},
	"CSCI 210": {{"CSCI 145"}},
	"CSCI 220": {{"CSCI 145"}},
	"CSCI 330": {{"CSCI 145"}},
	"CSCI 350": {{"CSCI 220"}},
	"CSCI 356": {{"CSCI 220"}},
	"CSCI 380": {{"CSCI 220"}},
	"CSCI 385": {{"CSCI 270"}},
	"CSCI 390": {{"CSCI 220"}},
	"CSCI 407": {{"MATH 344"}},
	"CSCI 408": {{"MATH 220"}, {"MATH 174"}},
	"CSCI 425": {{"CSCI 225"}},
	"CSCI 440": {{"CSCI 220"}},
	"CSCI 445": {{"CSCI 145", "MATH 160"}},
	"CSCI 473": {{"CSCI 210", "CSCI 270", "CSCI 330", "CSCI 356"}},
	"CSCI 480": {{"CSCI 220"}},
	"CSCI 484": {{"CSCI 220", "MATH 160"}},
	"CSCI 485": {{"CSCI 220"}},
	"CSCI 490": {{"CSCI 330"}},

	"MATH 160":  {{"MATH 131"}, {"MATH 135"}, {"Mathematics Placement"}},
	"MATH 160A": {{"MATH 131"}, {"MATH 135"}, {"Mathematics Placement"}},
	"MATH 160B": {{"MATH 160A"}},
	"MATH 161":  {{"MATH 160"}, {"MATH 160B"}},
	"MATH 161A": {{"MATH 160"}, {"MATH 160B"}},
	"MATH 161B": {{"MATH 161A"}},
	"MATH 174":  {{"MATH 130"}, {"MATH 130B"}, {"MATH 130I"}, {"MATH 135"}},
	"STAT 201":  {{"Any MATH except MATH 130A"}},
	"STAT 201L": {{"STAT 201"}},
	"MATH 242":  {{"MATH 160"}, {"MATH 160B"}},
	"MATH 242L": {{"MATH 242"}},
	"MATH 220":  {{"MATH 160"}, {"MATH 160B"}},
	"MATH 260":  {{"MATH 161"}, {"MATH 161B"}},
	"MATH 307":  {{"MATH 220"}, {"MATH 174"}},
	"MATH 308":  {{"MATH 220"}, {"MATH 174"}},
	"MATH 320":  {{"MATH 161"}, {"MATH 161B"}},
	"MATH 344":  {{"MATH 161"}, {"MATH 161B"}, {"MATH 160", "CSCI 220"}},

	"BIOL 121":  {{"MATH 131 or above"}, {"MATH 130"}, {"MATH 130B"}},
	"BIOL 121L": {{"BIOL 121"}},
	"BIOL 122":  {{"BIOL 121", "BIOL 121L"}},
	"BIOL 122L": {{"BIOL 122"}},
	"CHEM 111":  {{}},
	"CHEM 111L": {{"CHEM 111"}},
	"CHEM 112":  {{"CHEM 111", "CHEM 111L"}},
	"CHEM 112L": {{"CHEM 112"}},
	"MSCI 111":  {{"MATH 131 or above"}, {"SAT 550+"}, {"ACT 24+"}},
	"MSCI 111L": {{"MSCI 111"}},
	"MSCI 112":  {{"MATH 131 or above"}, {"SAT 550+"}, {"ACT 24+"}},
	"MSCI 112L": {{"MSCI 112"}},
	"PHYS 137":  {{}},
	"PHYS 137L": {{"PHYS 137"}},
	"PHYS 211":  {{"MATH 160"}, {"MATH 160B"}},
	"PHYS 211L": {{"PHYS 211"}},
	"PHYS 212":  {{"MATH 160", "PHYS 211", "PHYS 211L"}},
	"PHYS 212L": {{"PHYS 212"}},
	"PHYS 235":  {{"PHYS 137", "MATH 160"}, {"MATH 160B"}, {"PHYS 212"}},
}

var csciCoreAll = []string{
	"CSCI 120", "CSCI 135", "CSCI 145", "CSCI 210", "CSCI 220",
	"CSCI 250", "CSCI 270", "CSCI 330", "CSCI 350", "CSCI 356",
	"CSCI 380", "CSCI 385", "CSCI 390", "CSCI 401", "CSCI 473",
}

var sciLectureLabPairs = [][2]string{
	{"BIOL 121", "BIOL 121L"},
	{"BIOL 122", "BIOL 122L"},
	{"CHEM 111", "CHEM 111L"},
	{"CHEM 112", "CHEM 112L"},
	{"MSCI 111", "MSCI 111L"},
	{"MSCI 112", "MSCI 112L"},
	{"PHYS 137", "PHYS 137L"},
	{"PHYS 211", "PHYS 211L"},
	{"PHYS 212", "PHYS 212L"},
}

func intPtr(n int) *int { return &n }

func corePrograms() []programSpec {
	core := programSpec{
		Code:         "BS-CS-Core-2025",
		Name:         "Major Requirements (60 Credits)",
		TotalCredits: 60,
		Groups: []groupSpec{
			{Title: "CSCI Core • Take all", Kind: domain.GroupAll, Codes: csciCoreAll},
			{Title: "CSCI Programming Language • Pick one", Kind: domain.GroupAnyCount, MinCount: 1,
				Codes: []string{"CSCI 207", "CSCI 208", "CSCI 209"}},
			{Title: "Advanced CSCI Electives • Pick three", Kind: domain.GroupAnyCount, MinCount: 3,
				Codes: []string{"CSCI 310", "CSCI 425", "CSCI 440", "CSCI 445", "CSCI 480", "CSCI 484", "CSCI 485"}},
			{Title: "CSCI 200+ • Pick one", Kind: domain.GroupFilter, MinCount: 1, Dept: "CSCI", MinNumber: intPtr(200)},
		},
	}

	foundations := programSpec{
		Code:         "BS-CS-Foundations-2025",
		Name:         "Foundation Requirements (28-30 Credits) *",
		TotalCredits: 30,
	}
	foundations.Groups = append(foundations.Groups,
		groupSpec{Title: "Math Core • Calculus I • Pick one", Kind: domain.GroupAnyCount, MinCount: 1, Codes: []string{"MATH 160"}},
		groupSpec{Title: "Math Core • Calculus I Split • Take all", Kind: domain.GroupAll, Codes: []string{"MATH 160A", "MATH 160B"}},
		groupSpec{Title: "Math Core • Calculus II • Pick one", Kind: domain.GroupAnyCount, MinCount: 1, Codes: []string{"MATH 161"}},
		groupSpec{Title: "Math Core • Calculus II Split • Take all", Kind: domain.GroupAll, Codes: []string{"MATH 161A", "MATH 161B"}},
		groupSpec{Title: "Math Core • Discrete Mathematics • Take all", Kind: domain.GroupAll, Codes: []string{"MATH 174"}},
		groupSpec{Title: "Math Core • Statistics + Lab • Take all", Kind: domain.GroupAll, Codes: []string{"STAT 201", "STAT 201L"}},
		groupSpec{Title: "Math Path • Pick one", Kind: domain.GroupAnyCount, MinCount: 1,
			Codes: []string{"MATH 220", "MATH 260", "MATH 307", "MATH 308", "MATH 320", "MATH 344", "MATH 407", "MATH 408"}},
		groupSpec{Title: "Math Path • Modeling I + Lab • Take all", Kind: domain.GroupAll, Codes: []string{"MATH 242", "MATH 242L"}},
	)

	lectures := make([]string, 0, len(sciLectureLabPairs))
	for _, pair := range sciLectureLabPairs {
		lectures = append(lectures, pair[0])
	}
	foundations.Groups = append(foundations.Groups,
		groupSpec{Title: "Science Core • Pick one lecture", Kind: domain.GroupAnyCount, MinCount: 1, Codes: lectures})
	for _, pair := range sciLectureLabPairs {
		foundations.Groups = append(foundations.Groups,
			groupSpec{Title: "Science Core • Lab for " + pair[0] + " • Take all", Kind: domain.GroupAll, Codes: []string{pair[1]}})
	}
	foundations.Groups = append(foundations.Groups,
		groupSpec{Title: "Communication • Pick one", Kind: domain.GroupAnyCount, MinCount: 1,
			Codes: []string{"COMM 140", "ENGL 290", "ENGL 390"}})

	return []programSpec{core, foundations}
}
