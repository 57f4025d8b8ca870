package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ebarlowe/gradplan/internal/cli/formatter"
	"github.com/ebarlowe/gradplan/internal/planner"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "browse PROGRAM",
		Short: "Interactively browse requirements and add courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("browse needs an interactive terminal; use `gradplan requirements` instead")
			}

			ctx := context.Background()
			student, err := currentStudent(ctx, app)
			if err != nil {
				return err
			}

			anchorID, anchorName := "", ""
			if semester != "" {
				view, err := resolveSemester(ctx, app, student.ID, semester)
				if err != nil {
					return err
				}
				anchorID, anchorName = view.Semester.ID, view.Semester.Name
			} else if views, err := app.Semesters.List(ctx, student.ID); err == nil && len(views) > 0 {
				last := views[len(views)-1]
				anchorID, anchorName = last.Semester.ID, last.Semester.Name
			}

			model := newBrowseModel(app, student.ID, args[0], anchorID, anchorName)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	semesterFlag(cmd.Flags(), &semester, "Semester courses are added to and gated against (default: last)")

	return cmd
}

// browseRow is one line of the flattened listing: a group header or a course.
type browseRow struct {
	isGroup bool
	header  string
	course  *planner.CourseAvailability
}

type reportLoadedMsg struct {
	report *planner.AvailabilityReport
	err    error
}

type courseAddedMsg struct {
	code string
	err  error
}

type browseModel struct {
	app        *App
	studentID  string
	program    string
	anchorID   string
	anchorName string

	rows      []browseRow
	cursor    int
	loading   bool
	filtering bool
	filter    textinput.Model
	status    string
	err       error
}

func newBrowseModel(app *App, studentID, program, anchorID, anchorName string) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "filter by code or title"
	ti.Prompt = "/"
	return &browseModel{
		app:        app,
		studentID:  studentID,
		program:    program,
		anchorID:   anchorID,
		anchorName: anchorName,
		filter:     ti,
		loading:    true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadReport()
}

func (m *browseModel) loadReport() tea.Cmd {
	app, studentID, program := m.app, m.studentID, m.program
	query, anchorID := m.filter.Value(), m.anchorID
	return func() tea.Msg {
		report, err := app.Requirements.Evaluate(context.Background(), studentID, program, query, anchorID)
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m *browseModel) addSelected() tea.Cmd {
	if m.anchorID == "" {
		m.status = "no semester to add to"
		return nil
	}
	row := m.selectedCourse()
	if row == nil {
		return nil
	}
	if row.Disabled {
		m.status = fmt.Sprintf("%s is not addable", row.Code)
		return nil
	}
	app, studentID, anchorID := m.app, m.studentID, m.anchorID
	courseID, code := row.CourseID, row.Code
	return func() tea.Msg {
		_, err := app.Roster.AddCourse(context.Background(), studentID, anchorID, courseID)
		return courseAddedMsg{code: code, err: err}
	}
}

func (m *browseModel) selectedCourse() *planner.CourseAvailability {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].course
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = flattenReport(msg.report)
		m.clampCursor()
		return m, nil

	case courseAddedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("added %s to %s", msg.code, m.anchorName)
		m.loading = true
		return m, m.loadReport()

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.filter.Blur()
				m.loading = true
				return m, m.loadReport()
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.loading = true
				return m, m.loadReport()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
		}

		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		case "a", "enter":
			return m, m.addSelected()
		case "r":
			m.loading = true
			return m, m.loadReport()
		}
	}
	return m, nil
}

// moveCursor steps over group headers so the cursor always rests on a course.
func (m *browseModel) moveCursor(delta int) {
	i := m.cursor + delta
	for i >= 0 && i < len(m.rows) && m.rows[i].isGroup {
		i += delta
	}
	if i >= 0 && i < len(m.rows) {
		m.cursor = i
	}
}

func (m *browseModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < len(m.rows) && m.rows[m.cursor].isGroup {
		m.moveCursor(1)
	}
}

func flattenReport(report *planner.AvailabilityReport) []browseRow {
	var rows []browseRow
	for _, g := range report.Groups {
		header := fmt.Sprintf("%s  %d/%d", g.Title, g.CompletedCount, g.RequiredCount)
		rows = append(rows, browseRow{isGroup: true, header: header})
		for _, c := range g.Courses {
			rows = append(rows, browseRow{course: c})
		}
	}
	return rows
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading requirements...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	s := "\n  " + formatter.Bold(m.program)
	if m.anchorName != "" {
		s += "  " + formatter.Dim("adding to "+m.anchorName)
	}
	s += "\n"
	if m.filtering || m.filter.Value() != "" {
		s += "  " + m.filter.View() + "\n"
	}
	s += "\n"

	for i, row := range m.rows {
		if row.isGroup {
			s += "  " + formatter.Header(row.header) + "\n"
			continue
		}
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		s += "  " + cursor + browseLine(row.course) + "\n"
	}

	if m.status != "" {
		s += "\n  " + formatter.StyleYellow.Render(m.status) + "\n"
	}
	s += "\n  " + formatter.Dim("↑/↓ move · a add · / filter · r refresh · q quit") + "\n"
	return s
}

func browseLine(c *planner.CourseAvailability) string {
	label := fmt.Sprintf("%-10s %s", c.Code, c.Title)
	switch {
	case c.Taken:
		return formatter.StyleGreen.Render("✔ ") + formatter.Dim(label)
	case c.Assigned:
		return formatter.StyleBlue.Render("● ") + formatter.Dim(label)
	case !c.PlannedPrereqOK:
		missing := ""
		if len(c.PlannedMissingCodes) > 0 {
			missing = "  needs " + c.PlannedMissingCodes[0]
			if len(c.PlannedMissingCodes) > 1 {
				missing += fmt.Sprintf(" +%d", len(c.PlannedMissingCodes)-1)
			}
		}
		return formatter.Dim("✘ " + label + missing)
	default:
		return "  " + formatter.StyleFg.Render(label)
	}
}
