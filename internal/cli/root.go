package cli

import (
	"context"

	"github.com/ebarlowe/gradplan/internal/seed"
	"github.com/ebarlowe/gradplan/internal/service"
	"github.com/spf13/cobra"
)

// PlanSeeder loads the reference catalog and demo plan.
type PlanSeeder interface {
	Run(ctx context.Context) (*seed.Result, error)
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Students     service.StudentService
	Semesters    service.SemesterService
	Roster       service.RosterService
	Catalog      service.CatalogService
	Audit        service.AuditService
	Requirements service.RequirementsService
	Seeder       PlanSeeder

	// IsInteractive reports whether stdin is a terminal; the browse view
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "gradplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gradplan",
		Short: "Degree planner: semesters, prerequisites, and requirement audits",
	}

	root.AddCommand(
		newSemesterCmd(app),
		newCourseCmd(app),
		newAuditCmd(app),
		newProgressCmd(app),
		newRequirementsCmd(app),
		newBrowseCmd(app),
		newSeedCmd(app),
	)

	return root
}
