package commands

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/commands/options"
)

func New() *cobra.Command {
	return newRoot(newApp())
}

func newRoot(a *app) *cobra.Command {
	on := &options.OnOptions{}
	ids := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:           "rpm",
		Short:         options.Wrap80("Plan your day with captures, outcomes and massive actions."),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetOut(a.out)
	cmd.SetIn(a.in)

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, ids)

	g := &globals{app: a, on: on, ids: ids}
	addCommands(cmd, g)
	return cmd
}

// globals carries the persistent flags to every subcommand.
type globals struct {
	app *app
	on  *options.OnOptions
	ids *options.IDOptions
}

func (g *globals) planner() (*plannerHandle, error) {
	date, err := g.on.GetOn()
	if err != nil {
		return nil, err
	}
	p, err := g.app.plannerOn(date)
	if err != nil {
		return nil, err
	}
	return &plannerHandle{Planner: p, pp: g.app.printer(g.ids.ShowID)}, nil
}

func addCommands(topLevel *cobra.Command, g *globals) {
	addShow(topLevel, g)
	addNavigation(topLevel, g)
	addUndo(topLevel, g)
	addCapture(topLevel, g)
	addGoal(topLevel, g)
	addSchedule(topLevel, g)
	addSync(topLevel, g)
	addReset(topLevel, g)
	addLogin(topLevel, g)
	addLogout(topLevel, g)
	addCalendar(topLevel, g)
	addRemote(topLevel, g)
	addShell(topLevel, g)
}
