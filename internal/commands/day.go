package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/commands/options"
	"github.com/saulo-duarte/rpm-planner/internal/planner"
	"github.com/saulo-duarte/rpm-planner/internal/printers"
)

type plannerHandle struct {
	*planner.Planner
	pp *printers.PrettyPrint
}

// show prints the active day followed by its schedule.
func (h *plannerHandle) show() error {
	h.pp.Day(h.Current(), h.TodayDate())
	recs, err := h.SchedulesForDay()
	if err != nil {
		return unavailable(err)
	}
	h.pp.Title("Schedule")
	h.pp.Schedules(recs, h.Location())
	return nil
}

func addShow(topLevel *cobra.Command, g *globals) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active day",
		Example: `
rpm show
rpm show --on=2024-06-10 -k
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), h.Current())
			}
			return h.show()
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addNavigation(topLevel *cobra.Command, g *globals) {
	nav := func(use, short string, move func(*plannerHandle) (bool, error), none string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
				if err != nil {
					return err
				}
				moved, err := move(h)
				if err != nil {
					return unavailable(err)
				}
				if !moved {
					_, _ = color.New(color.Faint).Fprintln(cmd.OutOrStdout(), none)
					return nil
				}
				return h.show()
			},
		}
	}

	always := func(fn func(*plannerHandle) error) func(*plannerHandle) (bool, error) {
		return func(h *plannerHandle) (bool, error) { return true, fn(h) }
	}

	topLevel.AddCommand(
		nav("today", "Go to today", always(func(h *plannerHandle) error { return h.Today() }), ""),
		nav("next-day", "Plan the day after the active one", always(func(h *plannerHandle) error { return h.PlanNextDay() }), ""),
		nav("prev", "Go to the closest earlier day with data",
			func(h *plannerHandle) (bool, error) { return h.Previous() }, "No earlier day."),
		nav("next", "Go to the closest later day with data",
			func(h *plannerHandle) (bool, error) { return h.Next() }, "No later day."),
	)
}

func addUndo(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Revert the last change made in this session",
		Long: options.Wrap80(`Undo history lives as long as the process. Use it from
"rpm shell" to step back through the changes of the current session.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			undone, err := h.Undo()
			if err != nil {
				return unavailable(err)
			}
			if !undone {
				_, _ = color.New(color.Faint).Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
				return nil
			}
			return h.show()
		},
	}
	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command, g *globals) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every local day and schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			if !co.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete all local planning data?") {
				return errors.New("aborted")
			}
			if err := h.Reset(); err != nil {
				return unavailable(err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Local data cleared.")
			return nil
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
