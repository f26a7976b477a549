package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/commands/options"
)

func addSchedule(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"schedules"},
		Short:   "Put massive actions on the calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(scheduleAdd(g), scheduleRm(g), scheduleLs(g))
	topLevel.AddCommand(cmd)
}

func scheduleAdd(g *globals) *cobra.Command {
	ao := &options.AtOptions{}
	cmd := &cobra.Command{
		Use:   "add <goal> <action>",
		Short: "Schedule a massive action",
		Example: `
rpm schedule add 3f2a 91bc --at 18:30
rpm schedule add 3f2a 91bc --at "2024-06-12 07:00"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			at, err := ao.Resolve(h.Day(), h.Location())
			if err != nil {
				return err
			}
			goalID, err := h.goalID(args[0])
			if err != nil {
				return err
			}
			actionID, err := h.actionID(goalID, args[1])
			if err != nil {
				return err
			}
			rec, err := h.ScheduleAction(goalID, actionID, at)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %q for %s\n", rec.Text, rec.ScheduledFor.In(h.Location()).Format("Mon 2006-01-02 15:04"))
			return nil
		},
	}
	options.AddAtArgs(cmd, ao)
	return cmd
}

func scheduleRm(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <schedule>",
		Aliases: []string{"delete"},
		Short:   "Delete a schedule record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			recs, err := h.Schedules()
			if err != nil {
				return unavailable(err)
			}
			id, err := matchID("schedule", args[0], recordIDs(recs))
			if err != nil {
				return err
			}
			return h.Unschedule(id)
		},
	}
}

func scheduleLs(g *globals) *cobra.Command {
	var all bool
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List schedule records for the active day",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			recs, err := h.SchedulesForDay()
			if all {
				recs, err = h.Schedules()
			}
			if err != nil {
				return unavailable(err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), recs)
			}
			h.pp.Schedules(recs, h.Location())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every record, not only the active day.")
	options.AddOutputArg(cmd, oo)
	return cmd
}
