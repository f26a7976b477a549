package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/commands/options"
	"github.com/saulo-duarte/rpm-planner/internal/syncclient"
)

func addCalendar(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var tz string
	export := &cobra.Command{
		Use:   "export [schedule ids...]",
		Short: "Create calendar events for remote schedule records",
		Example: `
rpm calendar export --tz America/Sao_Paulo
rpm calendar export 6d1e 77aa
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a := g.app
			if err := a.open(); err != nil {
				return err
			}
			if tz == "" {
				tz = a.cfg.TimeZone
			}
			if tz == "" || tz == "Local" {
				return errors.New("set --tz or timezone in .rpm.yaml to an IANA zone name")
			}
			if _, err := time.LoadLocation(tz); err != nil {
				return fmt.Errorf("unknown time zone %q", tz)
			}

			results, err := a.client.ExportCalendar(context.Background(), syncclient.ExportRequest{TimeZone: tz, ScheduleIDs: args})
			if err != nil {
				return friendly(err)
			}
			failed := 0
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := color.GreenString("ok")
				if r.Error != "" {
					failed++
					status = color.RedString(r.Error)
				}
				rows = append(rows, []string{r.ScheduleID, r.EventID, status})
			}
			a.printer(true).Table([]string{"Schedule", "Event", "Status"}, rows)
			if failed > 0 {
				return fmt.Errorf("%d of %d event(s) failed", failed, len(results))
			}
			return nil
		},
	}
	export.Flags().StringVar(&tz, "tz", "", "IANA time zone for the events.")

	cmd.AddCommand(export)
	topLevel.AddCommand(cmd)
}

func addRemote(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Work with data kept on the sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	schedules := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Manage schedule records on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	schedules.AddCommand(remoteLs(g), remoteAdd(g), remoteRm(g))

	cmd.AddCommand(schedules)
	topLevel.AddCommand(cmd)
}

func remoteLs(g *globals) *cobra.Command {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List remote schedule records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a := g.app
			if err := a.open(); err != nil {
				return err
			}
			recs, err := a.client.ListSchedules(context.Background())
			if err != nil {
				return friendly(err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), recs)
			}
			a.printer(g.ids.ShowID).Schedules(recs, a.cfg.Location())
			return nil
		},
	}
	options.AddOutputArg(cmd, oo)
	return cmd
}

func remoteAdd(g *globals) *cobra.Command {
	ao := &options.AtOptions{}
	var itemID string
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Create a remote schedule record",
		Example: `
rpm remote schedules add --at "2024-06-12 07:00" morning run
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires some text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a := g.app
			if err := a.open(); err != nil {
				return err
			}
			loc := a.cfg.Location()
			at, err := ao.Resolve(time.Now().In(loc), loc)
			if err != nil {
				return err
			}
			rec, err := a.client.CreateSchedule(context.Background(), syncclient.CreateScheduleRequest{
				ItemID:       itemID,
				Text:         strings.Join(args, " "),
				ScheduledFor: at,
			})
			if err != nil {
				return friendly(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created remote schedule %s\n", rec.ID)
			return nil
		},
	}
	options.AddAtArgs(cmd, ao)
	cmd.Flags().StringVar(&itemID, "item", "", "Id of the action this record points at.")
	return cmd
}

func remoteRm(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a remote schedule record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a := g.app
			if err := a.open(); err != nil {
				return err
			}
			if err := a.client.DeleteSchedule(context.Background(), args[0]); err != nil {
				if errors.Is(err, syncclient.ErrNotFound) {
					return fmt.Errorf("no remote schedule %q", args[0])
				}
				return friendly(err)
			}
			return nil
		},
	}
}
