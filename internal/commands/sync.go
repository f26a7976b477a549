package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/commands/options"
)

func addSync(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy all planning days to or from the server",
		Long: options.Wrap80(`Sync moves the whole date store at once. The receiving side is
replaced, not merged: days that only exist there are lost.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(syncPush(g), syncPull(g))
	topLevel.AddCommand(cmd)
}

func syncPush(g *globals) *cobra.Command {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Replace the server copy with local data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := g.app.open(); err != nil {
				return err
			}
			if !co.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite the server copy with local data?") {
				return errors.New("aborted")
			}
			n, err := g.app.syncer().Push(context.Background())
			if err != nil {
				return friendly(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d day(s).\n", n)
			return nil
		},
	}
	options.AddConfirmArgs(cmd, co)
	return cmd
}

func syncPull(g *globals) *cobra.Command {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace local data with the server copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := g.app.open(); err != nil {
				return err
			}
			if !co.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite local data with the server copy?") {
				return errors.New("aborted")
			}
			n, err := g.app.syncer().Pull(context.Background())
			if err != nil {
				return friendly(err)
			}
			if g.app.planner != nil {
				if err := g.app.planner.Refresh(); err != nil {
					return unavailable(err)
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %d day(s).\n", n)
			return nil
		},
	}
	options.AddConfirmArgs(cmd, co)
	return cmd
}
