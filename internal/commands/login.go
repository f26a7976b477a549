package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/session"
)

func addLogin(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "login <google authorization code>",
		Short: "Sign in to the sync server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a := g.app
			if err := a.open(); err != nil {
				return err
			}
			res, err := a.client.Login(context.Background(), args[0])
			if err != nil {
				return friendly(err)
			}
			if err := a.session.Save(session.Credentials{Token: res.Token, UserID: res.User.ID}); err != nil {
				return unavailable(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", res.User.Email)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the sync server session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := g.app.open(); err != nil {
				return err
			}
			if err := g.app.session.Clear(); err != nil {
				return unavailable(err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
