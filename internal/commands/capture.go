package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addCapture(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Manage the capture list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <text>",
			Short: "Capture something",
			Example: `
rpm capture add call the bank
`,
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) < 1 {
					return errors.New("requires some text")
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
				if err != nil {
					return err
				}
				item, err := h.AddCapture(strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Captured %s\n", item.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"delete"},
			Short:   "Remove a capture item",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
				if err != nil {
					return err
				}
				id, err := h.captureID(args[0])
				if err != nil {
					return err
				}
				return h.DeleteCapture(id)
			},
		},
		captureDone(g),
	)

	topLevel.AddCommand(cmd)
}

func captureDone(g *globals) *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a capture item completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			id, err := h.captureID(args[0])
			if err != nil {
				return err
			}
			return h.SetCaptureCompleted(id, !undo)
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the item open again.")
	return cmd
}
