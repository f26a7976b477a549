package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addGoal(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Manage outcomes and their massive actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		goalNew(g),
		goalSet(g),
		&cobra.Command{
			Use:     "rm <goal>",
			Aliases: []string{"delete"},
			Short:   "Delete a goal and its actions",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
				if err != nil {
					return err
				}
				id, err := h.goalID(args[0])
				if err != nil {
					return err
				}
				return h.DeleteGoal(id)
			},
		},
		&cobra.Command{
			Use:   "assign <capture item> <goal>",
			Short: "Move a capture item into a goal's massive actions",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
				if err != nil {
					return err
				}
				itemID, err := h.captureID(args[0])
				if err != nil {
					return err
				}
				goalID, err := h.goalID(args[1])
				if err != nil {
					return err
				}
				return h.MoveCaptureToGoal(itemID, goalID)
			},
		},
		&cobra.Command{
			Use:   "act <goal> <text>",
			Short: "Add a massive action to a goal",
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) < 2 {
					return errors.New("requires a goal and some text")
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
				if err != nil {
					return err
				}
				goalID, err := h.goalID(args[0])
				if err != nil {
					return err
				}
				item, err := h.AddAction(goalID, strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added action %s\n", item.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "unact <goal> <action>",
			Short: "Remove a massive action",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				h, err := g.planner()
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
				return h.DeleteAction(goalID, actionID)
			},
		},
		goalDone(g),
	)

	topLevel.AddCommand(cmd)
}

func goalNew(g *globals) *cobra.Command {
	var result, purpose string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new goal",
		Example: `
rpm goal new --result "Ship v1" --purpose "Users get value"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			goal, err := h.NewGoal()
			if err != nil {
				return err
			}
			if result != "" || purpose != "" {
				goal.UltimateGoal = result
				goal.UltimatePurpose = purpose
				if err := h.UpdateGoal(goal); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s\n", goal.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&result, "result", "", "The outcome you want.")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Why you want it.")
	return cmd
}

func goalSet(g *globals) *cobra.Command {
	var result, purpose, level, duration, priority string
	cmd := &cobra.Command{
		Use:   "set <goal>",
		Short: "Edit a goal",
		Example: `
rpm goal set 3f2a --result "Run 10k" --priority high
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
			if err != nil {
				return err
			}
			id, err := h.goalID(args[0])
			if err != nil {
				return err
			}
			goal, err := h.Goal(id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			set := func(name string, dst *string, v string) {
				if flags.Changed(name) {
					*dst = v
				}
			}
			set("result", &goal.UltimateGoal, result)
			set("purpose", &goal.UltimatePurpose, purpose)
			set("level", &goal.Level, level)
			set("duration", &goal.Duration, duration)
			set("priority", &goal.Priority, priority)

			return h.UpdateGoal(goal)
		},
	}
	cmd.Flags().StringVar(&result, "result", "", "The outcome you want.")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Why you want it.")
	cmd.Flags().StringVar(&level, "level", "", "Legacy level field.")
	cmd.Flags().StringVar(&duration, "duration", "", "Legacy duration field.")
	cmd.Flags().StringVar(&priority, "priority", "", "Legacy priority field.")
	return cmd
}

func goalDone(g *globals) *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "done <goal> <action>",
		Short: "Mark a massive action completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h, err := g.planner()
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
			return h.SetActionCompleted(goalID, actionID, !undo)
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the action open again.")
	return cmd
}
