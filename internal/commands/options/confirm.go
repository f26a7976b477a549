package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// ConfirmOptions guards destructive commands.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not ask for confirmation.")
}

// Confirm asks prompt on out and reads the answer from in. Only "y" or "yes"
// agree; an empty answer declines.
func (o *ConfirmOptions) Confirm(in io.Reader, out io.Writer, prompt string) bool {
	if o.Yes {
		return true
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} [y/N]: ",
		Valid:   "{{ . }} [y/N]: ",
		Invalid: "{{ . | red }} [y/N]: ",
		Success: "{{ . | bold }} [y/N]: ",
	}

	p := promptui.Prompt{
		Label:     prompt,
		Templates: templates,
		Validate:  validateAnswer,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	answer, err := p.Run()
	if err != nil {
		return false
	}
	yes, _ := parseAnswer(answer)
	return yes
}

func validateAnswer(input string) error {
	_, err := parseAnswer(input)
	return err
}

func parseAnswer(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "", "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n, not %q", s)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
