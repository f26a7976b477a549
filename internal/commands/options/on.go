package options

import (
	"fmt"

	"github.com/spf13/cobra"

	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

// OnOptions selects the active date.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.PersistentFlags().StringVar(&o.OnString, "on", "",
		`Work on a specific day, example: --on="2024-06-10".`)
}

// GetOn returns the selected date key, or "" when none was given.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	if _, err := util.ParseDateKey(o.OnString, nil); err != nil {
		return "", fmt.Errorf("--on: %w", err)
	}
	return o.OnString, nil
}
