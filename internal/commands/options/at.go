package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutDateTime = "2006-01-02 15:04"
	layoutClock    = "15:04"
)

// AtOptions holds the time a schedule record is placed at.
type AtOptions struct {
	At string
}

func AddAtArgs(cmd *cobra.Command, o *AtOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`When, example: --at="18:30" (active day) or --at="2024-06-10 18:30".`)
}

// Resolve parses At in loc. A bare clock time lands on day.
func (o *AtOptions) Resolve(day time.Time, loc *time.Location) (time.Time, error) {
	if o.At == "" {
		return time.Time{}, errors.New("--at is required")
	}
	if t, err := time.ParseInLocation(layoutDateTime, o.At, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutClock, o.At, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: cannot parse %q", o.At)
	}
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
