package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

var spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))

func (pp *PrettyPrint) w() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.w(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = fmt.Fprint(pp.w(), strings.Repeat(" ", pad))
	} else {
		_, _ = fmt.Fprint(pp.w(), "  ")
	}
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.w(), title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.w(), "  none\n\n")
}

func checkbox(done bool) string {
	if done {
		return color.GreenString("[x]")
	}
	return "[ ]"
}

// Day renders one snapshot: capture list first, then every goal with its
// massive actions.
func (pp *PrettyPrint) Day(s planning.Snapshot, today string) {
	heading := s.Date
	if s.Date == today {
		heading += " (today)"
	}
	pp.Title(heading)
	_, _ = fmt.Fprintln(pp.w())

	pp.Title("Capture")
	if len(s.CaptureItems) == 0 {
		pp.none()
	} else {
		for _, it := range s.CaptureItems {
			pp.id(it.ID)
			_, _ = fmt.Fprintf(pp.w(), "%s %s\n", checkbox(it.Completed), it.Text)
		}
		_, _ = fmt.Fprintln(pp.w())
	}

	pp.Title("Goals")
	if len(s.Goals) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, g := range s.Goals {
		pp.id(g.ID)
		result := g.UltimateGoal
		if result == "" {
			result = "(untitled)"
		}
		_, _ = bold.Fprintln(pp.w(), result)
		if g.UltimatePurpose != "" {
			_, _ = faint.Fprintf(pp.w(), "  why: %s\n", g.UltimatePurpose)
		}
		for _, a := range g.MassiveActions {
			pp.id(a.ID)
			line := fmt.Sprintf("  %s %s", checkbox(a.Completed), a.Text)
			if a.Scheduled {
				line += color.CyanString(" (scheduled)")
			}
			_, _ = fmt.Fprintln(pp.w(), line)
		}
		_, _ = fmt.Fprintln(pp.w())
	}
}

// Schedules prints records as a table in loc.
func (pp *PrettyPrint) Schedules(records []planning.ScheduleRecord, loc *time.Location) {
	if len(records) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("When"), bold.Sprint("What"))
	} else {
		tbl.AddRow(bold.Sprint("When"), bold.Sprint("What"))
	}
	for _, r := range records {
		when := r.ScheduledFor.In(loc).Format("Mon 2006-01-02 15:04")
		if pp.ShowID {
			tbl.AddRow(r.ID, when, r.Text)
		} else {
			tbl.AddRow(when, r.Text)
		}
	}
	_, _ = fmt.Fprintln(pp.w(), tbl)
}

// Table prints generic rows under a bold header.
func (pp *PrettyPrint) Table(header []string, rows [][]string) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	h := make([]interface{}, len(header))
	for i, c := range header {
		h[i] = bold.Sprint(c)
	}
	tbl.AddRow(h...)
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.w(), tbl)
}
