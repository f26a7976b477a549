package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

func addShell(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run commands in one session, keeping undo history",
		Example: `
rpm shell
rpm> capture add buy milk
rpm> undo
rpm> exit
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if g.app.inShell {
				return errors.New("already in a shell")
			}
			h, err := g.planner()
			if err != nil {
				return err
			}
			return runShell(g.app, h)
		},
	}
	topLevel.AddCommand(cmd)
}

func runShell(a *app, h *plannerHandle) error {
	a.inShell = true
	defer func() { a.inShell = false }()

	br := bufio.NewReader(a.in)
	a.in = br

	faint := color.New(color.Faint)
	unsubscribe := a.registry.Subscribe(func(recs []planning.ScheduleRecord) {
		_, _ = faint.Fprintf(a.out, "schedule updated, %d record(s)\n", len(recs))
	})
	defer unsubscribe()

	if err := h.show(); err != nil {
		return err
	}

	prompt := color.New(color.FgCyan, color.Bold)
	for {
		_, _ = prompt.Fprintf(a.out, "rpm %s> ", a.planner.Date())
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				_, _ = fmt.Fprintln(a.out)
				return nil
			}
			return err
		}

		args, perr := splitArgs(line)
		if perr != nil {
			_, _ = color.New(color.FgRed).Fprintln(a.out, perr)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		root := newRoot(a)
		root.SetArgs(args)
		root.SetIn(&nextLine{r: br})
		if err := root.Execute(); err != nil {
			config.Logger.WithError(err).Debug("Shell command failed")
			_, _ = color.New(color.FgRed).Fprintln(a.out, err)
		}
	}
}

// nextLine hands a command at most one line of the shell's input, then EOF,
// so a prompt reading ahead cannot swallow the next command.
type nextLine struct {
	r    *bufio.Reader
	buf  *strings.Reader
	read bool
}

func (l *nextLine) Read(p []byte) (int, error) {
	if !l.read {
		l.read = true
		line, err := l.r.ReadString('\n')
		if err != nil && line == "" {
			return 0, err
		}
		l.buf = strings.NewReader(line)
	}
	if l.buf == nil {
		return 0, io.EOF
	}
	return l.buf.Read(p)
}

// splitArgs splits a command line on spaces, honoring single and double
// quotes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		pending bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			pending = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if pending {
		args = append(args, cur.String())
	}
	return args, nil
}
