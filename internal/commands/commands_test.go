package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/saulo-duarte/rpm-planner/internal/clientconfig"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/session"
	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

func init() {
	color.NoColor = true
}

func newTestApp(t *testing.T, server, input string) (*app, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a := &app{
		cfg: &clientconfig.Config{
			Path:     t.TempDir(),
			Server:   server,
			TimeZone: "UTC",
		},
		in:  strings.NewReader(input),
		out: out,
	}
	return a, out
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()
	root := newRoot(a)
	root.SetArgs(args)
	return root.Execute()
}

func today() string {
	return util.DateKey(time.Now().UTC())
}

func TestCaptureAndShow(t *testing.T) {
	a, out := newTestApp(t, "", "")

	if err := run(t, a, "capture", "add", "call", "the", "bank"); err != nil {
		t.Fatalf("capture add failed: %v", err)
	}
	if err := run(t, a, "show"); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out.String(), "[ ] call the bank") {
		t.Errorf("show output missing capture:\n%s", out.String())
	}

	snap, err := a.store.Load(today())
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.CaptureItems) != 1 {
		t.Errorf("expected one stored item, got %d", len(snap.CaptureItems))
	}
}

func TestOnFlag(t *testing.T) {
	a, _ := newTestApp(t, "", "")
	if err := run(t, a, "--on", "2024-06-10", "capture", "add", "past"); err != nil {
		t.Fatalf("capture add failed: %v", err)
	}
	if got := a.store.Dates(); len(got) != 1 || got[0] != "2024-06-10" {
		t.Errorf("expected the item on 2024-06-10, got %v", got)
	}
	if err := run(t, a, "--on", "June 10", "show"); err == nil {
		t.Error("expected a malformed --on to fail")
	}
}

func TestGoalFlow(t *testing.T) {
	a, out := newTestApp(t, "", "")
	if err := run(t, a, "capture", "add", "draft"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, a, "goal", "new", "--result", "Ship v1"); err != nil {
		t.Fatal(err)
	}

	snap := a.planner.Current()
	itemID := snap.CaptureItems[0].ID
	goalID := snap.Goals[0].ID

	if err := run(t, a, "goal", "assign", itemID[:8], goalID[:8]); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := run(t, a, "goal", "done", goalID, itemID); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	if err := run(t, a, "goal", "set", goalID, "--purpose", "Users get value"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	goal, err := a.planner.Goal(goalID)
	if err != nil {
		t.Fatal(err)
	}
	if goal.UltimateGoal != "Ship v1" || goal.UltimatePurpose != "Users get value" {
		t.Errorf("goal fields not kept: %+v", goal)
	}
	if len(goal.MassiveActions) != 1 || !goal.MassiveActions[0].Completed {
		t.Errorf("expected one completed action, got %+v", goal.MassiveActions)
	}

	if err := run(t, a, "schedule", "add", goalID, itemID, "--at", "18:30"); err != nil {
		t.Fatalf("schedule add failed: %v", err)
	}
	out.Reset()
	if err := run(t, a, "schedule", "ls"); err != nil {
		t.Fatalf("schedule ls failed: %v", err)
	}
	if !strings.Contains(out.String(), "18:30") || !strings.Contains(out.String(), "draft") {
		t.Errorf("schedule not listed:\n%s", out.String())
	}
}

func TestShellKeepsUndoHistory(t *testing.T) {
	input := strings.Join([]string{
		`capture add "first item"`,
		`capture add second`,
		`capture add third`,
		`undo`,
		`exit`,
	}, "\n") + "\n"
	a, _ := newTestApp(t, "", input)

	if err := run(t, a, "shell"); err != nil {
		t.Fatalf("shell failed: %v", err)
	}

	snap, err := a.store.Load(today())
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, it := range snap.CaptureItems {
		texts = append(texts, it.Text)
	}
	if len(texts) != 1 || texts[0] != "first item" {
		t.Errorf("expected undo to restore the first recorded point, got %v", texts)
	}
}

func TestSyncPush(t *testing.T) {
	var got map[string]planning.Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a, out := newTestApp(t, srv.URL, "")
	if err := run(t, a, "capture", "add", "x"); err != nil {
		t.Fatal(err)
	}

	if err := run(t, a, "sync", "push", "--yes"); err == nil || !strings.Contains(err.Error(), "not signed in") {
		t.Fatalf("expected a sign-in error, got %v", err)
	}

	if err := a.session.Save(session.Credentials{Token: "tok", UserID: "u1"}); err != nil {
		t.Fatal(err)
	}
	if err := run(t, a, "sync", "push", "--yes"); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if _, ok := got[today()]; !ok {
		t.Errorf("expected today's snapshot to be uploaded, got %v", got)
	}
	if !strings.Contains(out.String(), "Uploaded 1 day(s).") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestShellConfirmationReadsOneLine(t *testing.T) {
	input := strings.Join([]string{
		`capture add keep`,
		`reset`,
		`n`,
		`capture add after`,
		`exit`,
	}, "\n") + "\n"
	a, _ := newTestApp(t, "", input)

	if err := run(t, a, "shell"); err != nil {
		t.Fatalf("shell failed: %v", err)
	}

	snap, err := a.store.Load(today())
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, it := range snap.CaptureItems {
		texts = append(texts, it.Text)
	}
	if strings.Join(texts, ",") != "keep,after" {
		t.Errorf("expected the declined reset to leave both captures, got %v", texts)
	}
}

func TestSyncPullNeedsConfirmation(t *testing.T) {
	a, _ := newTestApp(t, "http://127.0.0.1:1", "n\n")
	if err := run(t, a, "sync", "pull"); err == nil || err.Error() != "aborted" {
		t.Errorf("expected abort, got %v", err)
	}
}

func TestCalendarExportNeedsZone(t *testing.T) {
	a, _ := newTestApp(t, "", "")
	a.cfg.TimeZone = "Local"
	if err := run(t, a, "calendar", "export"); err == nil {
		t.Error("expected an error without an IANA zone")
	}
}

func TestSplitArgs(t *testing.T) {
	got, err := splitArgs(`goal new --result "Run 10k" --purpose 'feel good'` + "\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"goal", "new", "--result", "Run 10k", "--purpose", "feel good"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
	if _, err := splitArgs(`capture add "oops`); err == nil {
		t.Error("expected unterminated quote error")
	}
	if got, _ := splitArgs(`capture add ""`); len(got) != 3 {
		t.Errorf("empty quotes should yield an empty argument, got %q", got)
	}
}

func TestFriendly(t *testing.T) {
	if err := friendly(nil); err != nil {
		t.Errorf("nil should stay nil, got %v", err)
	}
	other := errors.New("other")
	if !errors.Is(friendly(other), other) {
		t.Error("unknown errors pass through")
	}
}
