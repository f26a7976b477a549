package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/saulo-duarte/rpm-planner/internal/clientconfig"
	"github.com/saulo-duarte/rpm-planner/internal/datestore"
	"github.com/saulo-duarte/rpm-planner/internal/planner"
	"github.com/saulo-duarte/rpm-planner/internal/printers"
	"github.com/saulo-duarte/rpm-planner/internal/registry"
	"github.com/saulo-duarte/rpm-planner/internal/session"
	"github.com/saulo-duarte/rpm-planner/internal/storage"
	"github.com/saulo-duarte/rpm-planner/internal/syncclient"
)

// ErrDataUnavailable marks failures to read or write the local store.
var ErrDataUnavailable = errors.New("data unavailable")

// app is the state shared by every command of one process. The shell keeps a
// single app alive, so the planner and its undo history span many commands.
type app struct {
	cfg      *clientconfig.Config
	kv       storage.KV
	store    *datestore.Store
	registry *registry.Registry
	session  *session.Store
	planner  *planner.Planner
	client   *syncclient.Client

	in      io.Reader
	out     io.Writer
	inShell bool
}

func newApp() *app {
	return &app{in: os.Stdin, out: color.Output}
}

func (a *app) open() error {
	if a.kv != nil {
		return nil
	}
	if a.cfg == nil {
		cfg, err := clientconfig.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	kv := storage.Open(a.cfg.BasePath())
	a.kv = kv
	a.store = datestore.New(kv)
	a.registry = registry.New(kv)
	a.session = session.New(kv)
	a.client = syncclient.New(a.cfg.Server, a.session)
	return nil
}

// plannerOn returns the session planner, moved to date when date is set.
func (a *app) plannerOn(date string) (*planner.Planner, error) {
	if err := a.open(); err != nil {
		return nil, err
	}
	if a.planner == nil {
		p, err := planner.New(a.store, a.registry, planner.WithLocation(a.cfg.Location()))
		if err != nil {
			return nil, unavailable(err)
		}
		a.planner = p
	}
	if date != "" && date != a.planner.Date() {
		if err := a.planner.Open(date); err != nil {
			return nil, unavailable(err)
		}
	}
	return a.planner, nil
}

func (a *app) printer(showID bool) *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: a.out, ShowID: showID}
}

func (a *app) syncer() *syncclient.Syncer {
	return syncclient.NewSyncer(a.client, a.store)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
}

// friendly turns the sync client's errors into messages for the terminal.
func friendly(err error) error {
	var te *syncclient.TransportError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syncclient.ErrAuthRequired):
		return errors.New("not signed in, run `rpm login <code>` first")
	case errors.Is(err, syncclient.ErrNotFound):
		return errors.New("nothing stored on the server yet")
	case errors.As(err, &te):
		return fmt.Errorf("could not reach the sync server: %w", err)
	}
	return err
}
