// Package planner drives one editing session: it owns the active day's
// snapshot, records undo history before every change and persists each new
// state. It is not safe for concurrent use.
package planner

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/datestore"
	"github.com/saulo-duarte/rpm-planner/internal/history"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/registry"
	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

var (
	ErrGoalNotFound   = errors.New("goal not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrActionNotFound = errors.New("action not found")
	ErrEmptyText      = errors.New("text is required")
)

type Planner struct {
	store    *datestore.Store
	history  *history.History
	registry *registry.Registry
	loc      *time.Location
	now      func() time.Time
	newID    func() string
	current  planning.Snapshot
}

type Option func(*Planner)

func WithLocation(loc *time.Location) Option {
	return func(p *Planner) { p.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func WithIDGenerator(fn func() string) Option {
	return func(p *Planner) { p.newID = fn }
}

// New starts a session on today's date.
func New(store *datestore.Store, reg *registry.Registry, opts ...Option) (*Planner, error) {
	p := &Planner{
		store:    store,
		history:  history.New(),
		registry: reg,
		loc:      time.Local,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.Open(p.TodayDate()); err != nil {
		return nil, err
	}
	return p, nil
}

// TodayDate returns the current calendar day in the planner's location.
func (p *Planner) TodayDate() string {
	return util.DateKey(p.now().In(p.loc))
}

func (p *Planner) log() logrus.FieldLogger {
	return config.Logger.WithField("date", p.current.Date)
}

// Open makes date the active day. Nothing is written for a day that has no
// data yet. Undo history survives navigation.
func (p *Planner) Open(date string) error {
	snap, err := p.store.Load(date)
	if err != nil {
		return err
	}
	p.current = snap
	return nil
}

// Refresh reloads the active day from storage.
func (p *Planner) Refresh() error {
	return p.Open(p.current.Date)
}

// Date returns the active date key.
func (p *Planner) Date() string {
	return p.current.Date
}

// Day returns the active date as local midnight.
func (p *Planner) Day() time.Time {
	t, err := util.ParseDateKey(p.current.Date, p.loc)
	if err != nil {
		return util.StartOfDay(p.now().In(p.loc))
	}
	return t
}

// Current returns a copy of the active snapshot.
func (p *Planner) Current() planning.Snapshot {
	return p.current.Clone()
}

func (p *Planner) CanUndo() bool {
	return p.history.CanUndo()
}

// Update persists next, then records the active snapshot in the history and
// makes next active. A failed save leaves the session untouched.
func (p *Planner) Update(next planning.Snapshot) error {
	next = next.Clone()
	if err := p.store.Save(next); err != nil {
		return err
	}
	p.history.Record(p.current)
	p.current = next
	return nil
}

// Undo restores the previous recorded snapshot. The restored snapshot's date
// becomes the active date, so it is saved back under its own key.
func (p *Planner) Undo() (bool, error) {
	prev, ok := p.history.Undo()
	if !ok {
		return false, nil
	}
	p.current = prev
	if err := p.store.Save(p.current); err != nil {
		return true, err
	}
	p.log().Debug("Undo applied")
	return true, nil
}

// AddCapture appends a new capture item.
func (p *Planner) AddCapture(text string) (planning.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return planning.Item{}, ErrEmptyText
	}
	item := planning.Item{ID: p.newID(), Text: text}

	next := p.Current()
	next.CaptureItems = append(next.CaptureItems, item)
	return item, p.Update(next)
}

// DeleteCapture removes a capture item.
func (p *Planner) DeleteCapture(id string) error {
	next := p.Current()
	i := next.FindCapture(id)
	if i < 0 {
		return ErrItemNotFound
	}
	next.CaptureItems = append(next.CaptureItems[:i], next.CaptureItems[i+1:]...)
	return p.Update(next)
}

// MoveCaptureToGoal moves a capture item to the end of a goal's massive
// actions, resetting its completed flag. Both sides change in one update.
func (p *Planner) MoveCaptureToGoal(itemID, goalID string) error {
	next := p.Current()
	gi := next.FindGoal(goalID)
	if gi < 0 {
		return ErrGoalNotFound
	}
	ci := next.FindCapture(itemID)
	if ci < 0 {
		return ErrItemNotFound
	}

	item := next.CaptureItems[ci]
	item.Completed = false
	next.CaptureItems = append(next.CaptureItems[:ci], next.CaptureItems[ci+1:]...)
	next.Goals[gi].MassiveActions = append(next.Goals[gi].MassiveActions, item)
	return p.Update(next)
}

// NewGoal appends an empty goal.
func (p *Planner) NewGoal() (planning.Goal, error) {
	goal := planning.Goal{
		ID:             p.newID(),
		MassiveActions: []planning.Item{},
	}
	next := p.Current()
	next.Goals = append(next.Goals, goal)
	return goal, p.Update(next)
}

// UpdateGoal replaces the goal with the same id by goal.
func (p *Planner) UpdateGoal(goal planning.Goal) error {
	next := p.Current()
	i := next.FindGoal(goal.ID)
	if i < 0 {
		return ErrGoalNotFound
	}
	next.Goals[i] = goal.Clone()
	return p.Update(next)
}

// DeleteGoal removes a goal and its massive actions. Schedule records that
// point at those actions are left alone.
func (p *Planner) DeleteGoal(id string) error {
	next := p.Current()
	i := next.FindGoal(id)
	if i < 0 {
		return ErrGoalNotFound
	}
	next.Goals = append(next.Goals[:i], next.Goals[i+1:]...)
	return p.Update(next)
}

// Goal returns a copy of the goal with id.
func (p *Planner) Goal(id string) (planning.Goal, error) {
	i := p.current.FindGoal(id)
	if i < 0 {
		return planning.Goal{}, ErrGoalNotFound
	}
	return p.current.Goals[i].Clone(), nil
}

// SetActionCompleted flips the completed flag of one massive action.
func (p *Planner) SetActionCompleted(goalID, actionID string, completed bool) error {
	goal, err := p.Goal(goalID)
	if err != nil {
		return err
	}
	ai := goal.FindAction(actionID)
	if ai < 0 {
		return ErrActionNotFound
	}
	goal.MassiveActions[ai].Completed = completed
	return p.UpdateGoal(goal)
}

// SetCaptureCompleted flips the completed flag of a capture item.
func (p *Planner) SetCaptureCompleted(id string, completed bool) error {
	next := p.Current()
	i := next.FindCapture(id)
	if i < 0 {
		return ErrItemNotFound
	}
	next.CaptureItems[i].Completed = completed
	return p.Update(next)
}

// AddAction appends a new massive action to a goal.
func (p *Planner) AddAction(goalID, text string) (planning.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return planning.Item{}, ErrEmptyText
	}
	goal, err := p.Goal(goalID)
	if err != nil {
		return planning.Item{}, err
	}
	item := planning.Item{ID: p.newID(), Text: text}
	goal.MassiveActions = append(goal.MassiveActions, item)
	return item, p.UpdateGoal(goal)
}

// DeleteAction removes a massive action from its goal.
func (p *Planner) DeleteAction(goalID, actionID string) error {
	goal, err := p.Goal(goalID)
	if err != nil {
		return err
	}
	ai := goal.FindAction(actionID)
	if ai < 0 {
		return ErrActionNotFound
	}
	goal.MassiveActions = append(goal.MassiveActions[:ai], goal.MassiveActions[ai+1:]...)
	return p.UpdateGoal(goal)
}
