package planner

import (
	"errors"
	"time"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
	"github.com/saulo-duarte/rpm-planner/internal/registry"
)

var ErrNoRegistry = errors.New("planner has no schedule registry")

// ScheduleAction creates a schedule record for a massive action, then marks
// the action as scheduled on its goal in a separate update.
func (p *Planner) ScheduleAction(goalID, actionID string, at time.Time) (planning.ScheduleRecord, error) {
	if p.registry == nil {
		return planning.ScheduleRecord{}, ErrNoRegistry
	}
	goal, err := p.Goal(goalID)
	if err != nil {
		return planning.ScheduleRecord{}, err
	}
	ai := goal.FindAction(actionID)
	if ai < 0 {
		return planning.ScheduleRecord{}, ErrActionNotFound
	}

	rec, err := p.registry.Create(actionID, goal.MassiveActions[ai].Text, at)
	if err != nil {
		return planning.ScheduleRecord{}, err
	}

	goal.MassiveActions[ai].Scheduled = true
	if err := p.UpdateGoal(goal); err != nil {
		return rec, err
	}
	return rec, nil
}

// Unschedule deletes a schedule record. The action it points at keeps its
// scheduled flag.
func (p *Planner) Unschedule(recordID string) error {
	if p.registry == nil {
		return ErrNoRegistry
	}
	return p.registry.Delete(recordID)
}

// Schedules returns every schedule record in order.
func (p *Planner) Schedules() ([]planning.ScheduleRecord, error) {
	if p.registry == nil {
		return nil, ErrNoRegistry
	}
	return p.registry.List()
}

// SchedulesForDay returns the records falling on the active day.
func (p *Planner) SchedulesForDay() ([]planning.ScheduleRecord, error) {
	all, err := p.Schedules()
	if err != nil {
		return nil, err
	}
	return registry.ForDay(all, p.Day(), p.loc), nil
}

// Location returns the zone used for day boundaries.
func (p *Planner) Location() *time.Location {
	return p.loc
}
