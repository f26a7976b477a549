package planner

import (
	"github.com/saulo-duarte/rpm-planner/internal/config"
	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

// Today opens the current calendar day.
func (p *Planner) Today() error {
	return p.Open(p.TodayDate())
}

// PlanNextDay opens the day after the active one.
func (p *Planner) PlanNextDay() error {
	next, err := util.AddDays(p.current.Date, 1)
	if err != nil {
		return err
	}
	return p.Open(next)
}

// Previous opens the closest earlier stored day. It reports false when there
// is none.
func (p *Planner) Previous() (bool, error) {
	adj := p.store.ListAdjacentDates(p.current.Date)
	if adj.Previous == nil {
		return false, nil
	}
	return true, p.Open(*adj.Previous)
}

// Next opens the closest later stored day. It reports false when there is
// none.
func (p *Planner) Next() (bool, error) {
	adj := p.store.ListAdjacentDates(p.current.Date)
	if adj.Next == nil {
		return false, nil
	}
	return true, p.Open(*adj.Next)
}

// Reset wipes every stored day and the schedule collection, then reloads the
// active day.
func (p *Planner) Reset() error {
	if err := p.store.ClearAll(); err != nil {
		return err
	}
	if p.registry != nil {
		if err := p.registry.Clear(); err != nil {
			return err
		}
	}
	p.history.Reset()
	config.Logger.Info("Local planning data cleared")
	return p.Refresh()
}
