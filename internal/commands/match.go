package commands

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

// matchID expands a unique id prefix. Exact matches always win.
func matchID(kind, prefix string, ids []string) (string, error) {
	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no %s matches %q", kind, prefix)
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("%q matches %d %ss, use a longer prefix", prefix, len(found), kind)
}

func itemIDs(items []planning.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func goalIDs(goals []planning.Goal) []string {
	ids := make([]string, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	return ids
}

func recordIDs(recs []planning.ScheduleRecord) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	return ids
}

func (h *plannerHandle) captureID(prefix string) (string, error) {
	return matchID("capture item", prefix, itemIDs(h.Current().CaptureItems))
}

func (h *plannerHandle) goalID(prefix string) (string, error) {
	return matchID("goal", prefix, goalIDs(h.Current().Goals))
}

func (h *plannerHandle) actionID(goalID, prefix string) (string, error) {
	goal, err := h.Goal(goalID)
	if err != nil {
		return "", err
	}
	return matchID("action", prefix, itemIDs(goal.MassiveActions))
}
