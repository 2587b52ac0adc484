package domain

import m "github.com/mouse-blink/monobump/internal/model"

// Aggregate folds attributions into the highest bump level per component.
// Merge commits and commits without a bump are ignored. The result does
// not depend on the order of attributions.
func Aggregate(attributions []m.Attribution) m.BumpPlan {
	plan := make(m.BumpPlan)

	for _, a := range attributions {
		if a.Commit.IsMerge() || a.Level == m.BumpNone {
			continue
		}

		for name := range a.Components {
			plan[name] = plan[name].Max(a.Level)
		}
	}

	return plan
}
