package cli

import (
	"context"
	"fmt"
)

// Stats prints the session metrics: the list gauges plus the per-command
// counters, gathered from the app's private registry.
func (a *App) Stats(ctx context.Context) error {
	a.count("stats")
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels string
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("{%s=%s}", lp.GetName(), lp.GetValue())
			}
			var v float64
			switch {
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			}
			fmt.Fprintf(a.out, "%s%s %v\n", mf.GetName(), labels, v)
		}
	}
	return nil
}
