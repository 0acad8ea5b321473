package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewCommandCounter returns the counter vector used to count executed
// CLI commands, partitioned by command name.
func NewCommandCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "todolist_commands_total",
		Help: "Number of executed CLI commands",
	}, []string{"command"})
}
