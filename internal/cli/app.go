package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mixassio/todolist/internal/config"
	"github.com/mixassio/todolist/internal/listfile"
	"github.com/mixassio/todolist/internal/logging"
	"github.com/mixassio/todolist/internal/metrics"
	"github.com/mixassio/todolist/internal/todo"
)

// maxUndoDepth bounds the snapshot stack; the oldest snapshot is dropped
// once the limit is reached.
const maxUndoDepth = 100

// App holds the state of one interactive session: the current list value,
// the undo stack of previous list values, and the session metrics.
type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer

	list    todo.List
	history []todo.List

	registry *prometheus.Registry
	commands *prometheus.CounterVec
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	a := &App{
		config: c,
		logger: logger.With("session", uuid.NewString()),
		out:    os.Stdout,
	}

	a.registry = prometheus.NewRegistry()
	a.commands = metrics.NewCommandCounter()
	a.registry.MustRegister(a.commands, metrics.NewListCollector(a.snapshot))

	return a
}

// snapshot hands the current list to the metrics collector.
func (a *App) snapshot() todo.List { return a.list }

func (a *App) count(cmd string) { a.commands.WithLabelValues(cmd).Inc() }

// push saves the current list before a mutation so undo can restore it.
// Lists are values, so a snapshot is just a copy of the header.
func (a *App) push() {
	if len(a.history) >= maxUndoDepth {
		a.history = a.history[1:]
	}
	a.history = append(a.history, a.list)
}

func (a *App) status() string {
	return fmt.Sprintf("(%d)", a.list.Len())
}

// Run loads the configured list file and enters the REPL. A broken list
// file is reported but does not prevent the session from starting; the
// user can fix the file and load it again.
func (a *App) Run(ctx context.Context) {
	if err := a.loadInitial(ctx); err != nil {
		a.logger.Error(ctx, "initial load failed", "file", a.config.ListFile, "error", err)
		fmt.Fprintln(a.out, renderError(err))
	}
	a.Root(ctx)
}

// loadInitial reads the configured list file. A missing file is fine: the
// session just starts with an empty list.
func (a *App) loadInitial(ctx context.Context) error {
	l, err := listfile.LoadFile(a.config.ListFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.logger.Info(ctx, "no list file yet", "file", a.config.ListFile)
			return nil
		}
		return err
	}
	a.list = l
	a.logger.Info(ctx, "list loaded", "file", a.config.ListFile, "entries", l.Len())
	return nil
}

// Root runs the REPL until the user exits, choosing line editing or plain
// buffered input depending on the terminal.
func (a *App) Root(ctx context.Context) {
	in, closeFn := a.newLineReader()
	defer closeFn()
	runREPL(ctx, a, a.status, in)
}
