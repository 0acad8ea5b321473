package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context, args []string) error
	List(ctx context.Context) error
	On(ctx context.Context, args []string) error
	Retitle(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Load(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Undo(ctx context.Context) error
	Stats(ctx context.Context) error
}

// lineReader yields one line of user input per call. Returning io.EOF ends
// the REPL.
type lineReader interface {
	ReadLine(prompt string) (string, error)
}

const helpText = `Available commands:
  add <yyyy/mm/dd> <title>   add an entry
  list                       show all entries
  on <yyyy/mm/dd>            show entries for one date
  retitle <id> <title>       rename an entry
  move <id> <yyyy/mm/dd>     reschedule an entry
  del <id>                   delete an entry
  load [file]                replace the list with a file's contents
  save [file]                write the list to a file
  undo                       revert the last change
  stats                      show session metrics
  exit | quit                leave the program`

// runREPL starts a read-eval-print loop over the todo list.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Errors returned by command handlers are rendered for the
// user and the loop keeps going; it only exits on io.EOF from the reader or
// when the user types "exit" or "quit". The prompt shows the current status
// (from statusFn), typically the entry count.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in lineReader) {
	report := func(err error) {
		if err != nil {
			printlnFn(renderError(err))
		}
	}

	for {
		line, err := in.ReadLine(fmt.Sprintf("todo %s> ", statusFn()))
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn(renderError(err))
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "add":
			report(a.Add(ctx, args))

		case "l", "list":
			report(a.List(ctx))

		case "on":
			report(a.On(ctx, args))

		case "retitle":
			report(a.Retitle(ctx, args))

		case "move":
			report(a.Move(ctx, args))

		case "del", "delete":
			report(a.Delete(ctx, args))

		case "load":
			report(a.Load(ctx, args))

		case "save":
			report(a.Save(ctx, args))

		case "undo":
			report(a.Undo(ctx))

		case "stats":
			report(a.Stats(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
