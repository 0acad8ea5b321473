// Package cli provides the interactive todolist command line.
//
// It wires configuration, logging, metrics, and an interactive REPL over a
// single in-memory todo list. Typical flow: load the configured list file,
// then execute user commands until exit.
//
// Key features:
//   - Add / retitle / move / delete entries
//   - List everything or query entries by date
//   - Bulk load and save of the comma-separated list format
//   - Undo of list mutations
//   - Session metrics via the stats command
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
