package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),

	readline.PcItem("add"),
	readline.PcItem("list"),
	readline.PcItem("on"),
	readline.PcItem("retitle"),
	readline.PcItem("move"),
	readline.PcItem("del"),

	readline.PcItem("load"),
	readline.PcItem("save"),
	readline.PcItem("undo"),
	readline.PcItem("stats"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// newLineReader picks the input source for the REPL: full line editing with
// history and completion on a terminal, plain buffered reads otherwise
// (pipes, scripts).
func (a *App) newLineReader() (lineReader, func()) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &scannerReader{scanner: bufio.NewScanner(os.Stdin), out: a.out}, func() {}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "todo> ",
		HistoryFile:     a.config.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return &scannerReader{scanner: bufio.NewScanner(os.Stdin), out: a.out}, func() {}
	}
	rl.CaptureExitSignal()
	return &readlineReader{rl: rl}, func() { _ = rl.Close() }
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// ^C on an empty line quits; otherwise it discards the line
		if len(line) == 0 {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
