// Package listfile reads and writes the todo list interchange format: one
// entry per line, "YYYY/MM/DD,Title", no header, no quoting. Loading is
// all-or-nothing: the first malformed line aborts with a *FormatError and
// no partial list is returned.
package listfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mixassio/todolist/internal/models"
	"github.com/mixassio/todolist/internal/todo"
)

// maxLineBytes is the longest input line Load accepts. The format puts no
// length limit on titles, so the scanner gets room well past its 64KB
// default.
const maxLineBytes = 1 << 20

// ErrUnencodableTitle is returned by Export for titles the line format
// cannot carry (a newline breaks the line framing, a comma the field
// count).
var ErrUnencodableTitle = errors.New("title cannot be encoded in the list file format")

var errFieldCount = errors.New("expected exactly two comma-separated fields")

// FormatError describes a malformed input line. Line is 1-based. Unwrap
// exposes the cause, so errors.Is reaches models.ErrInvalidDate and
// friends through it.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Load parses r line by line and builds a todo.List whose ids are 1..N in
// line order. Each line must hold a date field and a title field separated
// by a single comma; the date field is year/month/day. Blank lines are
// malformed (wrong field count). An empty reader yields an empty list.
// A line can be up to maxLineBytes long. Read failures are passed through
// from the underlying reader.
func Load(r io.Reader) (todo.List, error) {
	var batch []models.NewEntry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineBytes)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()

		e, err := parseLine(line)
		if err != nil {
			return todo.List{}, &FormatError{Line: n, Text: line, Err: err}
		}
		batch = append(batch, e)
	}
	if err := scanner.Err(); err != nil {
		return todo.List{}, fmt.Errorf("read list: %w", err)
	}

	return todo.New(batch...)
}

func parseLine(line string) (models.NewEntry, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return models.NewEntry{}, fmt.Errorf("%w, got %d", errFieldCount, len(fields))
	}

	date, err := models.ParseDate(fields[0])
	if err != nil {
		return models.NewEntry{}, err
	}

	return models.NewEntry{Date: date, Title: fields[1]}, nil
}

// LoadFile opens path and loads it. The file is closed on every path; open
// and read failures come back wrapped so callers can errors.Is against the
// os layer.
func LoadFile(path string) (todo.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return todo.List{}, fmt.Errorf("load list: %w", err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return todo.List{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Export writes l to w in the interchange format, one entry per line in
// ascending id order. Ids are not part of the format: loading the result
// renumbers entries 1..N, dates and titles intact. Titles containing a
// newline or a comma cannot be carried by the format; Export rejects them
// with ErrUnencodableTitle before writing anything.
func Export(w io.Writer, l todo.List) error {
	entries := l.Entries()
	for _, e := range entries {
		if strings.ContainsAny(e.Title, ",\n") {
			return fmt.Errorf("entry %d title %q: %w", e.ID, e.Title, ErrUnencodableTitle)
		}
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s,%s\n", e.Date, e.Title); err != nil {
			return fmt.Errorf("write list: %w", err)
		}
	}
	return nil
}

// ExportFile writes l to path. The list is staged in a temp file next to
// path and renamed over it once fully written, so a failed save leaves
// any previous file as it was.
func ExportFile(path string, l todo.List) error {
	dir, base := filepath.Dir(path), filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("save list: %w", err)
	}
	tmp := f.Name()
	defer func() {
		_ = os.Remove(tmp)
	}()

	if err := Export(f, l); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return fmt.Errorf("save list: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save list: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save list: %w", err)
	}
	return nil
}
