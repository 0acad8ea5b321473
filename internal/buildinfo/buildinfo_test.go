package buildinfo

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	for _, want := range []string{
		"Build version: N/A",
		"Build date: N/A",
		"Build commit: N/A",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Fatalf("want 3 lines, got %d: %q", got, out)
	}
}
