// ABOUTME: Tests for the version command output
// ABOUTME: Verifies default one-liner and verbose build details

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd_Default(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-29")
	defer SetVersion("dev", "none", "unknown")

	out := runCLI(t, "version")

	if !strings.Contains(out, "concierge 1.2.3") {
		t.Errorf("output missing version line:\n%s", out)
	}
	if strings.Contains(out, "abc1234") {
		t.Errorf("commit should only appear with --verbose:\n%s", out)
	}
}

func TestVersionCmd_Verbose(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-29")
	defer SetVersion("dev", "none", "unknown")

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"version", "--verbose"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"concierge 1.2.3", "commit abc1234", "built 2026-08-29"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}
