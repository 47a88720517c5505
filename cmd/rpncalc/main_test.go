package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akhildatla/rpncalc/internal/testutil"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestCLI_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}} {
		out, err := runCLI(t, "", args...)
		if err != nil {
			t.Fatalf("help command failed: %v", err)
		}
		if !strings.Contains(out, "rpncalc") {
			t.Error("help output should contain rpncalc")
		}
		if !strings.Contains(out, "export") {
			t.Error("help output should contain export command")
		}
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "rpncalc version") {
		t.Errorf("expected version output, got: %s", out)
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, "", "frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected unknown command error, got %v", err)
	}
}

func TestCLI_EvalSavesState(t *testing.T) {
	state := testutil.StatePath(t)

	out, err := runCLI(t, "", "eval", "-state", state, "3", "4", "+")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if !strings.Contains(out, "X: 7\n") {
		t.Errorf("expected X: 7, got: %s", out)
	}

	data, err := os.ReadFile(state)
	if err != nil {
		t.Fatalf("expected state file: %v", err)
	}
	if string(data) != "7;0;0;0;;;;;;;;;" {
		t.Errorf("unexpected state %q", data)
	}

	out, err = runCLI(t, "", "eval", "-state", state, "2", "×", "sto", "A")
	if err != nil {
		t.Fatalf("second eval failed: %v", err)
	}
	if !strings.Contains(out, "X: 14\n") {
		t.Errorf("expected state to carry over, got: %s", out)
	}
}

func TestCLI_EvalNoSave(t *testing.T) {
	state := testutil.StatePath(t)

	if _, err := runCLI(t, "", "eval", "-state", state, "-n", "1"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if _, err := os.Stat(state); !os.IsNotExist(err) {
		t.Errorf("expected no state file with -n, got %v", err)
	}
}

func TestCLI_EvalError(t *testing.T) {
	state := testutil.StatePath(t)

	_, err := runCLI(t, "", "eval", "-state", state, "rcl", "B")
	if err == nil || !strings.Contains(err.Error(), "variable not set") {
		t.Errorf("expected unset variable error, got %v", err)
	}
}

func TestCLI_MalformedState(t *testing.T) {
	state := testutil.TempState(t, "not;a;state")

	_, err := runCLI(t, "", "show", "-state", state)
	if err == nil {
		t.Fatal("expected error for malformed state")
	}
}

func TestCLI_ShowVars(t *testing.T) {
	state := testutil.TempState(t, testutil.SampleState())

	out, err := runCLI(t, "", "show", "-state", state, "-vars")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"T: 0.25", "X: 1.5", "A: 42", "H: -0.125"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestCLI_REPL(t *testing.T) {
	state := testutil.StatePath(t)

	out, err := runCLI(t, "5 sqrt\nq\n", "repl", "-q", "-state", state)
	if err != nil {
		t.Fatalf("repl failed: %v", err)
	}
	if !strings.Contains(out, "Goodbye") {
		t.Errorf("expected goodbye, got: %s", out)
	}
	if _, err := os.Stat(state); err != nil {
		t.Errorf("expected repl to save state on exit: %v", err)
	}
}

func TestCLI_ExportImport(t *testing.T) {
	dir := t.TempDir()
	state := filepath.Join(dir, "a.clc")
	snap := filepath.Join(dir, "snap.csv")

	if _, err := runCLI(t, "", "eval", "-state", state, "6", "sto", "D", "9"); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	out, err := runCLI(t, "", "export", "-state", state, snap)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Exported") {
		t.Errorf("expected export message, got: %s", out)
	}

	other := filepath.Join(dir, "b.clc")
	if _, err := runCLI(t, "", "import", "-state", other, snap); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	want, _ := os.ReadFile(state)
	got, err := os.ReadFile(other)
	if err != nil {
		t.Fatalf("expected imported state file: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCLI_ExportUsage(t *testing.T) {
	_, err := runCLI(t, "", "export", "-state", testutil.StatePath(t))
	if err == nil || !strings.Contains(err.Error(), "usage") {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestStatePath(t *testing.T) {
	if got, _ := statePath("explicit.clc"); got != "explicit.clc" {
		t.Errorf("expected flag value, got %s", got)
	}

	t.Setenv(StateEnv, "from-env.clc")
	if got, _ := statePath(""); got != "from-env.clc" {
		t.Errorf("expected env value, got %s", got)
	}

	t.Setenv(StateEnv, "")
	got, err := statePath("")
	if err != nil {
		t.Fatalf("statePath failed: %v", err)
	}
	if filepath.Base(got) != "molkfreecalc.clc" {
		t.Errorf("expected default file name, got %s", got)
	}
}
