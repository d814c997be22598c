package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// findBinary resolves the dailyspark binary, preferring DAILYSPARK_BIN
// and falling back to ../../bin/dailyspark. The suite is skipped when
// no binary has been built.
func findBinary(t *testing.T) string {
	t.Helper()

	if path := os.Getenv("DAILYSPARK_BIN"); path != "" {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	path, _ := filepath.Abs(filepath.Join(cwd, "..", "..", "bin", "dailyspark"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("dailyspark binary not found at %s; build it or set DAILYSPARK_BIN", path)
	}
	return path
}

func run(t *testing.T, bin, config string, args ...string) (string, error) {
	t.Helper()

	cmd := exec.Command(bin, append([]string{"--config", config}, args...)...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestEndToEndWorkflow(t *testing.T) {
	bin := findBinary(t)
	config := filepath.Join(t.TempDir(), "dailyspark.json")

	// init
	if out, err := run(t, bin, config, "init"); err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}

	// today before profile must fail politely
	if out, err := run(t, bin, config, "today"); err == nil {
		t.Fatalf("today without profile should fail, got:\n%s", out)
	}

	// profile set + show
	if out, err := run(t, bin, config, "profile", "set", "--level", "B1", "--focus", "health"); err != nil {
		t.Fatalf("profile set failed: %v\n%s", err, out)
	}
	out, err := run(t, bin, config, "profile", "show")
	if err != nil {
		t.Fatalf("profile show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "B1") || !strings.Contains(out, "health") {
		t.Fatalf("profile show missing fields:\n%s", out)
	}

	// today assigns and is stable across calls
	first, err := run(t, bin, config, "today")
	if err != nil {
		t.Fatalf("today failed: %v\n%s", err, first)
	}
	second, err := run(t, bin, config, "today")
	if err != nil {
		t.Fatalf("second today failed: %v\n%s", err, second)
	}
	if first != second {
		t.Fatalf("today is not stable within a day:\n%s\nvs\n%s", first, second)
	}

	// complete records once, suppresses the duplicate
	if out, err := run(t, bin, config, "complete"); err != nil {
		t.Fatalf("complete failed: %v\n%s", err, out)
	}
	out, err = run(t, bin, config, "complete")
	if err != nil {
		t.Fatalf("second complete failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "already") {
		t.Fatalf("duplicate completion not reported:\n%s", out)
	}

	out, err = run(t, bin, config, "history")
	if err != nil {
		t.Fatalf("history failed: %v\n%s", err, out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one history line:\n%s", out)
	}

	// goal lifecycle
	out, err = run(t, bin, config, "goal", "add", "Read", "-d", "one chapter a day")
	if err != nil {
		t.Fatalf("goal add failed: %v\n%s", err, out)
	}
	idx := strings.Index(out, "ID: ")
	if idx < 0 {
		t.Fatalf("goal add output missing ID:\n%s", out)
	}
	goalID := strings.TrimSuffix(strings.TrimSpace(out[idx+4:]), ")")

	if out, err := run(t, bin, config, "goal", "done", goalID); err != nil {
		t.Fatalf("goal done failed: %v\n%s", err, out)
	}
	out, err = run(t, bin, config, "goal", "list")
	if err != nil {
		t.Fatalf("goal list failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[x]") {
		t.Fatalf("goal not marked done:\n%s", out)
	}

	if out, err := run(t, bin, config, "goal", "delete", goalID); err != nil {
		t.Fatalf("goal delete failed: %v\n%s", err, out)
	}

	// empty goal title is rejected before storage
	if out, err := run(t, bin, config, "goal", "add", "   "); err == nil {
		t.Fatalf("blank goal title should be rejected:\n%s", out)
	}

	// reset requires --force, then wipes everything
	if out, err := run(t, bin, config, "reset"); err == nil {
		t.Fatalf("reset without --force should fail:\n%s", out)
	}
	if out, err := run(t, bin, config, "reset", "--force"); err != nil {
		t.Fatalf("reset failed: %v\n%s", err, out)
	}
	if out, err := run(t, bin, config, "profile", "show"); err == nil {
		t.Fatalf("profile should be gone after reset:\n%s", out)
	}
}
