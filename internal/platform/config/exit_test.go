package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/haqatak/telcoco/internal/platform/config"
)

// os.Exit cannot be intercepted in-process, so the test re-runs itself.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("SELFCARE_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "fixture missing")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "SELFCARE_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: fixture missing") {
		t.Fatalf("stderr = %q, want fatal message", string(out))
	}
}
