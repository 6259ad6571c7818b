package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })
}

func captureOutput(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	*target = w

	fn()

	w.Close()
	*target = old
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestPrintSuccessRespectsQuiet(t *testing.T) {
	resetFlags(t)

	SetGlobalFlags(false, false, false)
	out := captureOutput(t, &os.Stdout, func() {
		PrintSuccess("saved %s", "serverconfig.xml")
	})
	if !strings.Contains(out, "saved serverconfig.xml") {
		t.Errorf("Expected success message, got %q", out)
	}

	SetGlobalFlags(true, false, false)
	out = captureOutput(t, &os.Stdout, func() {
		PrintSuccess("saved %s", "serverconfig.xml")
	})
	if out != "" {
		t.Errorf("Quiet mode should suppress success output, got %q", out)
	}
}

func TestPrintErrorWritesToStderr(t *testing.T) {
	resetFlags(t)

	// Errors survive quiet mode.
	SetGlobalFlags(true, false, false)
	out := captureOutput(t, &os.Stderr, func() {
		PrintError("config file not found: %s", "/tmp/nope.xml")
	})
	if !strings.Contains(out, "config file not found: /tmp/nope.xml") {
		t.Errorf("Expected error on stderr, got %q", out)
	}
}

func TestNoColorUsesTextLabels(t *testing.T) {
	resetFlags(t)
	SetGlobalFlags(false, true, false)

	out := captureOutput(t, &os.Stderr, func() {
		PrintError("boom")
	})
	if !strings.HasPrefix(out, "ERROR: ") {
		t.Errorf("Expected ERROR label, got %q", out)
	}

	out = captureOutput(t, &os.Stderr, func() {
		PrintWarning("careful")
	})
	if !strings.HasPrefix(out, "WARNING: ") {
		t.Errorf("Expected WARNING label, got %q", out)
	}
}

func TestConfirmSkipped(t *testing.T) {
	resetFlags(t)
	SetGlobalFlags(false, false, true)

	confirmed, err := Confirm("Restore backup?", false)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !confirmed {
		t.Error("--yes should answer confirmations without prompting")
	}
}
