package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runVersion(t *testing.T) string {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	return buf.String()
}

func TestVersionCmd_Exists(t *testing.T) {
	// Verify the version command is registered
	cmd, _, err := NewRootCommand().Find([]string{"version"})
	if err != nil {
		t.Fatalf("version command not found: %v", err)
	}

	if cmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", cmd.Use, "version")
	}
}

func TestVersionCmd_OutputsVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-01-01")

	output := runVersion(t)

	// Verify output contains version
	if !strings.Contains(output, "sarif-to-md version 1.2.3") {
		t.Errorf("version output doesn't contain version: %q", output)
	}

	// Verify output contains commit
	if !strings.Contains(output, "abc123") {
		t.Errorf("version output doesn't contain commit: %q", output)
	}

	// Verify output contains date
	if !strings.Contains(output, "2024-01-01") {
		t.Errorf("version output doesn't contain date: %q", output)
	}
}

func TestVersionCmd_SkipsEmptyCommit(t *testing.T) {
	SetVersionInfo("1.0.0", "", "2024-01-01")

	output := runVersion(t)

	// Verify output doesn't contain "commit:"
	if strings.Contains(output, "commit:") {
		t.Errorf("version output contains commit when empty: %q", output)
	}
}

func TestVersionCmd_SkipsNoneCommit(t *testing.T) {
	SetVersionInfo("1.0.0", "none", "unknown")

	output := runVersion(t)

	// Verify output doesn't contain "commit:" or "built:"
	if strings.Contains(output, "commit:") {
		t.Errorf("version output contains commit when 'none': %q", output)
	}
	if strings.Contains(output, "built:") {
		t.Errorf("version output contains built when 'unknown': %q", output)
	}
}

func TestSetVersionInfo(t *testing.T) {
	// Test that SetVersionInfo sets the variables correctly
	SetVersionInfo("v2.0.0", "def456", "2025-06-15")

	if versionStr != "v2.0.0" {
		t.Errorf("versionStr = %q, want %q", versionStr, "v2.0.0")
	}
	if commitStr != "def456" {
		t.Errorf("commitStr = %q, want %q", commitStr, "def456")
	}
	if dateStr != "2025-06-15" {
		t.Errorf("dateStr = %q, want %q", dateStr, "2025-06-15")
	}

	if got := NewRootCommand().Version; got != "v2.0.0" {
		t.Errorf("root command Version = %q, want %q", got, "v2.0.0")
	}
}
