package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// runCLI executes a fresh command tree with an isolated config root.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("MISSIONFUEL_ROOT", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	output, _, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output == "" {
		t.Fatal("expected help output, got empty string")
	}
	for _, want := range []string{"missionfuel", "Mission Planning:", "Service:", "CLI & Tooling:", "mission", "serve"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })
	SetVersion("1.2.3")

	output, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("expected version output 1.2.3, got %q", output)
	}

	output, _, err = runCLI(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("expected version command output 1.2.3, got %q", output)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := runCLI(t, "invalid-command")
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "sets version", version: "2.0.0", want: "2.0.0"},
		{name: "empty keeps previous", version: "", want: "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if version != tt.want {
				t.Errorf("version = %q, want %q", version, tt.want)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			output, _, err := runCLI(t, "completion", shell)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if output == "" {
				t.Error("expected completion script, got empty output")
			}
		})
	}
}
