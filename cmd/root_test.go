package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute_Good(t *testing.T) {
	RootCmd.SetArgs([]string{"quotes", "--contexts"})
	RootCmd.SetOut(io.Discard)
	t.Cleanup(func() { RootCmd.SetArgs(nil) })
	if err := Execute(slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootCmd_Good(t *testing.T) {
	t.Run("Help flag", func(t *testing.T) {
		output, err := executeCommand(newTestRoot(GetQuotesCmd()), "--help")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "Usage:") {
			t.Errorf("expected help output to contain 'Usage:', but it did not")
		}
	})
}

func TestRootCmd_Bad(t *testing.T) {
	t.Run("Unknown command", func(t *testing.T) {
		_, err := executeCommand(newTestRoot(GetQuotesCmd()), "unknown-command")
		if err == nil {
			t.Fatal("expected an error for an unknown command, but got none")
		}
	})

	t.Run("Broken config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rswait.yml")
		os.WriteFile(path, []byte("interval: [not a duration\n"), 0644)
		_, err := executeCommand(newTestRoot(GetQuotesCmd()), "quotes", "--config", path)
		if err == nil {
			t.Fatal("expected an error for a broken config file")
		}
	})
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"run": false, "quotes": false, "render": false, "serve": false}
	for _, c := range RootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}
