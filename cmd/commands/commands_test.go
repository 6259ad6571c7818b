package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

const testConfigXML = `<?xml version="1.0"?>
<ServerSettings>
	<!-- Name of the server -->
	<property name="ServerName" value="MyServer"/>
	<property name="ServerPort" value="26900"/>
</ServerSettings>
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serverconfig.xml")
	if err := os.WriteFile(path, []byte(testConfigXML), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// withConfigFlag mirrors the persistent --config flag the root command
// registers in normal runs.
func withConfigFlag(cmd *cobra.Command, path string) *cobra.Command {
	cmd.Flags().String("config", "", "")
	if path != "" {
		_ = cmd.Flags().Set("config", path)
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	out, _ := io.ReadAll(r)
	return string(out), runErr
}

func TestGetCommand(t *testing.T) {
	path := writeTestConfig(t)
	cmd := withConfigFlag(NewGetCommand(), path)
	cmd.SetArgs([]string{"ServerName"})

	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "MyServer" {
		t.Errorf("Expected %q, got %q", "MyServer", out)
	}
}

func TestGetCommandUnknownProperty(t *testing.T) {
	path := writeTestConfig(t)
	cmd := withConfigFlag(NewGetCommand(), path)
	cmd.SetArgs([]string{"NoSuchProperty"})

	_, err := captureStdout(t, cmd.Execute)
	if err == nil {
		t.Fatal("Expected an error for an unknown property")
	}
	if !strings.Contains(err.Error(), "NoSuchProperty") {
		t.Errorf("Error should name the property: %v", err)
	}
}

func TestGetCommandMissingFile(t *testing.T) {
	cmd := withConfigFlag(NewGetCommand(), filepath.Join(t.TempDir(), "nope.xml"))
	cmd.SetArgs([]string{"ServerName"})

	_, err := captureStdout(t, cmd.Execute)
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Expected a missing-file error, got %v", err)
	}
}

func TestSetCommand(t *testing.T) {
	path := writeTestConfig(t)
	cmd := withConfigFlag(NewSetCommand(), path)
	cmd.SetArgs([]string{"ServerName", "Renamed"})

	if _, err := captureStdout(t, cmd.Execute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	doc, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load after set failed: %v", err)
	}
	if value, _ := doc.Get("ServerName"); value != "Renamed" {
		t.Errorf("Expected %q, got %q", "Renamed", value)
	}

	// The preceding comment survives the rewrite.
	if desc, _ := doc.Description("ServerName"); desc != "Name of the server" {
		t.Errorf("Comment lost across set: %q", desc)
	}

	backups, err := config.ListBackups(path)
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("Expected one backup after set, got %d", len(backups))
	}
}

func TestSearchCommandOutput(t *testing.T) {
	path := writeTestConfig(t)
	cmd := withConfigFlag(NewSearchCommand(), path)
	cmd.SetArgs([]string{"server"})

	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "ServerName") || !strings.Contains(out, "ServerPort") {
		t.Errorf("Expected both matches in output, got %q", out)
	}
}
