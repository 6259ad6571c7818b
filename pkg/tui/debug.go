package tui

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/atotto/clipboard"

	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// BuildDebugInfo assembles the environment summary users paste into bug
// reports.
func BuildDebugInfo(doc *config.Document) string {
	executable, err := os.Executable()
	if err != nil {
		executable = "(unknown)"
	}

	return fmt.Sprintf(
		"Platform: %s/%s\nGo: %s\nExecutable: %s\nConfig File: %s\nProperties: %d\nTimestamp: %s",
		runtime.GOOS, runtime.GOARCH,
		runtime.Version(),
		executable,
		doc.Path,
		doc.Len(),
		time.Now().Format(time.RFC3339),
	)
}

// CopyDebugInfo puts the debug summary on the system clipboard.
func CopyDebugInfo(doc *config.Document) error {
	return clipboard.WriteAll(BuildDebugInfo(doc))
}
