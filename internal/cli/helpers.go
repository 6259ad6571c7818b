package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Output flags, set once from the root command's persistent flags before any
// subcommand runs.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags wires the root command's --quiet, --no-color and --yes flags
// into the print and confirm helpers.
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// message renders one status line: a symbol prefix normally, a plain text
// label under --no-color.
func message(symbol, label, format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		return label + ": " + msg
	}
	return symbol + " " + msg
}

// PrintSuccess reports a completed action on stdout. Suppressed by --quiet.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(message("✓", "OK", format, args...))
}

// PrintInfo reports supplementary detail on stdout. Suppressed by --quiet.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(message("ℹ", "INFO", format, args...))
}

// PrintWarning reports a non-fatal problem on stderr. Warnings survive
// --quiet; the command still succeeded.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, message("⚠", "WARNING", format, args...))
}

// PrintError reports a fatal problem on stderr. Errors survive --quiet.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, message("✗", "ERROR", format, args...))
}

// Confirm asks a y/n question on stdin. With --yes the answer is yes without
// prompting. An empty response takes the default.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Print(prompt + suffix)

	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}
