package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"
)

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

// console is where every Print* helper writes. Colors are dropped when
// NO_COLOR is set.
var console = struct {
	out   io.Writer
	color bool
}{out: os.Stdout, color: os.Getenv("NO_COLOR") == ""}

func emit(ansi, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if symbol != "" {
		msg = symbol + " " + msg
	}
	if console.color {
		msg = ansi + msg + ansiReset
	}
	fmt.Fprintln(console.out, msg)
}

func PrintInfo(format string, a ...interface{})    { emit(ansiBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { emit(ansiGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { emit(ansiYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { emit(ansiRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(console.out)
	emit(ansiYellow, "", "=== %s ===", title)
}

// PrintTable writes tab-aligned rows under header.
func PrintTable(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(console.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// getCommandOutput runs a fixed tool invocation and returns trimmed stdout.
func getCommandOutput(name string, args ...string) (string, error) {
	// #nosec G204 - callers pass constant tool names
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
