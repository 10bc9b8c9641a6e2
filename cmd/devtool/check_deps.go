package main

import (
	"fmt"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string { return "check-deps" }

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

type toolCheck struct {
	name     string
	args     []string
	field    int // index of the version field in the first output line
	required bool
	hint     string
}

var toolChecks = []toolCheck{
	{name: "go", args: []string{"version"}, field: 2, required: true, hint: "https://go.dev/dl/"},
	{name: "docker", args: []string{"--version"}, field: 2, hint: "needed for testcontainers integration tests"},
	{name: "goose", args: []string{"--version"}, field: -1, hint: "go install github.com/pressly/goose/v3/cmd/goose@latest"},
	{name: "swag", args: []string{"--version"}, field: -1, hint: "go install github.com/swaggo/swag/cmd/swag@latest"},
	{name: "mockery", args: []string{"--version"}, field: -1, hint: "go install github.com/vektra/mockery/v2@latest"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0
	for _, tc := range toolChecks {
		out, err := getCommandOutput(tc.name, tc.args...)
		if err != nil {
			if tc.required {
				PrintError("%s not found (%s)", tc.name, tc.hint)
				missing++
			} else {
				PrintWarning("%s not found (%s)", tc.name, tc.hint)
			}
			continue
		}
		PrintSuccess("%s installed: %s", tc.name, versionField(out, tc.field))
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	PrintSuccess("Environment check complete!")
	return nil
}

// versionField picks a whitespace-separated field from the first output
// line; a negative index counts from the end.
func versionField(out string, idx int) string {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return out
	}
	if idx < 0 {
		idx += len(fields)
	}
	if idx < 0 || idx >= len(fields) {
		return line
	}
	v := strings.TrimRight(fields[idx], ",")
	return strings.TrimPrefix(v, "version:")
}
