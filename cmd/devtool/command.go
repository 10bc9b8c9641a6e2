package main

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"
)

const defaultAPIURL = "http://localhost:8080"

// Command is one devtool subcommand. Run receives the arguments after the
// command name.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry looks commands up by name.
type Registry struct {
	byName map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Command{}}
}

// Register adds cmd, replacing any command already using its name.
func (r *Registry) Register(cmd Command) { r.byName[cmd.Name()] = cmd }

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.byName[strings.ToLower(name)]
	return cmd, ok
}

// List returns every command ordered by name.
func (r *Registry) List() []Command {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)

	out := make([]Command, len(names))
	for i, n := range names {
		out[i] = r.byName[n]
	}
	return out
}

func (r *Registry) PrintHelp() {
	fmt.Fprintln(console.out, "Usage: devtool <command> [flags]")
	fmt.Fprintln(console.out)

	cmds := r.List()
	rows := make([][]string, len(cmds))
	for i, c := range cmds {
		rows[i] = []string{"  " + c.Name(), c.Description()}
	}
	PrintTable([]string{"Commands:", ""}, rows)
}

// apiURL is the running server targeted by the HTTP commands, from $API_URL.
func apiURL() string {
	return strings.TrimRight(cmp.Or(os.Getenv("API_URL"), defaultAPIURL), "/")
}
