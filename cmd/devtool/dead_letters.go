package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/osse101/PackSim_Go/internal/config"
	"github.com/osse101/PackSim_Go/internal/event"
)

type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string { return "dead-letters" }

func (c *DeadLettersCommand) Description() string {
	return "Summarize events that could not be delivered"
}

func (c *DeadLettersCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	path := fs.String("file", "", "dead-letter log (defaults to EVENT_DEADLETTER_PATH)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		*path = cfg.EventDeadLetterPath
	}

	f, err := os.Open(*path)
	if os.IsNotExist(err) {
		PrintSuccess("No dead-letter log at %s", *path)
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	entries, skipped, err := event.ReadDeadLetters(f)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Dead letters in %s", *path))
	if skipped > 0 {
		PrintWarning("%d unreadable line(s) skipped", skipped)
	}
	if len(entries) == 0 {
		PrintSuccess("Log is empty")
		return nil
	}

	summary := event.SummarizeDeadLetters(entries)
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			string(s.Type),
			strconv.Itoa(s.Count),
			s.Oldest.Format(time.RFC3339),
			s.Newest.Format(time.RFC3339),
		})
	}
	PrintTable([]string{"TYPE", "COUNT", "OLDEST", "NEWEST"}, rows)
	PrintWarning("%d event(s) were never delivered", len(entries))
	return nil
}
