package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"strings"
)

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string { return "watch-events" }

func (c *WatchEventsCommand) Description() string {
	return "Stream server-sent events from a running server"
}

func (c *WatchEventsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	limit := fs.Int("n", 0, "stop after this many events (0 streams forever)")
	types := fs.String("types", "", "comma-separated event types to subscribe to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	url := apiURL() + "/api/v1/events"
	if *types != "" {
		url += "?types=" + *types
	}
	PrintHeader("Watching " + url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	seen := 0
	var eventType string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			PrintInfo("%s %s", eventType, strings.TrimPrefix(line, "data: "))
			seen++
			if *limit > 0 && seen >= *limit {
				return nil
			}
		}
	}
	return scanner.Err()
}
