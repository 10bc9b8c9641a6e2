package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"
)

type OpenPacksCommand struct{}

func (c *OpenPacksCommand) Name() string { return "open-packs" }

func (c *OpenPacksCommand) Description() string {
	return "Open packs against a running server to seed a collection"
}

type openPackReply struct {
	Message string `json:"message"`
	Result  struct {
		Items []struct {
			Name   string `json:"name"`
			Rarity string `json:"rarity"`
			Shiny  bool   `json:"shiny"`
		} `json:"items"`
		Stats struct {
			Coins int `json:"coins"`
		} `json:"stats"`
	} `json:"result"`
}

type errorReply struct {
	Error string `json:"error"`
}

func (c *OpenPacksCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	count := fs.Int("n", 5, "number of packs to open")
	if err := fs.Parse(args); err != nil {
		return err
	}

	url := apiURL() + "/api/v1/packs/open"
	PrintHeader(fmt.Sprintf("Opening %d pack(s) at %s", *count, url))

	client := &http.Client{Timeout: 30 * time.Second}
	for i := 0; i < *count; i++ {
		resp, err := client.Post(url, "application/json", http.NoBody)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			var e errorReply
			_ = json.NewDecoder(resp.Body).Decode(&e)
			resp.Body.Close()
			return fmt.Errorf("pack %d: %s: %s", i+1, resp.Status, e.Error)
		}

		var reply openPackReply
		err = json.NewDecoder(resp.Body).Decode(&reply)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("pack %d: failed to decode response: %w", i+1, err)
		}

		PrintInfo("Pack %d: %s (coins %d)", i+1, reply.Message, reply.Result.Stats.Coins)
		for _, it := range reply.Result.Items {
			shiny := ""
			if it.Shiny {
				shiny = " ✨"
			}
			fmt.Printf("    %s [%s]%s\n", it.Name, it.Rarity, shiny)
		}
	}

	PrintSuccess("Opened %d pack(s)", *count)
	return nil
}
