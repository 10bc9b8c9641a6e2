package main

import (
	"fmt"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string { return "health-check" }

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := apiURL()
	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		resp, err := client.Get(base + path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		resp.Body.Close()
		elapsed := time.Since(start)

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: unexpected status %s", path, resp.Status)
		}
		if elapsed > time.Second {
			PrintWarning("%s slow response time (%v)", path, elapsed)
		} else {
			PrintSuccess("%s ok (%v)", path, elapsed)
		}
	}
	return nil
}
