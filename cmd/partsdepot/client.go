package main

import (
	"fmt"
	"time"

	"github.com/nikolayk812/partsdepot/internal/apiclient"
)

const retryDelay = 200 * time.Millisecond

func newClient() (*apiclient.Client, error) {
	client, err := apiclient.New(cfg.API.URL,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithRetries(uint64(max(cfg.API.Retries, 0)), retryDelay),
		apiclient.WithToken(cfg.API.Token),
		apiclient.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("apiclient.New: %w", err)
	}
	return client, nil
}
