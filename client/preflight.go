package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const pollInterval = time.Millisecond * 100

// AwaitService polls url until the server sends any HTTP response at all, so
// that a run started together with the service does not fail on its first
// step. Any status code counts as up. It gives up after timeout.
func AwaitService(ctx context.Context, url string, timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to service at %s", url)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		err := probe(ctx, url)
		if err == nil {
			fmt.Fprintln(output)
			return nil
		}
		if ctx.Err() != nil {
			fmt.Fprintln(output)
			return ctx.Err()
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		select {
		case <-ctx.Done():
		case <-time.After(pollInterval):
		}
	}
}

func probe(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
