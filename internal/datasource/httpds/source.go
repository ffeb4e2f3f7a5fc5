package httpds

import (
	"context"
	"fmt"
	"io"
)

// Remote is a datasource.Source that fetches a record dump over HTTP.
type Remote struct {
	client *Client
	url    string
}

// NewRemote binds a client to a dump URL.
func NewRemote(client *Client, url string) *Remote {
	return &Remote{client: client, url: url}
}

// Open issues the GET and returns the response body as the record stream.
// Non-2xx final statuses are errors; retryable statuses were already retried
// by the client.
func (r *Remote) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := r.client.Get(ctx, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpds: fetch %s: %w", r.url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("httpds: fetch %s: status %d", r.url, resp.StatusCode)
	}
	return resp.Body, nil
}
