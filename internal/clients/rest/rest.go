// Package rest implements the collaborator client ports over HTTP. Client
// errors (4xx) map to non-retryable collaborator failures, server errors
// (5xx) and transport failures to retryable ones; retry policy itself
// belongs to the caller.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
)

type restClient struct {
	http         *http.Client
	baseURL      string
	collaborator string
}

func newRestClient(baseURL, collaborator string, timeout time.Duration) restClient {
	return restClient{
		http:         &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		collaborator: collaborator,
	}
}

// doJSON issues the request and decodes a 2xx JSON body into out.
func (c restClient) doJSON(ctx context.Context, method, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return &portsclients.CollaboratorError{Collaborator: c.collaborator, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &portsclients.CollaboratorError{Collaborator: c.collaborator, Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &portsclients.CollaboratorError{
				Collaborator: c.collaborator,
				Err:          fmt.Errorf("failed to decode response body: %w", err),
			}
		}
		return nil
	case resp.StatusCode >= 500:
		return &portsclients.CollaboratorError{
			Collaborator: c.collaborator,
			Retryable:    true,
			Err:          statusError(resp),
		}
	default:
		return &portsclients.CollaboratorError{Collaborator: c.collaborator, Err: statusError(resp)}
	}
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
}
