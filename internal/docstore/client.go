package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the external document store over HTTP. The store
// holds document content as an opaque string blob; whether that blob is
// tree JSON or legacy plain text is the caller's concern.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ErrNotFound reports a document id the store has never seen.
var ErrNotFound = fmt.Errorf("document not found")

type contentPayload struct {
	Content string `json:"content"`
}

// LoadContent fetches the stored content blob for a document.
func (c *Client) LoadContent(ctx context.Context, id string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(id), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("load content: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("load content %s: %w", id, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("load content %s: status %d: %s", id, resp.StatusCode, string(respBody))
	}

	var payload contentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return payload.Content, nil
}

// SaveContent stores the content blob verbatim under the document id.
func (c *Client) SaveContent(ctx context.Context, id, content string) error {
	body, err := json.Marshal(contentPayload{Content: content})
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentURL(id), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("save content %s: status %d: %s", id, resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *Client) contentURL(id string) string {
	return c.baseURL + "/documents/" + url.PathEscape(id) + "/content"
}

// Close releases any resources (currently a no-op).
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
